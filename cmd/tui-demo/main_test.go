package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/nullui/terminal/tui"
)

func TestGalleryHasOneGroupPerSeparator(t *testing.T) {
	g := newGallery(&bytes.Buffer{}, 80, 24)
	if len(g.groups) != len(tui.SepStyleNames()) {
		t.Fatalf("groups = %d, want %d", len(g.groups), len(tui.SepStyleNames()))
	}
	for i, group := range g.groups {
		if n := len(group.Buttons()); n != 3 {
			t.Errorf("group %d has %d buttons", i, n)
		}
	}
}

func TestClickSelectsButton(t *testing.T) {
	g := newGallery(&bytes.Buffer{}, 80, 24)
	// connected group sits at (2,11); its middle glyph is at (5,12)
	g.handle([]byte("\x1b[<0;5;12m"))
	if g.selected != "connected #2" {
		t.Errorf("selected = %q, want connected #2", g.selected)
	}
	if !g.running {
		t.Error("click stopped the gallery")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, p := range []string{"q", "\x03", "xq"} {
		g := newGallery(&bytes.Buffer{}, 80, 24)
		g.handle([]byte(p))
		if g.running {
			t.Errorf("%q did not stop the gallery", p)
		}
	}
}

func TestTickWraps(t *testing.T) {
	g := newGallery(&bytes.Buffer{}, 80, 24)
	for range g.bar.MaxProgress {
		g.tick()
	}
	if g.bar.Progress != g.bar.MaxProgress {
		t.Fatalf("progress = %d, want %d", g.bar.Progress, g.bar.MaxProgress)
	}
	g.tick()
	if g.bar.Progress != 0 {
		t.Errorf("progress after wrap = %d, want 0", g.bar.Progress)
	}
}

func TestDrawShowsStyleNames(t *testing.T) {
	var out bytes.Buffer
	g := newGallery(&out, 80, 24)
	if err := g.draw(); err != nil {
		t.Fatal(err)
	}
	frame := out.String()
	for _, name := range append(tui.BoxStyleNames(), tui.SepStyleNames()...) {
		if !strings.Contains(frame, name) {
			t.Errorf("frame missing %q", name)
		}
	}
}
