// tui-demo is a gallery of the toolkit's glyph styles and widgets: one box
// per box style, one button group per separator style and an animated
// progress bar. Click buttons to select them; q or Ctrl+C quits.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/nullui/terminal"
	"github.com/lixenwraith/nullui/terminal/tui"
)

const (
	boxColumns  = 3
	boxStride   = 16
	boxInterior = 12
	groupStride = 18
	galleryTop  = 2
	barWidth    = 40
)

// input is one result of a Session.Read, carried to the frame loop
type input struct {
	data []byte
	err  error
}

type gallery struct {
	scr      *tui.Screen
	bar      *tui.ProgressBar
	status   *tui.Label
	groups   []*tui.ButtonGroup
	selected string
	frame    int
	running  bool
}

func newGallery(out io.Writer, cols, lines int) *gallery {
	g := &gallery{
		scr:      tui.NewScreen(out),
		running:  true,
		selected: "none",
	}

	var parts []tui.Widget
	parts = append(parts, tui.NewLabel(1, 1, cols, 1, "box styles"))
	for i, name := range tui.BoxStyleNames() {
		style, _ := tui.BoxStyleByName(name)
		x := 2 + (i%boxColumns)*boxStride
		y := galleryTop + (i/boxColumns)*4
		parts = append(parts,
			tui.NewBox(x, y, boxInterior, 1, true, style),
			tui.NewLabel(x+1, y+1, boxInterior, 1, name),
		)
	}

	rows := (len(tui.BoxStyleNames()) + boxColumns - 1) / boxColumns
	sepTop := galleryTop + rows*4
	parts = append(parts, tui.NewLabel(1, sepTop, cols, 1, "separator styles"))
	for j, name := range tui.SepStyleNames() {
		sep, _ := tui.SepStyleByName(name)
		x := 2 + j*groupStride
		var buttons []*tui.Button
		for k, text := range []string{"a", "b", "c"} {
			buttons = append(buttons, tui.NewButton(0, 0, 1, 1, text, tui.SquareBox, g.onSelect(name, k)))
		}
		group := tui.NewButtonGroup(x, sepTop+1, sep, buttons...)
		g.groups = append(g.groups, group)
		parts = append(parts, group, tui.NewLabel(x, sepTop+4, groupStride-2, 1, name))
	}

	g.bar = tui.NewProgressBar(2, sepTop+6, barWidth, 1)
	g.status = tui.NewLabel(1, lines, cols, 1, "")
	parts = append(parts, g.bar, g.status)
	g.scr.AddChild(parts...)
	g.update()
	return g
}

func (g *gallery) onSelect(sep string, index int) tui.ClickFunc {
	return func(_ tui.Clickable, _, _ int) {
		g.selected = fmt.Sprintf("%s #%d", sep, index+1)
	}
}

// tick advances the progress bar one step, wrapping at the maximum
func (g *gallery) tick() {
	g.frame++
	g.bar.Progress = g.frame % (g.bar.MaxProgress + 1)
}

func (g *gallery) update() {
	g.status.Text = fmt.Sprintf("selected: %s  progress: %d%%  q quits", g.selected, g.bar.Progress)
}

func (g *gallery) handle(p []byte) {
	s := string(p)
	for len(s) > 0 {
		if ev, n, ok := terminal.ScanMouse(s); ok {
			g.scr.Dispatch(ev)
			s = s[n:]
			continue
		}
		switch s[0] {
		case 'q', 0x03:
			g.running = false
		}
		s = s[1:]
	}
}

func (g *gallery) draw() error {
	g.update()
	g.scr.ResetBuffer()
	if err := g.scr.Show(); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}
	return nil
}

// loop redraws on every tick and every input chunk. Reads run on their own
// goroutine so the ticker keeps the bar moving while no key is pressed.
func (g *gallery) loop(s *terminal.Session, interval time.Duration) error {
	stop := make(chan struct{})
	defer close(stop)

	inputCh := make(chan input, 4)
	go func() {
		for {
			p, err := s.Read(stop)
			select {
			case inputCh <- input{p, err}:
			case <-stop:
				return
			}
			if p == nil || err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for g.running {
		if err := g.draw(); err != nil {
			return err
		}
		select {
		case in := <-inputCh:
			if in.err != nil {
				return fmt.Errorf("read input: %w", in.err)
			}
			if in.data == nil {
				return nil
			}
			g.handle(in.data)
		case <-ticker.C:
			g.tick()
		}
	}
	return nil
}

func main() {
	interval := pflag.Duration("interval", 100*time.Millisecond, "Progress bar step interval")
	pflag.Parse()

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			os.Exit(1)
		}
	}()

	err := terminal.Run(terminal.NewBackend(), func(s *terminal.Session) error {
		cols, lines := s.Size()
		g := newGallery(s, cols, lines)
		return s.WithMouse(func() error { return g.loop(s, *interval) })
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tui-demo: %v\n", err)
		os.Exit(1)
	}
}
