package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nullui/terminal/vt"
)

func newSim(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim init: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

// show renders widgets onto sim through a fresh Screen
func show(t *testing.T, sim tcell.Screen, autoClear bool, widgets ...Widget) *Screen {
	t.Helper()
	scr := NewScreen(vt.NewWriter(sim))
	scr.AutoClear = autoClear
	scr.ResetBuffer()
	scr.AddChild(widgets...)
	if err := scr.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}
	return scr
}

// rows reads the top-left w x h cells, 1-indexed origin, as strings
func rows(sim tcell.Screen, w, h int) []string {
	out := make([]string, h)
	for y := range h {
		line := make([]rune, w)
		for x := range w {
			line[x], _, _, _ = sim.GetContent(x, y)
		}
		out[y] = string(line)
	}
	return out
}

func assertRows(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i+1, got[i], want[i])
		}
	}
}

// clickRecorder records handler calls by widget
type clickRecorder struct {
	calls []clickCall
}

type clickCall struct {
	w    Clickable
	x, y int
}

func (r *clickRecorder) handler() ClickFunc {
	return func(w Clickable, x, y int) {
		r.calls = append(r.calls, clickCall{w: w, x: x, y: y})
	}
}
