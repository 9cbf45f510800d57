package tui

import "testing"

func threeButtons(rec *clickRecorder) []*Button {
	return []*Button{
		NewButton(0, 0, 1, 1, "a", SquareBox, rec.handler()),
		NewButton(0, 0, 1, 1, "b", SquareBox, rec.handler()),
		NewButton(0, 0, 1, 1, "c", SquareBox, rec.handler()),
	}
}

func TestButtonGroupLayout(t *testing.T) {
	var rec clickRecorder
	bs := threeButtons(&rec)
	bs[1].H = 2
	g := NewButtonGroup(1, 1, ConnectedSep, bs...)

	wantX := []int{1, 3, 5}
	wantSide := []Side{SideLeft, SideCenter, SideRight}
	for i, b := range g.Buttons() {
		if b.X != wantX[i] || b.Y != 1 {
			t.Errorf("button %d at (%d,%d), want (%d,1)", i, b.X, b.Y, wantX[i])
		}
		if b.Side() != wantSide[i] {
			t.Errorf("button %d side = %v, want %v", i, b.Side(), wantSide[i])
		}
		if b.H != 2 {
			t.Errorf("button %d height = %d, want common height 2", i, b.H)
		}
	}
	if g.W != 7 || g.H != 3 {
		t.Errorf("group size = %dx%d, want 7x3", g.W, g.H)
	}
	if got := g.SeparatorColumns(); len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Errorf("separators = %v, want [3 5]", got)
	}
}

func TestButtonGroupSingleIsStandalone(t *testing.T) {
	b := NewButton(0, 0, 2, 1, "x", SquareBox, nil)
	g := NewButtonGroup(4, 2, NotchSep, b)
	if b.Side() != SideStandalone {
		t.Errorf("side = %v, want standalone", b.Side())
	}
	if len(g.SeparatorColumns()) != 0 {
		t.Error("single button group should have no separators")
	}
	if g.W != 4 {
		t.Errorf("group width = %d, want 4", g.W)
	}
}

func TestButtonGroupMoveTo(t *testing.T) {
	var rec clickRecorder
	g := NewButtonGroup(1, 1, NotchSep, threeButtons(&rec)...)
	g.MoveTo(10, 4)
	if b := g.Buttons()[2]; b.X != 14 || b.Y != 4 {
		t.Errorf("last button at (%d,%d), want (14,4)", b.X, b.Y)
	}
}

func TestButtonGroupRender(t *testing.T) {
	var rec clickRecorder
	sim := newSim(t, 10, 4)
	show(t, sim, true, NewButtonGroup(1, 1, ConnectedSep, threeButtons(&rec)...))
	assertRows(t, rows(sim, 7, 3), []string{
		"┌─┬─┬─┐",
		"│a│b│c│",
		"└─┴─┴─┘",
	})
}

func TestButtonGroupSeparatorCount(t *testing.T) {
	for n := 2; n <= 5; n++ {
		bs := make([]*Button, n)
		for i := range bs {
			bs[i] = NewButton(0, 0, 2, 1, "", SquareBox, nil)
		}
		g := NewButtonGroup(1, 1, DottedSep, bs...)

		cols := g.SeparatorColumns()
		if len(cols) != n-1 {
			t.Errorf("n=%d: %d separators", n, len(cols))
			continue
		}
		// Each separator sits on the column where the next button starts
		for i, x := range cols {
			if x != bs[i+1].X {
				t.Errorf("n=%d: separator %d at %d, next button at %d", n, i, x, bs[i+1].X)
			}
		}
	}
}

func TestButtonGroupClick(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int // absolute
		want   int // button index, -1 for none
		lx, ly int
	}{
		{"left button text", 2, 2, 0, 1, 1},
		{"left button border", 1, 1, 0, 0, 0},
		{"center button", 4, 2, 1, 0, 1},
		{"right corner", 7, 3, 2, 1, 2},
		{"separator is dead", 3, 2, -1, 0, 0},
		{"second separator is dead", 5, 2, -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec clickRecorder
			bs := threeButtons(&rec)
			g := NewButtonGroup(1, 1, ConnectedSep, bs...)
			g.Click(tt.x-g.X, tt.y-g.Y)

			if tt.want < 0 {
				if len(rec.calls) != 0 {
					t.Errorf("expected no click, got %+v", rec.calls)
				}
				return
			}
			if len(rec.calls) != 1 {
				t.Fatalf("got %d clicks, want 1", len(rec.calls))
			}
			c := rec.calls[0]
			if c.w != bs[tt.want] {
				t.Errorf("clicked %p, want button %d", c.w, tt.want)
			}
			if c.x != tt.lx || c.y != tt.ly {
				t.Errorf("local = (%d,%d), want (%d,%d)", c.x, c.y, tt.lx, tt.ly)
			}
		})
	}
}
