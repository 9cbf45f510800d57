package tui

// ButtonGroup lays buttons out left to right as one segmented control with
// separators between neighbours. It owns its buttons; only the group itself
// should be added to a Screen.
type ButtonGroup struct {
	Frame
	Sep     SepStyle
	buttons []*Button
}

// NewButtonGroup positions buttons at (x, y) onward and tags their sides
func NewButtonGroup(x, y int, sep SepStyle, buttons ...*Button) *ButtonGroup {
	g := &ButtonGroup{
		Frame:   Frame{Anchor: Anchor{X: x, Y: y}, Margin: clickMargin},
		Sep:     sep,
		buttons: buttons,
	}
	g.Layout()
	return g
}

// Buttons returns the group's children in layout order
func (g *ButtonGroup) Buttons() []*Button { return g.buttons }

// MoveTo moves the group and re-lays out its buttons
func (g *ButtonGroup) MoveTo(x, y int) {
	g.X, g.Y = x, y
	g.Layout()
}

// Layout recomputes child positions, sides and heights and the group size.
// Each child advances the running width by its margin-expanded width.
func (g *ButtonGroup) Layout() {
	h, running := 0, 0
	n := len(g.buttons)
	for i, b := range g.buttons {
		h = max(h, b.H)
		b.X, b.Y = g.X+running, g.Y
		switch {
		case n == 1:
			b.SetSide(SideStandalone)
		case i == 0:
			b.SetSide(SideLeft)
		case i == n-1:
			b.SetSide(SideRight)
		default:
			b.SetSide(SideCenter)
		}
		running += MarginRect(b).XMax - b.X + 1
	}
	for _, b := range g.buttons {
		b.H = h
	}
	g.W, g.H = running, h+1
}

// SeparatorColumns returns the absolute column of each separator, one per
// boundary between adjacent buttons
func (g *ButtonGroup) SeparatorColumns() []int {
	if len(g.buttons) < 2 {
		return nil
	}
	cols := make([]int, 0, len(g.buttons)-1)
	cx := 0
	for _, b := range g.buttons[:len(g.buttons)-1] {
		cx += MarginRect(b).XMax - b.X + 1
		cols = append(cols, g.X+cx)
	}
	return cols
}

func (g *ButtonGroup) Render(s *Screen) {
	for _, b := range g.buttons {
		b.Render(s)
	}
	h := g.H - 1
	for _, x := range g.SeparatorColumns() {
		s.DrawSeparator(x, g.Y, h, g.Sep)
	}
}

// Click forwards a group-local click to the first button whose hit area
// contains it, in that button's local coordinates
func (g *ButtonGroup) Click(x, y int) {
	ax, ay := g.X+x, g.Y+y
	for _, b := range g.buttons {
		if InWidgetBounds(b, ax, ay) {
			b.Click(ax-b.X+b.Margin.Left, ay-b.Y+b.Margin.Top)
			return
		}
	}
}
