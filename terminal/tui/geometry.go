package tui

// Rect is a cell rectangle at 1-indexed terminal coordinates
type Rect struct {
	X, Y int
	W, H int
}

// Margin extends a widget's clickable area on each side without changing the
// cells it draws. Negative values shrink the clickable area.
type Margin struct {
	Left, Top, Right, Bottom int
}

// Extent is an inclusive cell range on both axes
type Extent struct {
	XMin, XMax int
	YMin, YMax int
}

// Contains reports whether (x, y) lies inside the extent, edges included
func (e Extent) Contains(x, y int) bool {
	return e.XMin <= x && x <= e.XMax && e.YMin <= y && y <= e.YMax
}

// MarginRect returns the hit-test extent of w: its bounds grown by its margin
func MarginRect(w Sizable) Extent {
	r := w.Bounds()
	m := w.HitMargin()
	return Extent{
		XMin: r.X - m.Left,
		XMax: r.X + r.W + m.Right - 1,
		YMin: r.Y - m.Top,
		YMax: r.Y + r.H + m.Bottom - 1,
	}
}

// InBounds is the inclusive point-in-extent test
func InBounds(e Extent, x, y int) bool {
	return e.Contains(x, y)
}

// InWidgetBounds reports whether (x, y) hits w's margin-expanded area
func InWidgetBounds(w Sizable, x, y int) bool {
	return InBounds(MarginRect(w), x, y)
}
