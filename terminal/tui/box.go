package tui

// Box is a bordered rectangle around a W x H interior
type Box struct {
	Frame
	Filled bool
	Style  BoxStyle
}

// NewBox creates a box
func NewBox(x, y, w, h int, filled bool, style BoxStyle) *Box {
	return &Box{
		Frame:  Frame{Anchor: Anchor{X: x, Y: y}, W: w, H: h, Margin: noMargin},
		Filled: filled,
		Style:  style,
	}
}

func (b *Box) Render(s *Screen) {
	if b.Filled {
		s.DrawFilledBox(b.X, b.Y, b.W, b.H, b.Style)
		return
	}
	s.DrawBox(b.X, b.Y, b.W, b.H, b.Style)
}
