package tui

// Side classifies a button by its position inside a ButtonGroup; it picks
// which box edges are drawn and the button's hit-test margin
type Side uint8

const (
	SideStandalone Side = iota
	SideLeft
	SideCenter
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left-end"
	case SideCenter:
		return "center"
	case SideRight:
		return "right-end"
	default:
		return "standalone"
	}
}

// margin reserves room for the separator column shared with neighbours
func (s Side) margin() Margin {
	switch s {
	case SideLeft:
		return Margin{Left: 0, Top: 0, Right: 1, Bottom: 2}
	case SideCenter:
		return Margin{Left: -1, Top: 0, Right: 1, Bottom: 2}
	case SideRight:
		return Margin{Left: -1, Top: 0, Right: 2, Bottom: 2}
	default:
		return Margin{Left: 0, Top: 0, Right: 2, Bottom: 2}
	}
}

// closed returns the box edges drawn for this side
func (s Side) closed() Edges {
	switch s {
	case SideLeft:
		return EdgeLeft | EdgeTop | EdgeBottom
	case SideCenter:
		return EdgeTop | EdgeBottom
	case SideRight:
		return EdgeTop | EdgeRight | EdgeBottom
	default:
		return EdgeAll
	}
}

// Button is a boxed clickable label. W and H size the interior; the border
// adds one cell on every side, which the default margin covers.
type Button struct {
	Frame
	Text    string
	Style   BoxStyle
	OnClick ClickFunc
	side    Side
}

// NewButton creates a standalone button
func NewButton(x, y, w, h int, text string, style BoxStyle, onClick ClickFunc) *Button {
	b := &Button{
		Frame:   Frame{Anchor: Anchor{X: x, Y: y}, W: w, H: h},
		Text:    text,
		Style:   style,
		OnClick: onClick,
	}
	b.SetSide(SideStandalone)
	return b
}

// SetSide changes the side tag and resets the margin to that side's default
func (b *Button) SetSide(side Side) {
	b.side = side
	b.Margin = side.margin()
}

func (b *Button) Side() Side { return b.side }

func (b *Button) Render(s *Screen) {
	s.DrawOpenFilledBox(b.X, b.Y, b.W, b.H, b.side.closed(), b.Style)
	renderText(s, b.X+1, b.Y+1, b.W, b.H, b.Text)
}

func (b *Button) Click(x, y int) {
	if b.OnClick != nil {
		b.OnClick(b, x, y)
	}
}
