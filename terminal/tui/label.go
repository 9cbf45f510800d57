package tui

// Label shows text wrapped hard at W runes per line over H lines
type Label struct {
	Frame
	Text string
}

// NewLabel creates a label with no hit-test margin
func NewLabel(x, y, w, h int, text string) *Label {
	return &Label{
		Frame: Frame{Anchor: Anchor{X: x, Y: y}, W: w, H: h, Margin: noMargin},
		Text:  text,
	}
}

func (l *Label) Render(s *Screen) {
	renderText(s, l.X, l.Y, l.W, l.H, l.Text)
}

// ClickableLabel is a Label that receives clicks
type ClickableLabel struct {
	Frame
	Text    string
	OnClick ClickFunc
}

// NewClickableLabel creates a clickable label; its hit area matches its
// drawn area
func NewClickableLabel(x, y, w, h int, text string, onClick ClickFunc) *ClickableLabel {
	return &ClickableLabel{
		Frame:   Frame{Anchor: Anchor{X: x, Y: y}, W: w, H: h, Margin: noMargin},
		Text:    text,
		OnClick: onClick,
	}
}

func (l *ClickableLabel) Render(s *Screen) {
	renderText(s, l.X, l.Y, l.W, l.H, l.Text)
}

func (l *ClickableLabel) Click(x, y int) {
	if l.OnClick != nil {
		l.OnClick(l, x, y)
	}
}

// renderText writes line i of text, runes [w*i, w*(i+1)), at row y+i
func renderText(s *Screen, x, y, w, h int, text string) {
	for line := range h {
		s.PrintAt(x, y+line, Slice(text, w*line, w))
	}
}
