package tui

// Widget is anything that can draw itself into a Screen's frame buffer.
// Render must only append to the screen buffer and must be safe to call
// every frame.
type Widget interface {
	Render(s *Screen)
}

// Movable widgets have an origin cell
type Movable interface {
	Widget
	Position() (x, y int)
	MoveTo(x, y int)
}

// Sizable widgets have a size and a per-instance hit-test margin
type Sizable interface {
	Movable
	Bounds() Rect
	HitMargin() Margin
}

// Clickable widgets receive left-button releases that land inside their
// margin-expanded bounds, in widget-local coordinates
type Clickable interface {
	Sizable
	Click(x, y int)
}

// ClickFunc handles a click at widget-local coordinates
type ClickFunc func(w Clickable, x, y int)

var (
	// noMargin is the default for plain sizable widgets and labels
	noMargin = Margin{}
	// clickMargin is the default for generic clickable widgets
	clickMargin = Margin{Left: 0, Top: 0, Right: 1, Bottom: 1}
)

// Anchor is the embeddable origin of a Movable widget
type Anchor struct {
	X, Y int
}

func (a *Anchor) Position() (int, int) { return a.X, a.Y }

func (a *Anchor) MoveTo(x, y int) { a.X, a.Y = x, y }

// Frame is the embeddable geometry of a Sizable widget
type Frame struct {
	Anchor
	W, H   int
	Margin Margin
}

func (f *Frame) Bounds() Rect { return Rect{X: f.X, Y: f.Y, W: f.W, H: f.H} }

func (f *Frame) HitMargin() Margin { return f.Margin }

// Resize changes the widget size; the margin is unaffected
func (f *Frame) Resize(w, h int) { f.W, f.H = w, h }
