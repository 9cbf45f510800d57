package tui

import (
	"github.com/lixenwraith/nullui/cmp"
	"github.com/lixenwraith/nullui/terminal"
)

// Image draws a decoded CMP image. Transparent cells are skipped so the
// terminal cell underneath is left as it was.
type Image struct {
	Anchor
	Image *cmp.Image
}

// NewImage places img with its top-left cell at (x, y)
func NewImage(x, y int, img *cmp.Image) *Image {
	return &Image{Anchor: Anchor{X: x, Y: y}, Image: img}
}

func (m *Image) Render(s *Screen) {
	if m.Image == nil {
		return
	}
	for row := range m.Image.Height {
		for col := range m.Image.Width {
			c := m.Image.At(col, row)
			if c == cmp.Transparent {
				continue
			}
			s.PrintAt(m.X+col, m.Y+row, string(terminal.MakePrintable(c)))
		}
	}
}
