package cmp

import (
	"strings"

	"github.com/lixenwraith/nullui/terminal"
)

// Transparent marks a cell that must not be drawn. It is outside the Unicode
// range, so no decoded code point can collide with it.
const Transparent rune = -1

const (
	flagColored     = 0x01
	flagUTF16       = 0x02
	flagUTF32       = 0x04
	flagTransparent = 0x08
)

// Flags is the decoded header flags byte plus the transparency marker
type Flags struct {
	Colored     bool
	UTF16       bool
	UTF32       bool
	Transparent bool
	// TransparentChar is the marker; meaningful only when Transparent is set
	TransparentChar rune
}

// parseFlags decodes the flags byte without the marker
func parseFlags(b byte) Flags {
	return Flags{
		Colored:     b&flagColored != 0,
		UTF16:       b&flagUTF16 != 0,
		UTF32:       b&flagUTF32 != 0,
		Transparent: b&flagTransparent != 0,
	}
}

// Byte packs the boolean flags back into the header byte
func (f Flags) Byte() byte {
	var b byte
	if f.Colored {
		b |= flagColored
	}
	if f.UTF16 {
		b |= flagUTF16
	}
	if f.UTF32 {
		b |= flagUTF32
	}
	if f.Transparent {
		b |= flagTransparent
	}
	return b
}

// unitSize is the byte width of one code point (and of the marker).
// utf32 takes precedence when both unicode bits are set.
func (f Flags) unitSize() int {
	switch {
	case f.UTF32:
		return 4
	case f.UTF16:
		return 2
	}
	return 1
}

// Supported reports whether the payload variant has a decoder
func (f Flags) Supported() bool {
	return !f.Colored && (f.UTF16 || f.UTF32)
}

// Image is a decoded CMP grid. Cells are row-major, len(Cells) == Width*Height,
// each either a display rune or Transparent. Images are not modified after load.
type Image struct {
	Width  int
	Height int
	Flags  Flags
	Cells  []rune
}

// At returns the cell at column col, row row (0-indexed), or Transparent when
// out of range
func (img *Image) At(col, row int) rune {
	if col < 0 || row < 0 || col >= img.Width || row >= img.Height {
		return Transparent
	}
	return img.Cells[row*img.Width+col]
}

// Read renders the grid as newline-separated rows using terminal.MakePrintable
func (img *Image) Read() string {
	return img.ReadWith(terminal.MakePrintable)
}

// ReadWith renders the grid as rows joined by '\n' with no trailing newline.
// Visible cells pass through sanitize; transparent cells are emitted as the
// raw marker character, unsanitized.
func (img *Image) ReadWith(sanitize func(rune) rune) string {
	if img.Width <= 0 || img.Height <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(img.Cells) + img.Height)
	for i, c := range img.Cells {
		if i > 0 && i%img.Width == 0 {
			sb.WriteByte('\n')
		}
		if c == Transparent {
			sb.WriteRune(img.Flags.TransparentChar)
			continue
		}
		if sanitize != nil {
			c = sanitize(c)
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
