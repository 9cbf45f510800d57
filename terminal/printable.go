package terminal

import "strings"

const (
	controlPictures = 0x2400 // U+2400 SYMBOL FOR NULL
	pictureDelete   = 0x2421 // U+2421 SYMBOL FOR DELETE
)

// MakePrintable maps C0 control characters and DEL to their Unicode control
// pictures so they can be displayed; all other runes pass through unchanged
func MakePrintable(r rune) rune {
	switch {
	case r >= 0 && r < 0x20:
		return controlPictures + r
	case r == 0x7f:
		return pictureDelete
	}
	return r
}

// Printable applies MakePrintable to every rune of s
func Printable(s string) string {
	return strings.Map(MakePrintable, s)
}
