package cmp

import (
	"encoding/binary"
	"fmt"
	"os"
	"unicode/utf8"
)

// Magic is the two-byte file signature
const Magic = "CM"

const (
	offWidth   = 2
	offHeight  = 4
	offFlags   = 6
	offMarker  = 7
	headerSize = 16 // payload starts here
)

// Decode parses a complete CMP buffer. It is pure: the same bytes always
// yield an equal Image.
func Decode(data []byte) (*Image, error) {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return nil, &FormatError{Offset: 0, Reason: "missing CM signature"}
	}
	if len(data) < headerSize {
		return nil, &FormatError{Offset: len(data), Reason: "truncated header"}
	}

	w := int(binary.BigEndian.Uint16(data[offWidth:]))
	h := int(binary.BigEndian.Uint16(data[offHeight:]))
	flags := parseFlags(data[offFlags])

	unit := flags.unitSize()
	if flags.Transparent {
		marker, ok := readCodePoint(data[offMarker:offMarker+unit], unit)
		if !ok {
			return nil, &FormatError{Offset: offMarker, Reason: "transparency marker is not a code point"}
		}
		flags.TransparentChar = marker
	}

	if !flags.Supported() {
		return nil, &NotSupportedError{Flags: flags}
	}

	n := w * h
	end := headerSize + n*unit
	if len(data) < end {
		return nil, &FormatError{
			Offset: len(data),
			Reason: fmt.Sprintf("payload holds %d of %d cells", (len(data)-headerSize)/unit, n),
		}
	}

	cells := make([]rune, n)
	for i := range cells {
		off := headerSize + i*unit
		r, ok := readCodePoint(data[off:off+unit], unit)
		if !ok {
			return nil, &FormatError{Offset: off, Reason: "cell is not a code point"}
		}
		if flags.Transparent && r == flags.TransparentChar {
			r = Transparent
		}
		cells[i] = r
	}

	return &Image{Width: w, Height: h, Flags: flags, Cells: cells}, nil
}

// readCodePoint decodes one big-endian unit of 1, 2 or 4 bytes
func readCodePoint(b []byte, unit int) (rune, bool) {
	var v uint32
	switch unit {
	case 4:
		v = binary.BigEndian.Uint32(b)
	case 2:
		v = uint32(binary.BigEndian.Uint16(b))
	default:
		v = uint32(b[0])
	}
	if v > utf8.MaxRune {
		return 0, false
	}
	return rune(v), true
}

// Load reads a CMP file in one read and decodes it
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}
