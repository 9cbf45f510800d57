package cmp

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Encode serializes img in the layout Decode reads. Transparent cells are
// written as the marker character. Only the utf16 and utf32 variants can be
// encoded.
func Encode(img *Image) ([]byte, error) {
	f := img.Flags
	if !f.Supported() {
		return nil, &NotSupportedError{Flags: f}
	}
	if img.Width < 0 || img.Height < 0 || img.Width > 0xFFFF || img.Height > 0xFFFF {
		return nil, fmt.Errorf("cmp: dimensions %dx%d out of range", img.Width, img.Height)
	}
	if len(img.Cells) != img.Width*img.Height {
		return nil, fmt.Errorf("cmp: %d cells for %dx%d grid", len(img.Cells), img.Width, img.Height)
	}

	unit := f.unitSize()
	buf := make([]byte, headerSize+len(img.Cells)*unit)
	copy(buf, Magic)
	binary.BigEndian.PutUint16(buf[offWidth:], uint16(img.Width))
	binary.BigEndian.PutUint16(buf[offHeight:], uint16(img.Height))
	buf[offFlags] = f.Byte()

	if f.Transparent {
		if err := putCodePoint(buf[offMarker:], f.TransparentChar, unit); err != nil {
			return nil, fmt.Errorf("cmp: transparency marker: %w", err)
		}
	}

	for i, c := range img.Cells {
		if c == Transparent {
			if !f.Transparent {
				return nil, fmt.Errorf("cmp: transparent cell %d without transparency flag", i)
			}
			c = f.TransparentChar
		}
		if err := putCodePoint(buf[headerSize+i*unit:], c, unit); err != nil {
			return nil, fmt.Errorf("cmp: cell %d: %w", i, err)
		}
	}
	return buf, nil
}

func putCodePoint(b []byte, r rune, unit int) error {
	if r < 0 {
		return fmt.Errorf("negative code point %d", r)
	}
	switch unit {
	case 4:
		binary.BigEndian.PutUint32(b, uint32(r))
	case 2:
		if r > 0xFFFF {
			return fmt.Errorf("%U does not fit a 16-bit unit", r)
		}
		binary.BigEndian.PutUint16(b, uint16(r))
	default:
		if r > 0xFF {
			return fmt.Errorf("%U does not fit a byte", r)
		}
		b[0] = byte(r)
	}
	return nil
}

// FromText builds an image from newline-separated rows. The grid is as wide
// as the longest row; shorter rows are padded with spaces. With
// flags.Transparent set, runes equal to the marker become Transparent cells.
func FromText(text string, flags Flags) *Image {
	text = strings.TrimSuffix(text, "\n")
	var rows [][]rune
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			rows = append(rows, []rune(strings.TrimSuffix(line, "\r")))
		}
	}

	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}

	cells := make([]rune, 0, w*len(rows))
	for _, row := range rows {
		for col := 0; col < w; col++ {
			c := ' '
			if col < len(row) {
				c = row[col]
			}
			if flags.Transparent && c == flags.TransparentChar {
				c = Transparent
			}
			cells = append(cells, c)
		}
	}

	return &Image{Width: w, Height: len(rows), Flags: flags, Cells: cells}
}
