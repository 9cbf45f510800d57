package vt

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// maxPending bounds a buffered unterminated escape sequence; longer garbage
// is dropped
const maxPending = 64

// Writer is an io.Writer that interprets a terminal output stream onto a
// tcell.Screen. Incomplete escape sequences and UTF-8 runes are carried over
// to the next Write.
type Writer struct {
	screen  tcell.Screen
	style   tcell.Style
	x, y    int // 0-indexed cursor
	lastX   int // column of the last printed cell, -1 if none
	lastY   int
	cursor  bool
	pending []byte
}

// NewWriter creates a writer drawing onto screen with the default style
func NewWriter(screen tcell.Screen) *Writer {
	return &Writer{screen: screen, style: tcell.StyleDefault, lastX: -1, cursor: true}
}

// Cursor returns the 1-indexed cursor position
func (w *Writer) Cursor() (x, y int) { return w.x + 1, w.y + 1 }

// CursorVisible reports the last requested cursor visibility
func (w *Writer) CursorVisible() bool { return w.cursor }

func (w *Writer) Write(p []byte) (int, error) {
	data := append(w.pending, p...)
	i := 0
scan:
	for i < len(data) {
		b := data[i]
		switch {
		case b == 0x1b:
			n, ok := w.escape(data[i:])
			if !ok {
				break scan
			}
			i += n
		case b == '\r':
			w.x = 0
			i++
		case b == '\n':
			w.y++
			i++
		case b < 0x20 || b == 0x7f:
			i++
		default:
			if !utf8.FullRune(data[i:]) {
				break scan
			}
			r, size := utf8.DecodeRune(data[i:])
			w.put(r)
			i += size
		}
	}
	rest := data[i:]
	if len(rest) > maxPending {
		rest = nil
	}
	w.pending = append(w.pending[:0:0], rest...)
	return len(p), nil
}

// Flush makes pending cell changes visible
func (w *Writer) Flush() error {
	w.screen.Show()
	return nil
}

// escape consumes one escape sequence; ok is false if it is incomplete
func (w *Writer) escape(seq []byte) (n int, ok bool) {
	if len(seq) < 2 {
		return 0, false
	}
	switch seq[1] {
	case '[':
	case 'c':
		w.screen.Clear()
		w.x, w.y = 0, 0
		return 2, true
	default:
		return 2, true
	}
	for j := 2; j < len(seq); j++ {
		if seq[j] >= 0x40 && seq[j] <= 0x7e {
			w.csi(string(seq[2:j]), seq[j])
			return j + 1, true
		}
	}
	return 0, false
}

func (w *Writer) csi(params string, final byte) {
	switch final {
	case 'H', 'f':
		row, col := 1, 1
		if params != "" {
			fields := strings.SplitN(params, ";", 2)
			row = atoiDefault(fields[0], 1)
			if len(fields) == 2 {
				col = atoiDefault(fields[1], 1)
			}
		}
		w.x, w.y = max(col-1, 0), max(row-1, 0)
	case 'J':
		if params == "2" || params == "3" {
			w.screen.Clear()
		}
	case 'h', 'l':
		if params == "?25" {
			w.cursor = final == 'h'
			if w.cursor {
				w.screen.ShowCursor(w.x, w.y)
			} else {
				w.screen.HideCursor()
			}
		}
	}
}

// put draws r at the cursor and advances by its display width. Zero-width
// runes combine with the previous cell.
func (w *Writer) put(r rune) {
	width := runewidth.RuneWidth(r)
	if width == 0 {
		if w.lastX >= 0 {
			mainc, comb, style, _ := w.screen.GetContent(w.lastX, w.lastY)
			w.screen.SetContent(w.lastX, w.lastY, mainc, append(comb, r), style)
		}
		return
	}
	w.screen.SetContent(w.x, w.y, r, nil, w.style)
	w.lastX, w.lastY = w.x, w.y
	w.x += width
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return def
	}
	return n
}
