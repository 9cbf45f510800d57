package tui

import (
	"strings"

	"github.com/lixenwraith/nullui/terminal"
)

// Edges selects which sides of a box are closed (drawn with border glyphs)
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	EdgeNone Edges = 0
	EdgeAll        = EdgeLeft | EdgeTop | EdgeRight | EdgeBottom
)

// Has reports whether all edges in f are closed
func (e Edges) Has(f Edges) bool { return e&f == f }

// Move appends a cursor positioning sequence to the frame buffer
func (s *Screen) Move(x, y int) {
	terminal.WriteCursorPos(&s.buf, x, y)
}

// Home moves the cursor to (1, 1)
func (s *Screen) Home() { s.Move(1, 1) }

// Print appends text at the current cursor position
func (s *Screen) Print(text string) {
	s.buf.WriteString(text)
}

// PrintAt moves then prints
func (s *Screen) PrintAt(x, y int, text string) {
	s.Move(x, y)
	s.Print(text)
}

// DrawBox draws a border around a w x h interior whose top-left border
// glyph sits at (x, y); the interior is not touched. Negative sizes count
// as zero, leaving only the corners.
func (s *Screen) DrawBox(x, y, w, h int, style BoxStyle) {
	w, h = max(w, 0), max(h, 0)
	s.PrintAt(x, y, style.TopLeft+strings.Repeat(style.Top, w)+style.TopRight)
	for oy := 1; oy <= h; oy++ {
		s.PrintAt(x, y+oy, style.Left)
		s.PrintAt(x+w+1, y+oy, style.Right)
	}
	s.PrintAt(x, y+h+1, style.BottomLeft+strings.Repeat(style.Bottom, w)+style.BottomRight)
}

// DrawFilledBox draws a border and blanks the interior
func (s *Screen) DrawFilledBox(x, y, w, h int, style BoxStyle) {
	w, h = max(w, 0), max(h, 0)
	fill := strings.Repeat(" ", w)
	s.PrintAt(x, y, style.TopLeft+strings.Repeat(style.Top, w)+style.TopRight)
	for oy := 1; oy <= h; oy++ {
		s.PrintAt(x, y+oy, style.Left+fill+style.Right)
	}
	s.PrintAt(x, y+h+1, style.BottomLeft+strings.Repeat(style.Bottom, w)+style.BottomRight)
}

// DrawOpenBox draws only the closed edges; open edges leave their cells
// untouched
func (s *Screen) DrawOpenBox(x, y, w, h int, closed Edges, style BoxStyle) {
	w, h = max(w, 0), max(h, 0)
	if closed == EdgeAll {
		s.DrawBox(x, y, w, h, style)
		return
	}
	left, right := closed.Has(EdgeLeft), closed.Has(EdgeRight)

	// Horizontal runs start one column in when the left corner is open
	hx := x
	if !left {
		hx = x + 1
	}
	if closed.Has(EdgeTop) {
		s.PrintAt(hx, y, pick(left, style.TopLeft, "")+strings.Repeat(style.Top, w)+pick(right, style.TopRight, ""))
	}
	for oy := 1; oy <= h; oy++ {
		if left {
			s.PrintAt(x, y+oy, style.Left)
		}
		if right {
			s.PrintAt(x+w+1, y+oy, style.Right)
		}
	}
	if closed.Has(EdgeBottom) {
		s.PrintAt(hx, y+h+1, pick(left, style.BottomLeft, "")+strings.Repeat(style.Bottom, w)+pick(right, style.BottomRight, ""))
	}
}

// DrawOpenFilledBox fills the whole (w+2) x (h+2) area; open edges are
// written as spaces
func (s *Screen) DrawOpenFilledBox(x, y, w, h int, closed Edges, style BoxStyle) {
	w, h = max(w, 0), max(h, 0)
	if closed == EdgeAll {
		s.DrawFilledBox(x, y, w, h, style)
		return
	}
	left, top := closed.Has(EdgeLeft), closed.Has(EdgeTop)
	right, bottom := closed.Has(EdgeRight), closed.Has(EdgeBottom)

	s.PrintAt(x, y, pick(left, style.TopLeft, " ")+strings.Repeat(pick(top, style.Top, " "), w)+pick(right, style.TopRight, " "))
	fill := strings.Repeat(" ", w)
	for oy := 1; oy <= h; oy++ {
		s.PrintAt(x, y+oy, pick(left, style.Left, " ")+fill+pick(right, style.Right, " "))
	}
	s.PrintAt(x, y+h+1, pick(left, style.BottomLeft, " ")+strings.Repeat(pick(bottom, style.Bottom, " "), w)+pick(right, style.BottomRight, " "))
}

// DrawSeparator draws a vertical separator at column x spanning an h-row
// interior framed by a top and bottom row
func (s *Screen) DrawSeparator(x, y, h int, style SepStyle) {
	h = max(h, 0)
	s.PrintAt(x, y, style.Top)
	for oy := 1; oy <= h; oy++ {
		s.PrintAt(x, y+oy, style.Middle)
	}
	s.PrintAt(x, y+h+1, style.Bottom)
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
