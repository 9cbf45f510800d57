package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RuneLen returns rune count of string
func RuneLen(s string) int {
	return len([]rune(s))
}

// PadRight pads string with spaces to width, counted in runes
func PadRight(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PadLeft right-justifies string in width runes
func PadLeft(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// Fit pads or cuts s to exactly width runes
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return PadRight(s, width)
}

// Slice returns runes[from:from+width] of s padded to width.
// Out-of-range windows yield spaces.
func Slice(s string, from, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if from < 0 {
		from = 0
	}
	if from >= len(runes) {
		return strings.Repeat(" ", width)
	}
	end := min(from+width, len(runes))
	return PadRight(string(runes[from:end]), width)
}

// DisplayWidth returns terminal column width of string
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadCells pads s with spaces to width terminal columns, so wide runes
// count twice
func PadCells(s string, width int) string {
	n := DisplayWidth(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
