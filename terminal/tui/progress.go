package tui

import "strings"

// Partial block glyphs indexed by eighths filled
var progressEighths = [8]string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

const progressFull = "█"

// ProgressBar fills Progress/MaxProgress of its width in eighth-cell steps,
// the same fraction on every row
type ProgressBar struct {
	Frame
	Progress    int
	MaxProgress int
}

// NewProgressBar creates an empty bar out of 100
func NewProgressBar(x, y, w, h int) *ProgressBar {
	return &ProgressBar{
		Frame:       Frame{Anchor: Anchor{X: x, Y: y}, W: w, H: h, Margin: noMargin},
		MaxProgress: 100,
	}
}

func (p *ProgressBar) Render(s *Screen) {
	line := progressLine(p.W, p.Progress, p.MaxProgress)
	for row := range p.H {
		s.PrintAt(p.X, p.Y+row, line)
	}
}

// progressLine renders one bar row, exactly w runes wide
func progressLine(w, progress, total int) string {
	if w <= 0 {
		return ""
	}
	blocks := 0
	if total > 0 && progress > 0 {
		blocks = min(w*8*progress/total, w*8)
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(progressFull, blocks/8))
	sb.WriteString(progressEighths[blocks%8])
	return Fit(sb.String(), w)
}
