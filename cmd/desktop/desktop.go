package main

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/lixenwraith/nullui/audio"
	"github.com/lixenwraith/nullui/cmp"
	"github.com/lixenwraith/nullui/config"
	"github.com/lixenwraith/nullui/terminal"
	"github.com/lixenwraith/nullui/terminal/tui"
)

const (
	settingsGlyph = " 󰖷 "
	exitGlyph     = " 󰖭 "

	caretOpen = "▏"
	caretFull = "█"

	quickbarInset = 10
)

// desktop is the host loop state: widgets, command buffer and the running
// flag. Click handlers close over it instead of touching globals.
type desktop struct {
	cfg   config.Config
	scr   *tui.Screen
	sound *audio.SoundManager

	status   *tui.Label
	box      *tui.Box
	image    *tui.Image
	quickbar *tui.ButtonGroup
	cursor   *tui.Label

	cols, lines int
	cmd         []rune
	running     bool
	boxStyle    int
}

func newDesktop(cfg config.Config, out io.Writer, cols, lines int, img *cmp.Image, sound *audio.SoundManager) *desktop {
	d := &desktop{
		cfg:     cfg,
		scr:     tui.NewScreen(out),
		sound:   sound,
		cols:    cols,
		lines:   lines,
		running: true,
	}

	boxStyle, _ := tui.BoxStyleByName(cfg.UI.BoxStyle)
	sepStyle, _ := tui.SepStyleByName(cfg.UI.SeparatorStyle)
	for i, name := range tui.BoxStyleNames() {
		if name == cfg.UI.BoxStyle {
			d.boxStyle = i
		}
	}

	d.status = tui.NewLabel(1, lines, cols, 1, "")
	d.box = tui.NewBox(1, 2, cols-2, lines-4, true, boxStyle)
	d.quickbar = tui.NewButtonGroup(cols-quickbarInset, 3, sepStyle,
		tui.NewButton(0, 0, 3, 1, settingsGlyph, boxStyle, d.onSettings),
		tui.NewButton(0, 0, 3, 1, exitGlyph, boxStyle, d.onExit),
	)
	d.cursor = tui.NewLabel(1, 1, 1, 1, cfg.UI.CursorGlyph)

	parts := []tui.Widget{d.status, d.box}
	if img != nil {
		d.image = tui.NewImage(3, 3, img)
		parts = append(parts, d.image)
	}
	parts = append(parts, d.quickbar, d.cursor)
	d.scr.AddChild(tui.Compose(parts...))

	d.updateStatus()
	return d
}

// onSettings cycles the desktop box through the catalogued styles
func (d *desktop) onSettings(_ tui.Clickable, _, _ int) {
	names := tui.BoxStyleNames()
	d.boxStyle = (d.boxStyle + 1) % len(names)
	d.box.Style, _ = tui.BoxStyleByName(names[d.boxStyle])
	d.sound.PlayClick()
	slog.Debug("box style changed", "style", names[d.boxStyle])
}

func (d *desktop) onExit(_ tui.Clickable, _, _ int) {
	d.sound.PlayClick()
	d.running = false
}

// resize re-anchors size-dependent widgets
func (d *desktop) resize(cols, lines int) {
	d.cols, d.lines = cols, lines
	d.status.MoveTo(1, lines)
	d.status.Resize(cols, 1)
	d.box.Resize(cols-2, lines-4)
	d.quickbar.MoveTo(cols-quickbarInset, 3)
	slog.Debug("resized", "cols", cols, "lines", lines)
}

// handleInput consumes one read from the terminal. Mouse reports are
// dispatched as they are found; every other rune is a keystroke.
func (d *desktop) handleInput(in []byte) {
	s := string(in)
	for len(s) > 0 && d.running {
		if ev, n, ok := terminal.ScanMouse(s); ok {
			d.scr.Dispatch(ev)
			d.cursor.MoveTo(ev.X, ev.Y)
			d.cmd = d.cmd[:0]
			s = s[n:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		d.handleKey(r)
		s = s[size:]
	}
	d.updateStatus()
}

// handleKey appends the printable form of r to the command buffer, capped
// at max_command runes, then applies the line-editing commands
func (d *desktop) handleKey(r rune) {
	c := terminal.MakePrintable(r)
	limit := d.cfg.UI.MaxCommand
	dropped := len(d.cmd) >= limit
	d.cmd = append(d.cmd, c)
	if len(d.cmd) > limit {
		d.cmd = d.cmd[:limit]
	}

	switch {
	case string(d.cmd) == "exit":
		d.cmd = d.cmd[:0]
		d.running = false
	case c == '␃':
		d.running = false
	case c == '␍':
		d.cmd = d.cmd[:0]
	case c == '␡':
		// The DEL picture itself may have been kept; drop it with the rune it erases
		drop := 1
		if d.cmd[len(d.cmd)-1] == '␡' {
			drop = 2
		}
		d.cmd = d.cmd[:max(len(d.cmd)-drop, 0)]
	default:
		if dropped {
			d.sound.PlayError()
		}
	}
}

// statusLine shows the command buffer, a caret that turns solid when the
// buffer is full, and the remaining capacity in segmented digits. The buffer
// is padded by display width so the digits stay in one column.
func (d *desktop) statusLine() string {
	limit := d.cfg.UI.MaxCommand
	caret := caretOpen
	if len(d.cmd) >= limit {
		caret = caretFull
	}
	return tui.PadCells(string(d.cmd)+caret, limit+1) + tui.PadLeft(sevenSeg(limit-len(d.cmd)), 2)
}

func (d *desktop) updateStatus() {
	d.status.Text = d.statusLine()
}

// frame composes and emits one full frame
func (d *desktop) frame() error {
	d.scr.ResetBuffer()
	if err := d.scr.Show(); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}
	return nil
}

// loop runs until exit or end of input
func (d *desktop) loop(s *terminal.Session) error {
	if err := d.frame(); err != nil {
		return err
	}
	for d.running {
		in, err := s.Read(nil)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if in == nil {
			return nil
		}
		if cols, lines := s.Size(); cols != d.cols || lines != d.lines {
			d.resize(cols, lines)
		}
		d.handleInput(in)
		if err := d.frame(); err != nil {
			return err
		}
	}
	return nil
}
