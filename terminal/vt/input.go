package vt

import (
	"strconv"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nullui/terminal"
)

// sgrButtons maps tcell buttons to SGR button ids
var sgrButtons = []struct {
	mask tcell.ButtonMask
	id   int
}{
	{tcell.Button1, terminal.ButtonLeft},
	{tcell.Button3, 1},
	{tcell.Button2, 2},
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// MouseTracker turns tcell's button-state snapshots into press and release
// transitions
type MouseTracker struct {
	held tcell.ButtonMask
}

// Translate returns the press or release carried by ev, with 1-indexed
// coordinates. Motion without a button change yields no event.
func (t *MouseTracker) Translate(ev *tcell.EventMouse) (terminal.MouseEvent, bool) {
	x, y := ev.Position()
	now := ev.Buttons() & buttonMask
	pressed := now &^ t.held
	released := t.held &^ now
	t.held = now
	for _, b := range sgrButtons {
		switch {
		case pressed&b.mask != 0:
			return terminal.MouseEvent{Button: b.id, X: x + 1, Y: y + 1, Press: true}, true
		case released&b.mask != 0:
			return terminal.MouseEvent{Button: b.id, X: x + 1, Y: y + 1, Press: false}, true
		}
	}
	return terminal.MouseEvent{}, false
}

// EncodeMouse writes ev as an SGR mouse report
func EncodeMouse(ev terminal.MouseEvent) []byte {
	b := make([]byte, 0, 16)
	b = append(b, "\x1b[<"...)
	b = strconv.AppendInt(b, int64(ev.Button), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(ev.X), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(ev.Y), 10)
	if ev.Press {
		b = append(b, 'M')
	} else {
		b = append(b, 'm')
	}
	return b
}

// EncodeKey returns the bytes a raw-mode terminal sends for ev, or nil for
// keys without a single-byte or rune encoding
func EncodeKey(ev *tcell.EventKey) []byte {
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return utf8.AppendRune(nil, ev.Rune())
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return []byte{0x7f}
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		return []byte{byte(k - tcell.KeyCtrlSpace)}
	case k < 0x20:
		return []byte{byte(k)}
	}
	return nil
}
