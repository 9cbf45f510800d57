package terminal

import (
	"strconv"
	"strings"
)

// ButtonLeft is the SGR button code of an unmodified primary button report
const ButtonLeft = 0

const (
	// sgrPress and sgrRelease terminate an SGR mouse report
	sgrPress   = 'M'
	sgrRelease = 'm'
)

// mouseIntroducers are the accepted report prefixes; the second is the
// control-picture form produced when input went through MakePrintable first
var mouseIntroducers = [...]string{"\x1b[<", "␛[<"}

// MouseEvent is one decoded SGR mouse report. X and Y are 1-indexed cells.
type MouseEvent struct {
	Button int
	X, Y   int
	Press  bool
}

// IsLeftRelease reports whether the event is a primary button release, the
// only event kind that triggers click handlers
func (e MouseEvent) IsLeftRelease() bool {
	return e.Button == ButtonLeft && !e.Press
}

// String returns a compact form for logs
func (e MouseEvent) String() string {
	action := "release"
	if e.Press {
		action = "press"
	}
	return "btn=" + strconv.Itoa(e.Button) + " " + action +
		" @" + strconv.Itoa(e.X) + "," + strconv.Itoa(e.Y)
}

// ParseMouse decodes an SGR mouse report at the start of s:
// CSI '<' Btn ';' X ';' Y ('M' | 'm'). Trailing input after the report is
// ignored. Input that is not a report yields ok == false.
func ParseMouse(s string) (ev MouseEvent, ok bool) {
	ev, _, ok = ScanMouse(s)
	return ev, ok
}

// ScanMouse is ParseMouse that also returns the number of bytes consumed,
// letting a reader split a chunk holding several reports or trailing keys
func ScanMouse(s string) (MouseEvent, int, bool) {
	rest := ""
	prefix := 0
	for _, intro := range mouseIntroducers {
		if strings.HasPrefix(s, intro) {
			rest = s[len(intro):]
			prefix = len(intro)
			break
		}
	}
	if prefix == 0 {
		return MouseEvent{}, 0, false
	}

	end := strings.IndexAny(rest, string([]byte{sgrPress, sgrRelease}))
	if end < 0 {
		return MouseEvent{}, 0, false
	}

	btn, x, y, ok := parseSGRParams(rest[:end])
	if !ok {
		return MouseEvent{}, 0, false
	}

	ev := MouseEvent{Button: btn, X: x, Y: y, Press: rest[end] == sgrPress}
	return ev, prefix + end + 1, true
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y"; every field is one or
// more decimal digits of any length that fits an int
func parseSGRParams(data string) (btn, x, y int, ok bool) {
	fields := strings.Split(data, ";")
	if len(fields) != 3 {
		return 0, 0, 0, false
	}

	var vals [3]int
	for i, f := range fields {
		if f == "" {
			return 0, 0, 0, false
		}
		for j := 0; j < len(f); j++ {
			if f[j] < '0' || f[j] > '9' {
				return 0, 0, 0, false
			}
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			// Digits only, so the sole failure is overflow
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}
