package terminal

// Control sequences emitted by the toolkit. Positions are 1-indexed cells.
const (
	SeqClear      = "\x1b[2J"
	SeqHome       = "\x1b[H"
	SeqCursorHide = "\x1b[?25l"
	SeqCursorShow = "\x1b[?25h"

	// X10 click reporting (1000) encoded as SGR (1006)
	SeqMouseClickOn  = "\x1b[?1000h"
	SeqMouseClickOff = "\x1b[?1000l"
	SeqMouseSGROn    = "\x1b[?1006h"
	SeqMouseSGROff   = "\x1b[?1006l"

	seqSGR0 = "\x1b[0m"
	seqRIS  = "\x1bc" // Reset to Initial State (emergency)
)

// ByteWriter is satisfied by *bytes.Buffer, *bufio.Writer and *strings.Builder
type ByteWriter interface {
	Write(p []byte) (int, error)
	WriteByte(c byte) error
}

// writeInt writes a non-negative integer without allocation
func writeInt(w ByteWriter, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteCursorPos writes a CUP sequence for the 1-indexed cell (x, y)
func WriteCursorPos(w ByteWriter, x, y int) {
	w.Write([]byte("\x1b["))
	writeInt(w, y)
	w.WriteByte(';')
	writeInt(w, x)
	w.WriteByte('H')
}
