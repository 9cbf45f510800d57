// input-test shows the decoded form of every read from the terminal: mouse
// reports, keystrokes as control pictures, and resize wake-ups
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/nullui/terminal"
	"github.com/lixenwraith/nullui/terminal/tui"
)

const maxLogEntries = 10

// inspector holds the event log and the widgets that show it
type inspector struct {
	scr    *tui.Screen
	header *tui.Label
	frame  *tui.Box
	log    *tui.Label
	status *tui.Label

	entries     []string
	cols, lines int
	events      int
	last        string
	running     bool
}

func newInspector(out io.Writer, cols, lines int) *inspector {
	in := &inspector{
		scr:     tui.NewScreen(out),
		cols:    cols,
		lines:   lines,
		running: true,
	}
	in.header = tui.NewLabel(1, 1, cols, 1, "input inspector: press keys or click, Ctrl+C or Ctrl+Q quits")
	in.frame = tui.NewBox(1, 2, cols-2, maxLogEntries, false, tui.SquareBox)
	in.log = tui.NewLabel(2, 3, cols-2, maxLogEntries, "")
	in.status = tui.NewLabel(1, lines, cols, 1, "")
	in.scr.AddChild(in.header, in.frame, in.log, in.status)
	in.refresh()
	return in
}

func (in *inspector) record(entry string) {
	in.events++
	in.last = entry
	in.entries = append(in.entries, entry)
	if len(in.entries) > maxLogEntries {
		in.entries = in.entries[len(in.entries)-maxLogEntries:]
	}
}

// handle splits one read into mouse reports and single keystrokes
func (in *inspector) handle(p []byte) {
	if len(p) == 0 {
		in.record("RESIZE " + strconv.Itoa(in.cols) + "x" + strconv.Itoa(in.lines))
		return
	}
	s := string(p)
	for len(s) > 0 && in.running {
		if ev, n, ok := terminal.ScanMouse(s); ok {
			in.record("MOUSE " + ev.String())
			s = s[n:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		in.record(describeKey(r))
		if r == 0x03 || r == 0x11 {
			in.running = false
		}
	}
}

// describeKey renders r with its printable form and code point
func describeKey(r rune) string {
	return fmt.Sprintf("KEY %s U+%04X", string(terminal.MakePrintable(r)), r)
}

func (in *inspector) resize(cols, lines int) {
	in.cols, in.lines = cols, lines
	in.header.Resize(cols, 1)
	in.frame.Resize(cols-2, maxLogEntries)
	in.log.Resize(cols-2, maxLogEntries)
	in.status.MoveTo(1, lines)
	in.status.Resize(cols, 1)
}

func (in *inspector) refresh() {
	// Label wraps hard at its width, so each entry fills exactly one row
	var text strings.Builder
	for _, e := range in.entries {
		text.WriteString(tui.Fit(e, in.log.W))
	}
	in.log.Text = text.String()
	in.status.Text = fmt.Sprintf("%dx%d  events: %d  last: %s", in.cols, in.lines, in.events, in.last)
}

func (in *inspector) draw() error {
	in.refresh()
	in.scr.ResetBuffer()
	if err := in.scr.Show(); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}
	return nil
}

func (in *inspector) loop(s *terminal.Session) error {
	if err := in.draw(); err != nil {
		return err
	}
	for in.running {
		p, err := s.Read(nil)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if p == nil {
			return nil
		}
		if cols, lines := s.Size(); cols != in.cols || lines != in.lines {
			in.resize(cols, lines)
		}
		in.handle(p)
		if err := in.draw(); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	noMouse := pflag.Bool("no-mouse", false, "Disable mouse reporting")
	pflag.Parse()

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			os.Exit(1)
		}
	}()

	err := terminal.Run(terminal.NewBackend(), func(s *terminal.Session) error {
		cols, lines := s.Size()
		in := newInspector(s, cols, lines)
		if *noMouse {
			return in.loop(s)
		}
		return s.WithMouse(func() error { return in.loop(s) })
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
}
