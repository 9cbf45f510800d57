package tui

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/nullui/terminal"
)

// Screen owns the top-level widgets and the frame buffer. It is not safe for
// concurrent use; one goroutine drives the render loop.
type Screen struct {
	out      io.Writer
	buf      bytes.Buffer
	children []Widget

	// AutoClear prefixes every frame with a full screen clear
	AutoClear bool
	// DefaultContent is appended after the frame preamble on every reset
	DefaultContent string
}

// NewScreen creates a screen that writes frames to out, typically an
// acquired terminal.Session
func NewScreen(out io.Writer) *Screen {
	s := &Screen{out: out, AutoClear: true}
	s.ResetBuffer()
	return s
}

// AddChild appends widgets in z-order. Groups are flattened so that each
// member is hit-tested on its own.
func (s *Screen) AddChild(widgets ...Widget) *Screen {
	s.children = append(s.children, Compose(widgets...)...)
	return s
}

// Children returns the top-level widgets in render order
func (s *Screen) Children() []Widget { return s.children }

// ResetBuffer starts a new frame: optional clear, home, default content
func (s *Screen) ResetBuffer() {
	s.buf.Reset()
	if s.AutoClear {
		s.buf.WriteString(terminal.SeqClear)
	}
	s.buf.WriteString(terminal.SeqHome)
	s.buf.WriteString(s.DefaultContent)
}

// Buffer returns the pending frame
func (s *Screen) Buffer() string { return s.buf.String() }

// Render appends every child to the frame buffer in insertion order
func (s *Screen) Render() {
	for _, c := range s.children {
		c.Render(s)
	}
}

// Show renders and emits the frame in a single write. Writers with a
// Flush method are flushed afterwards.
func (s *Screen) Show() error {
	s.Render()
	if _, err := s.out.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if f, ok := s.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}
	}
	return nil
}

// HandleMouse parses raw input as an SGR mouse report and dispatches left
// releases. The decoded event is returned whether or not a widget fired.
func (s *Screen) HandleMouse(raw string) (terminal.MouseEvent, bool) {
	ev, ok := terminal.ParseMouse(raw)
	if !ok {
		return ev, false
	}
	s.Dispatch(ev)
	return ev, true
}

// Dispatch delivers a left-button release to the first top-level Clickable
// whose hit area contains the event. It reports whether a widget fired.
func (s *Screen) Dispatch(ev terminal.MouseEvent) bool {
	if !ev.IsLeftRelease() {
		return false
	}
	for _, w := range s.children {
		c, ok := w.(Clickable)
		if !ok || !InWidgetBounds(c, ev.X, ev.Y) {
			continue
		}
		x, y := c.Position()
		slog.Debug("click dispatched", "widget", fmt.Sprintf("%T", c), "x", ev.X-x, "y", ev.Y-y)
		c.Click(ev.X-x, ev.Y-y)
		return true
	}
	return false
}
