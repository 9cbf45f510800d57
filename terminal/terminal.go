package terminal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// ErrReleased is returned by operations on a session after Release
var ErrReleased = errors.New("terminal session released")

// Session is a scoped acquisition of the terminal: raw mode with a hidden
// cursor from Acquire until Release. Release is idempotent and always
// restores the backend mode, even when writing the restore sequences fails.
type Session struct {
	backend Backend

	mu       sync.Mutex
	released bool
	mouse    bool
}

// Acquire switches the backend to raw mode, hides the cursor and clears the screen
func Acquire(b Backend) (*Session, error) {
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	if err := b.Write([]byte(SeqCursorHide + SeqClear)); err != nil {
		b.Fini()
		return nil, fmt.Errorf("terminal setup: %w", err)
	}

	w, h := b.Size()
	slog.Debug("terminal acquired", "columns", w, "lines", h)
	return &Session{backend: b}, nil
}

// Run acquires a session, calls fn and releases the session however fn
// exits: normal return, error or panic. A panic is re-raised after release.
func Run(b Backend, fn func(*Session) error) (err error) {
	s, err := Acquire(b)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			s.Release()
			panic(r)
		}
		if rerr := s.Release(); err == nil {
			err = rerr
		}
	}()

	return fn(s)
}

// Release disables mouse reporting if still enabled, shows the cursor, clears
// the screen and restores the terminal mode saved at Acquire
func (s *Session) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil
	}
	s.released = true
	defer s.backend.Fini()

	seq := SeqCursorShow + SeqClear + SeqHome
	if s.mouse {
		seq = SeqMouseClickOff + SeqMouseSGROff + seq
		s.mouse = false
	}
	if err := s.backend.Write([]byte(seq)); err != nil {
		return fmt.Errorf("terminal restore: %w", err)
	}

	slog.Debug("terminal released")
	return nil
}

// EnableMouse turns on SGR click reporting. Enabling twice is a no-op.
func (s *Session) EnableMouse() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return ErrReleased
	}
	if s.mouse {
		return nil
	}
	if err := s.backend.Write([]byte(SeqMouseClickOn + SeqMouseSGROn)); err != nil {
		return fmt.Errorf("enable mouse: %w", err)
	}
	s.mouse = true
	return nil
}

// DisableMouse turns click reporting back off
func (s *Session) DisableMouse() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released || !s.mouse {
		return nil
	}
	s.mouse = false
	if err := s.backend.Write([]byte(SeqMouseClickOff + SeqMouseSGROff)); err != nil {
		return fmt.Errorf("disable mouse: %w", err)
	}
	return nil
}

// WithMouse runs fn with mouse reporting enabled and disables it afterwards,
// including when fn panics
func (s *Session) WithMouse(fn func() error) (err error) {
	if err := s.EnableMouse(); err != nil {
		return err
	}
	defer func() {
		if derr := s.DisableMouse(); err == nil {
			err = derr
		}
	}()
	return fn()
}

// MouseEnabled reports whether click reporting is currently on
func (s *Session) MouseEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouse
}

// Write sends a frame to the terminal. It implements io.Writer so a Screen
// can target the session directly.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	released := s.released
	s.mu.Unlock()
	if released {
		return 0, ErrReleased
	}
	if err := s.backend.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read blocks for the next input chunk; see Backend.Read
func (s *Session) Read(stopCh <-chan struct{}) ([]byte, error) {
	return s.backend.Read(stopCh)
}

// Size returns the terminal dimensions in cells
func (s *Session) Size() (columns, lines int) {
	return s.backend.Size()
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when Release cannot run normally.
func EmergencyReset(w io.Writer) {
	io.WriteString(w, SeqMouseClickOff+SeqMouseSGROff)
	io.WriteString(w, SeqCursorShow+seqSGR0+seqRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
