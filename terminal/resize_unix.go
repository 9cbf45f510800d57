//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// resizeWatcher turns SIGWINCH into a pending flag the input loop can poll
type resizeWatcher struct {
	sigCh chan os.Signal
}

func newResizeWatcher() *resizeWatcher {
	return &resizeWatcher{sigCh: make(chan os.Signal, 1)}
}

func (r *resizeWatcher) start() {
	signal.Notify(r.sigCh, syscall.SIGWINCH)
}

func (r *resizeWatcher) stop() {
	signal.Stop(r.sigCh)
}

// pending reports, and consumes, a resize since the last call.
// Coalesces bursts: the channel holds at most one signal.
func (r *resizeWatcher) pending() bool {
	select {
	case <-r.sigCh:
		return true
	default:
		return false
	}
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}
