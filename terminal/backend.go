package terminal

// Backend abstracts the platform terminal: mode switching, size, raw I/O.
// A Session owns exactly one Backend for its lifetime.
type Backend interface {
	// Init switches the terminal into raw mode, remembering the prior mode
	Init() error
	// Fini restores the mode saved by Init. Safe to call without Init
	Fini()

	// Size returns the terminal dimensions in cells
	Size() (columns, lines int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed, or an error occurs.
	// A nil slice with nil error means stop or EOF. An empty non-nil slice
	// is a wake-up without input, e.g. after a resize.
	Read(stopCh <-chan struct{}) ([]byte, error)
}
