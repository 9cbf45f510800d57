//go:build !unix

package terminal

import "errors"

// ErrNotTerminal is returned by Init on platforms without a tty backend
var ErrNotTerminal = errors.New("terminal backend not supported on this platform")

type nullBackend struct{}

// NewBackend returns a backend whose Init always fails
func NewBackend() Backend { return nullBackend{} }

func (nullBackend) Init() error                          { return ErrNotTerminal }
func (nullBackend) Fini()                                {}
func (nullBackend) Size() (int, int)                     { return 80, 24 }
func (nullBackend) Write(p []byte) error                 { return ErrNotTerminal }
func (nullBackend) Read(<-chan struct{}) ([]byte, error) { return nil, ErrNotTerminal }
