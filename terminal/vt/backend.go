package vt

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ErrScreenClosed is returned by Read after Fini
var ErrScreenClosed = errors.New("tcell screen closed")

// Backend drives a tcell.Screen through the terminal.Backend contract
type Backend struct {
	screen tcell.Screen
	writer *Writer
	mouse  MouseTracker

	events   chan tcell.Event
	quit     chan struct{}
	quitOnce sync.Once
}

// NewBackend wraps screen; Init must be called before use
func NewBackend(screen tcell.Screen) *Backend {
	return &Backend{screen: screen, writer: NewWriter(screen)}
}

// Screen returns the wrapped tcell screen
func (b *Backend) Screen() tcell.Screen { return b.screen }

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	b.screen.EnableMouse(tcell.MouseButtonEvents)
	b.events = make(chan tcell.Event, 16)
	b.quit = make(chan struct{})
	go b.screen.ChannelEvents(b.events, b.quit)
	return nil
}

func (b *Backend) Fini() {
	if b.quit == nil {
		return
	}
	b.quitOnce.Do(func() {
		close(b.quit)
		b.screen.DisableMouse()
		b.screen.Fini()
	})
}

func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// Write interprets p and shows the result
func (b *Backend) Write(p []byte) error {
	if _, err := b.writer.Write(p); err != nil {
		return err
	}
	return b.writer.Flush()
}

// Read waits for the next tcell event that has a raw input encoding
func (b *Backend) Read(stopCh <-chan struct{}) ([]byte, error) {
	for {
		select {
		case <-stopCh:
			return nil, nil
		case ev, ok := <-b.events:
			if !ok {
				return nil, ErrScreenClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if p := EncodeKey(ev); p != nil {
					return p, nil
				}
			case *tcell.EventMouse:
				if m, ok := b.mouse.Translate(ev); ok {
					return EncodeMouse(m), nil
				}
			case *tcell.EventResize:
				b.screen.Sync()
				return []byte{}, nil
			}
		}
	}
}
