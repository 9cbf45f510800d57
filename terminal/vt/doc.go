// Package vt runs the terminal output protocol against a tcell screen.
//
// Writer interprets the control sequences emitted by tui.Screen (cursor
// positioning, clear, cursor visibility) and places text into tcell cells.
// Backend adapts a tcell.Screen to terminal.Backend so a Session can drive
// tcell, including tcell's simulation screen in tests, with tcell events
// re-encoded as the raw input bytes a real terminal would send.
package vt
