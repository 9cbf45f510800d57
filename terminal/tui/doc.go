// Package tui is a retained-mode widget toolkit that composes positioned
// widgets into one buffered stream of terminal control sequences.
//
// Widgets carry capabilities by interface: every widget is a Widget (it can
// render), most are Movable, boxed ones are Sizable (size plus a hit-test
// Margin), and interactive ones are Clickable. A Screen owns the top-level
// widgets, rebuilds its frame buffer each iteration and routes SGR mouse
// releases to the first Clickable whose margin-expanded bounds contain the
// pointer.
//
// Usage pattern:
//
//	scr := tui.NewScreen(session)
//	status := tui.NewLabel(1, lines, cols, 1, "")
//	quit := tui.NewButton(0, 0, 3, 1, " x ", tui.RoundedBox, onQuit)
//	scr.AddChild(tui.Compose(status, tui.NewButtonGroup(cols-10, 3, tui.ConnectedSep, quit)))
//
//	for running {
//	    scr.ResetBuffer()
//	    scr.HandleMouse(input)
//	    scr.Show()
//	}
//
// Coordinates are 1-indexed terminal cells throughout.
package tui
