// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for a single
// interactive session.
//
// Features:
//   - Raw-mode session acquire and release with restoration on exit/panic
//   - SGR mouse reporting toggles and report parsing
//   - Control-picture mapping for displaying raw keystrokes
//   - SIGWINCH resize detection surfaced as empty reads
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
