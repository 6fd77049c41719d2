// Package argio centralizes terminal IO for argparse programs: output streams,
// color policy, terminal capabilities and a leveled logger.
package argio

import (
	stdio "io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IOManager centralizes IO streams and terminal capabilities.
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader used by the manager and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the configured output writer is a terminal.
func (m *IOManager) IsTTY() bool { return isTerminal(m.out) }

// IsInteractive reports whether input comes from a terminal outside CI.
func (m *IOManager) IsInteractive() bool { return isTerminal(m.in) && os.Getenv("CI") == "" }

// Width returns the terminal width, falling back to $COLUMNS and then 80.
func (m *IOManager) Width() int {
	if w, _, ok := termSize(m.out); ok {
		return w
	}
	if w, _ := fallbackTermSizeFromEnv(); w > 0 {
		return w
	}
	return 80
}

// Height returns the terminal height, falling back to $LINES and then 24.
func (m *IOManager) Height() int {
	if _, h, ok := termSize(m.out); ok {
		return h
	}
	if _, h := fallbackTermSizeFromEnv(); h > 0 {
		return h
	}
	return 24
}

// SupportsColor reports whether ANSI styling should be emitted on Out.
// Precedence: NoColor/NO_COLOR, then ForceColor/FORCE_COLOR, then TTY detection.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

func fdOf(v any) (uintptr, bool) {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return 0, false
	}
	return f.Fd(), true
}

func isTerminal(v any) bool {
	fd, ok := fdOf(v)
	if !ok {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func termSize(v any) (int, int, bool) {
	fd, ok := fdOf(v)
	if !ok {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
