package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const defaultWidth = 80

// NewRenderer builds a glamour renderer wrapping at width columns.
// A width <= 0 uses the width of the terminal on stderr.
// When glamour cannot be initialized the markdown passes through unchanged.
func NewRenderer(width int) func(markdown string) (string, error) {
	if width <= 0 {
		width = TerminalWidth(os.Stderr)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return r.Render
}

// TerminalWidth reports the column count of f, or 80 when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if !IsInteractive(f) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
