package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the arbor banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Greens, trunk to canopy
	lines := []struct {
		text, color string
	}{
		{"                 _               ", "#166534"},
		{"   __ _ _ __ ___| |__   ___  _ __ ", "#15803d"},
		{"  / _` | '__/ _ \\ '_ \\ / _ \\| '__|", "#16a34a"},
		{" | (_| | | | (_) | |_) | (_) | |   ", "#22c55e"},
		{"  \\__,_|_|  \\___/|_.__/ \\___/|_|   ", "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
