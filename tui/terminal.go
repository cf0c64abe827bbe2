package tui

import (
	"os"

	"golang.org/x/term"
)

// Rendering width bounds. Detected widths are clamped into this range;
// anything narrower wraps the event tables and anything wider spreads
// the columns too far apart to scan.
const (
	minRenderWidth     = 60
	maxRenderWidth     = 160
	defaultRenderWidth = 80
)

// detectRenderWidth reports the clamped stdout width, or the default
// when stdout is not a terminal.
func detectRenderWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultRenderWidth
	}
	if w < minRenderWidth {
		return minRenderWidth
	}
	if w > maxRenderWidth {
		return maxRenderWidth
	}
	return w
}
