// Package core provides the matching core of the Dots puzzle game.
// This package is UI-agnostic: it consumes pointer events and emits
// presentation commands, and is deterministic for a given ColorPicker.
package core

import "fmt"

// ColorID identifies an entry of the configured palette.
type ColorID int

// NoColor marks an empty cell, or "exclude nothing" when replenishing.
const NoColor ColorID = -1

// Char returns a single character representation of the color for ASCII rendering.
// Colors map to 'A', 'B', ...; NoColor renders as '.'.
func (c ColorID) Char() rune {
	switch {
	case c == NoColor:
		return '.'
	case c < 0 || c >= 26:
		return '?'
	default:
		return 'A' + rune(c)
	}
}

// RGB is a 24-bit palette color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DefaultPalette returns the classic five dot colors.
func DefaultPalette() []RGB {
	return []RGB{
		{R: 170, G: 255, B: 0}, // lime
		{R: 255, G: 170, B: 0}, // orange
		{R: 255, G: 0, B: 170}, // pink
		{R: 170, G: 0, B: 255}, // violet
		{R: 0, G: 170, B: 255}, // sky
	}
}
