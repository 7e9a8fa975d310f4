package core

import (
	"fmt"
	"time"
)

// Config holds the static parameters of a board.
// It is immutable once handed to NewEngine or NewBoard.
type Config struct {
	Width          int           // Columns
	Height         int           // Visible rows
	Colors         int           // Number of colors in play, at most len(Palette)
	Palette        []RGB         // Display color per ColorID
	Mapping        Mapping       // World position <-> grid cell transform
	WaveDelay      time.Duration // Delay between replenish waves
	ShrinkDuration time.Duration // Time between RemoveTile and DestroyTile
	FallSpeed      float64       // Cells per second; <= 0 settles instantly
}

// DefaultConfig returns the classic 6x6, five color board.
func DefaultConfig() Config {
	return Config{
		Width:   6,
		Height:  6,
		Colors:  5,
		Palette: DefaultPalette(),
		Mapping: Mapping{
			Origin:   V(1.875, 1.75),
			CellSize: V(0.75, 0.7),
		},
		WaveDelay:      10 * time.Millisecond,
		ShrinkDuration: 500 * time.Millisecond,
		FallSpeed:      12,
	}
}

// ValidationError contains details about an invalid configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration can drive a board.
// At least two colors are required so a square clear can always
// replenish with its color excluded.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("grid must be at least 1x1, got %dx%d", c.Width, c.Height),
		}
	}
	if c.Colors < 2 {
		return ValidationError{
			Code:    "INVALID_COLORS",
			Message: fmt.Sprintf("need at least 2 colors, got %d", c.Colors),
		}
	}
	if len(c.Palette) < c.Colors {
		return ValidationError{
			Code:    "INVALID_PALETTE",
			Message: fmt.Sprintf("palette has %d entries for %d colors", len(c.Palette), c.Colors),
		}
	}
	if c.Mapping.CellSize.X <= 0 || c.Mapping.CellSize.Y <= 0 {
		return ValidationError{
			Code: "INVALID_MAPPING",
			Message: fmt.Sprintf("cell size must be positive, got (%g,%g)",
				c.Mapping.CellSize.X, c.Mapping.CellSize.Y),
		}
	}
	if c.WaveDelay < 0 || c.ShrinkDuration < 0 {
		return ValidationError{
			Code:    "INVALID_TIMING",
			Message: fmt.Sprintf("delays must not be negative (wave %s, shrink %s)", c.WaveDelay, c.ShrinkDuration),
		}
	}
	return nil
}

// PaletteColor returns the display color for id, or black if id is out of range.
func (c Config) PaletteColor(id ColorID) RGB {
	if id < 0 || int(id) >= len(c.Palette) {
		return RGB{}
	}
	return c.Palette[id]
}
