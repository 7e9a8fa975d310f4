// Package config provides YAML-based board configuration loading and
// preset management for the dots game.
package config

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

// DotsConfig contains all configuration for a dots board.
type DotsConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Palette []string      `yaml:"palette"` // "#rrggbb" per color
	Mapping MappingConfig `yaml:"mapping"`
	Timing  TimingConfig  `yaml:"timing"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"`
}

// MappingConfig defines the world position to cell transform.
type MappingConfig struct {
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// TimingConfig defines animation pacing.
type TimingConfig struct {
	WaveDelayMS int     `yaml:"wave_delay_ms"`
	ShrinkMS    int     `yaml:"shrink_ms"`
	FallSpeed   float64 `yaml:"fall_speed"` // Cells per second
}

// Preset represents a named board size.
type Preset string

const (
	PresetClassic Preset = "classic" // 6x6, five colors
	PresetMini    Preset = "mini"    // 4x4, three colors
)

// ApplyPreset modifies the grid section based on a preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *DotsConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Grid = GridConfig{Width: 6, Height: 6, Colors: 5}
	case PresetMini:
		cfg.Grid = GridConfig{Width: 4, Height: 4, Colors: 3}
	}
}

// Core converts the YAML config into a validated engine configuration.
func (c DotsConfig) Core() (core.Config, error) {
	palette := make([]core.RGB, len(c.Palette))
	for i, hex := range c.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return core.Config{}, core.ValidationError{
				Code:    "INVALID_PALETTE",
				Message: fmt.Sprintf("palette entry %d %q: %v", i, hex, err),
			}
		}
		r, g, b := col.RGB255()
		palette[i] = core.RGB{R: r, G: g, B: b}
	}

	cfg := core.Config{
		Width:   c.Grid.Width,
		Height:  c.Grid.Height,
		Colors:  c.Grid.Colors,
		Palette: palette,
		Mapping: core.Mapping{
			Origin:   core.V(c.Mapping.OriginX, c.Mapping.OriginY),
			CellSize: core.V(c.Mapping.CellWidth, c.Mapping.CellHeight),
		},
		WaveDelay:      time.Duration(c.Timing.WaveDelayMS) * time.Millisecond,
		ShrinkDuration: time.Duration(c.Timing.ShrinkMS) * time.Millisecond,
		FallSpeed:      c.Timing.FallSpeed,
	}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, fmt.Errorf("invalid dots config: %w", err)
	}
	return cfg, nil
}
