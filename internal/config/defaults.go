package config

import (
	_ "embed"
)

//go:embed defaults/dots.yaml
var defaultDotsYAML []byte

// DefaultDotsConfig returns the default dots configuration.
func DefaultDotsConfig() DotsConfig {
	return DotsConfig{
		Grid: GridConfig{
			Width:  6,
			Height: 6,
			Colors: 5,
		},
		Palette: []string{
			"#aaff00", // lime
			"#ffaa00", // orange
			"#ff00aa", // pink
			"#aa00ff", // violet
			"#00aaff", // sky
		},
		Mapping: MappingConfig{
			OriginX:    1.875,
			OriginY:    1.75,
			CellWidth:  0.75,
			CellHeight: 0.7,
		},
		Timing: TimingConfig{
			WaveDelayMS: 10,
			ShrinkMS:    500,
			FallSpeed:   12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDotsYAML
}
