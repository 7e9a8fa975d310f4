package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

// isolateHome points the user config directory at an empty temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolateHome(t)

	cfg, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, DefaultDotsConfig(), cfg)
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 8\ntiming:\n  fall_speed: 0\n"), 0o600))

	cfg, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 8, cfg.Grid.Width)
	assert.Equal(t, 6, cfg.Grid.Height)
	assert.Equal(t, 0.0, cfg.Timing.FallSpeed)
	assert.Equal(t, 500, cfg.Timing.ShrinkMS)
	assert.Len(t, cfg.Palette, 5)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolateHome(t)

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [1, 2"), 0o600))
	_, _, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadUserConfig(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".dots", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dots.yaml"), []byte("grid:\n  colors: 4\n"), 0o600))

	cfg, source, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dots.yaml"), source)
	assert.Equal(t, 4, cfg.Grid.Colors)
}

func TestCoreMatchesEngineDefaults(t *testing.T) {
	cfg, err := DefaultDotsConfig().Core()
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), cfg)
}

func TestCoreRejectsBadPalette(t *testing.T) {
	cfg := DefaultDotsConfig()
	cfg.Palette[2] = "pink"

	_, err := cfg.Core()
	var verr core.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "INVALID_PALETTE", verr.Code)
}

func TestCoreValidates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DotsConfig)
		code   string
	}{
		{"one color", func(c *DotsConfig) { c.Grid.Colors = 1 }, "INVALID_COLORS"},
		{"empty grid", func(c *DotsConfig) { c.Grid.Width = 0 }, "INVALID_SIZE"},
		{"short palette", func(c *DotsConfig) { c.Palette = c.Palette[:2] }, "INVALID_PALETTE"},
		{"zero cell", func(c *DotsConfig) { c.Mapping.CellHeight = 0 }, "INVALID_MAPPING"},
		{"negative delay", func(c *DotsConfig) { c.Timing.WaveDelayMS = -1 }, "INVALID_TIMING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDotsConfig()
			tt.mutate(&cfg)

			_, err := cfg.Core()
			var verr core.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.code, verr.Code)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDotsConfig()

	ApplyPreset(&cfg, PresetMini)
	assert.Equal(t, GridConfig{Width: 4, Height: 4, Colors: 3}, cfg.Grid)

	ApplyPreset(&cfg, Preset("huge"))
	assert.Equal(t, 4, cfg.Grid.Width, "unknown preset should not change the grid")

	ApplyPreset(&cfg, PresetClassic)
	assert.Equal(t, GridConfig{Width: 6, Height: 6, Colors: 5}, cfg.Grid)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultDotsConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "wave_delay_ms: 10")
	assert.Contains(t, string(data), "cell_height: 0.7")
}
