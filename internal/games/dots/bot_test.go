package dots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

// layoutEngine builds an engine whose board holds exactly rows (top row first).
func layoutEngine(t *testing.T, rows ...string) *core.Engine {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Width = len(rows[0])
	cfg.Height = len(rows)
	cfg.Colors = 3

	e, err := core.NewEngine(cfg, core.NewSequencePicker(2), nil)
	require.NoError(t, err)

	layout, err := core.ParseLayout(rows)
	require.NoError(t, err)
	e.Board().PlaceLayout(layout)
	return e
}

func TestBotTakesSquare(t *testing.T) {
	e := layoutEngine(t,
		"AAB",
		"AAB",
		"BCC",
	)
	bot := NewBot(1)
	bot.SquareChance = 1

	path := bot.Choose(e.Board())
	require.Len(t, path, 5)
	assert.Same(t, path[0], path[4])
	assert.True(t, core.FormsSquare(path, e.Board().Mapping()))

	rel := bot.Play(e)
	assert.Equal(t, core.ReleaseSquare, rel.Kind)
	assert.Equal(t, core.ColorID(0), rel.Color)
	assert.Len(t, rel.Removed, 4)
}

func TestBotWalksOneColor(t *testing.T) {
	e := layoutEngine(t,
		"AAB",
		"ABB",
		"CCB",
	)
	m := e.Board().Mapping()

	for seed := int64(0); seed < 20; seed++ {
		bot := NewBot(seed)
		bot.SquareChance = 0

		path := bot.Choose(e.Board())
		require.GreaterOrEqual(t, len(path), 2)
		assert.LessOrEqual(t, len(path), bot.MaxPath)
		seen := map[*core.Tile]bool{}
		for i, tile := range path {
			assert.Equal(t, path[0].Color, tile.Color)
			assert.False(t, seen[tile], "tile visited twice")
			seen[tile] = true
			if i > 0 {
				assert.True(t, tile.Cell(m).Adjacent(path[i-1].Cell(m)))
			}
		}
	}
}

func TestBotWithoutMoves(t *testing.T) {
	e := layoutEngine(t,
		"AB",
		"BA",
	)
	bot := NewBot(3)

	assert.Nil(t, bot.Choose(e.Board()))
	rel := bot.Play(e)
	assert.Equal(t, core.ReleaseNone, rel.Kind)
	assert.Equal(t, 4, e.Board().Len())
}

func TestSimulateDeterministic(t *testing.T) {
	opts := SimOptions{Moves: 25, Seed: 42}

	r1, err := Simulate(core.DefaultConfig(), opts, nil)
	require.NoError(t, err)
	r2, err := Simulate(core.DefaultConfig(), opts, nil)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, r1.Paths+r1.Squares, r1.Moves)
	assert.GreaterOrEqual(t, r1.Cleared, 2*r1.Moves)
	assert.Equal(t, 36, r1.Final.Live)
	assert.True(t, r1.Final.Settled)
}

func TestSimulateInvalidConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Colors = 1

	_, err := Simulate(cfg, SimOptions{Moves: 1}, nil)
	var verr core.ValidationError
	assert.ErrorAs(t, err, &verr)
}
