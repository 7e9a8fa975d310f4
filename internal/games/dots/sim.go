package dots

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

// maxSettleSteps bounds the ticks spent waiting for a board to come to rest.
const maxSettleSteps = 100_000

// SimOptions controls a headless run.
type SimOptions struct {
	Moves int           // Gestures to play
	Seed  int64         // Seeds both the color picker and the bot
	Step  time.Duration // Simulated tick; 0 means 60 ticks per second
}

// SimResult summarizes a headless run.
type SimResult struct {
	Moves   int // Gestures that cleared something
	Paths   int
	Squares int
	Cleared int // Tiles removed
	Final   core.Snapshot
}

// Simulate plays opts.Moves bot gestures on a fresh board without a terminal.
// The same config and options always give the same result.
func Simulate(cfg core.Config, opts SimOptions, l *log.Logger) (SimResult, error) {
	if l == nil {
		l = logger
	}
	if opts.Step <= 0 {
		opts.Step = time.Second / 60
	}

	engine, err := core.NewEngine(cfg, core.NewRandPicker(opts.Seed, cfg.Colors), nil)
	if err != nil {
		return SimResult{}, err
	}
	engine.Fill()
	if err := runToRest(engine, opts.Step); err != nil {
		return SimResult{}, fmt.Errorf("initial fill: %w", err)
	}

	bot := NewBot(opts.Seed)
	var res SimResult
	for i := 0; i < opts.Moves; i++ {
		rel := bot.Play(engine)
		switch rel.Kind {
		case core.ReleaseNone:
			l.Warn("no move available", "move", i)
			res.Final = engine.Snapshot()
			return res, nil
		case core.ReleasePath:
			res.Paths++
		case core.ReleaseSquare:
			res.Squares++
		}
		res.Moves++
		res.Cleared += len(rel.Removed)

		l.Debug("move",
			"n", i,
			"kind", rel.Kind,
			"color", string(rel.Color.Char()),
			"path", len(rel.Path),
			"removed", len(rel.Removed))

		if err := runToRest(engine, opts.Step); err != nil {
			return res, fmt.Errorf("move %d: %w", i, err)
		}
	}

	res.Final = engine.Snapshot()
	l.Info("simulation finished",
		"moves", res.Moves,
		"paths", res.Paths,
		"squares", res.Squares,
		"cleared", res.Cleared)
	return res, nil
}

// runToRest ticks e until no tile is falling or waiting to spawn.
func runToRest(e *core.Engine, step time.Duration) error {
	for i := 0; i < maxSettleSteps; i++ {
		if e.Board().Settled() && len(e.Board().Dying()) == 0 {
			return nil
		}
		e.Update(step)
	}
	return fmt.Errorf("board did not settle after %d steps", maxSettleSteps)
}
