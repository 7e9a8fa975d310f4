// Package dots adapts the matching core to the platform Game interface:
// it turns mouse and keyboard input into gestures and draws the board.
package dots

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
	"github.com/vovakirdan/tui-dots/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes game logging to l. A nil logger silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is a playable dots board.
type Game struct {
	id     string
	title  string
	preset config.Preset

	cfg    core.Config
	engine *core.Engine
	pres   *presenter
	rng    *rand.Rand
	err    error // Config error; the board is not playable

	// Screen
	screenW  int
	screenH  int
	dt       time.Duration
	layout   layout
	tooSmall bool
	palette  []platformcore.Color // ANSI color per ColorID

	// Input
	cursor      core.Coord
	dragging    bool // Keyboard gesture in progress
	pointerDown bool // Mouse button held

	paused  bool
	cleared int // Tiles removed
	moves   int
	squares int
}

// New creates the classic board, sized by the loaded config.
func New() *Game {
	return &Game{id: "dots", title: "Dots"}
}

// NewMini creates the 4x4 three color board.
func NewMini() *Game {
	return &Game{id: "dots_mini", title: "Dots Mini", preset: config.PresetMini}
}

func init() {
	registry.Register("dots", func() registry.Game {
		return New()
	})
	registry.Register("dots_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and deals a new board.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)

	g.paused = false
	g.dragging = false
	g.pointerDown = false
	g.cleared, g.moves, g.squares = 0, 0, 0
	g.engine = nil
	g.err = nil

	cfg, err := g.loadConfig()
	if err != nil {
		g.err = err
		logger.Error("invalid board config", "game", g.id, "error", err)
		return
	}
	g.cfg = cfg

	g.pres = newPresenter(cfg.ShrinkDuration)
	engine, err := core.NewEngine(cfg, core.NewRandPicker(g.rng.Int63(), cfg.Colors), g.pres)
	if err != nil {
		g.err = err
		logger.Error("failed to create engine", "game", g.id, "error", err)
		return
	}
	g.engine = engine
	g.engine.Fill()

	g.palette = make([]platformcore.Color, len(cfg.Palette))
	for i, c := range cfg.Palette {
		g.palette[i] = platformcore.ColorFromRGB(c.R, c.G, c.B)
	}

	var fits bool
	g.layout, fits = newLayout(g.screenW, g.screenH, cfg.Width, cfg.Height, cfg.Mapping)
	g.tooSmall = !fits
	g.cursor = core.C(0, cfg.Height-1)

	logger.Info("board dealt",
		"game", g.id,
		"size", core.C(cfg.Width, cfg.Height),
		"colors", cfg.Colors,
		"seed", rc.Seed)
}

// loadConfig reads the YAML config and applies the game's preset.
// A missing or unreadable file falls back to the defaults.
func (g *Game) loadConfig() (core.Config, error) {
	dc, source, err := config.Load(configPath)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		dc = config.DefaultDotsConfig()
		source = config.SourceBuiltin
	}
	if g.preset != "" {
		config.ApplyPreset(&dc, g.preset)
	}
	logger.Debug("config loaded", "source", source, "preset", g.preset)
	return dc.Core()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.dt),
		})
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.engine != nil {
		g.paused = !g.paused
		if g.paused {
			g.cancel()
		}
	}

	if g.engine == nil || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}
	g.handleKeys(in)

	g.engine.Update(g.dt)
	g.pres.advance(g.dt)

	cleared := g.pres.takeRemoved()
	g.cleared += cleared
	return platformcore.StepResult{State: g.State(), Cleared: cleared}
}

// handlePointer maps a mouse event onto the gesture.
func (g *Game) handlePointer(ev platformcore.PointerEvent) {
	pos, inside := g.layout.world(ev.X, ev.Y)

	switch ev.Kind {
	case platformcore.PointerPress:
		if g.dragging {
			g.cancel()
		}
		g.pointerDown = true
		if inside {
			g.cursor = g.cfg.Mapping.Cell(pos)
			g.engine.PointerDown(pos)
		}
	case platformcore.PointerMotion:
		if g.pointerDown && inside {
			g.cursor = g.cfg.Mapping.Cell(pos)
			g.engine.PointerMove(pos)
		}
	case platformcore.PointerRelease:
		if g.pointerDown {
			g.pointerDown = false
			g.release()
		}
	}
}

// handleKeys moves the cursor and drives a keyboard gesture.
func (g *Game) handleKeys(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionCancel) {
		g.cancel()
	}

	moved := false
	next := g.cursor
	switch {
	case in.Has(platformcore.ActionUp):
		next.Y++
	case in.Has(platformcore.ActionDown):
		next.Y--
	case in.Has(platformcore.ActionLeft):
		next.X--
	case in.Has(platformcore.ActionRight):
		next.X++
	}
	next.X = platformcore.Clamp(next.X, 0, g.cfg.Width-1)
	next.Y = platformcore.Clamp(next.Y, 0, g.cfg.Height-1)
	if next != g.cursor {
		g.cursor = next
		moved = true
	}

	if moved && g.dragging {
		if t, ok := g.tileAtCursor(); ok {
			g.engine.PointerMoveTile(t)
		}
	}

	if in.Has(platformcore.ActionSelect) {
		if g.dragging {
			g.dragging = false
			g.release()
		} else if t, ok := g.tileAtCursor(); ok {
			g.engine.PointerDownTile(t)
			g.dragging = g.engine.Selecting()
		}
	}
}

func (g *Game) tileAtCursor() (*core.Tile, bool) {
	return g.engine.Board().TileAt(g.cfg.Mapping.Center(g.cursor))
}

// release finishes the gesture and records the outcome.
func (g *Game) release() {
	rel := g.engine.PointerUp()
	if rel.Kind == core.ReleaseNone {
		return
	}
	g.moves++
	if rel.Kind == core.ReleaseSquare {
		g.squares++
	}
	logger.Debug("gesture released",
		"kind", rel.Kind,
		"color", string(rel.Color.Char()),
		"path", len(rel.Path),
		"removed", len(rel.Removed),
		"counts", rel.Counts)
}

// cancel drops any gesture in progress.
func (g *Game) cancel() {
	g.dragging = false
	g.pointerDown = false
	if g.engine != nil {
		g.engine.Cancel()
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{Paused: g.paused}
	}
	return platformcore.GameState{
		Paused:    g.paused,
		Selecting: g.engine.Selecting(),
		Settled:   g.engine.Board().Settled(),
	}
}

// Snapshot returns the engine snapshot. It is the zero value when the
// config failed to load.
func (g *Game) Snapshot() core.Snapshot {
	if g.engine == nil {
		return core.Snapshot{}
	}
	return g.engine.Snapshot()
}

// Err returns the config error that stopped the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}
