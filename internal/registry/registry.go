// Package registry keeps the boards the CLI and menu can start.
// Each board package registers its variants from init(); cmd/dots and the
// menu only ever see them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-dots/internal/core"
)

// Game is a playable dots board driven by the TUI at a fixed tick.
// Implementations own their matching engine and never import Bubble Tea.
type Game interface {
	// ID is the name used on the command line ("dots", "dots_mini").
	ID() string

	// Title is shown in the menu and the HUD.
	Title() string

	// Reset deals a fresh board for cfg.Seed and fits it to the screen.
	// The TUI calls it on start, on restart, and on every resize, so a
	// resize re-deals the board and drops the gesture in progress.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of keys and pointer events, advances gravity
	// and replenishment, and reports how many tiles were cleared.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board, the connector line and the HUD into dst.
	Render(dst *core.Screen)

	// State reports whether a gesture is in progress, the board is
	// settled, or play is paused.
	State() core.GameState
}

// GameInfo describes a registered board for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet Reset board.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu     sync.RWMutex
	boards = make(map[string]entry)
)

// Register makes a board available under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := boards[id]; dup {
		panic(fmt.Sprintf("registry: board %q already registered", id))
	}
	boards[id] = entry{factory: f, title: title}
}

// List returns every registered board ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(boards))
	for id, e := range boards {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the board registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := boards[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown board %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := boards[id]
	return ok
}
