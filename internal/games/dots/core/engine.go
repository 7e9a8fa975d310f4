package core

import "time"

// HitTester resolves a world position to the live tile under it.
type HitTester interface {
	TileAt(pos Vec2) (*Tile, bool)
}

// ReleaseKind is the outcome of a finished gesture.
type ReleaseKind int

const (
	ReleaseNone   ReleaseKind = iota // Zero or one tile: nothing removed
	ReleasePath                      // The path tiles were removed
	ReleaseSquare                    // A loop closed: every tile of the color was removed
)

// String returns the string representation of a release kind.
func (k ReleaseKind) String() string {
	switch k {
	case ReleaseNone:
		return "none"
	case ReleasePath:
		return "path"
	case ReleaseSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Release describes what PointerUp did.
type Release struct {
	Kind    ReleaseKind
	Color   ColorID // Path color, NoColor for ReleaseNone
	Path    []*Tile // The path as it was at release
	Removed []*Tile // Tiles taken off the board
	Counts  []int   // Per-column replenish counts
}

// Engine drives the gesture lifecycle: it feeds pointer events to the
// Selection, decides between path and square clears on release, and runs
// the Board. Commands for the presentation go to the Sink.
// Engine is not safe for concurrent use; one goroutine drives it per tick.
type Engine struct {
	cfg   Config
	board *Board
	sel   *Selection
	hit   HitTester
	sink  Sink
	tick  uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithHitTester replaces the board's own hit test.
func WithHitTester(h HitTester) Option {
	return func(e *Engine) {
		e.hit = h
	}
}

// NewEngine validates cfg and creates an engine with an empty board.
// A nil picker uses a RandPicker seeded with 0; a nil sink discards commands.
func NewEngine(cfg Config, picker ColorPicker, sink Sink, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if picker == nil {
		picker = NewRandPicker(0, cfg.Colors)
	}
	if sink == nil {
		sink = Discard
	}

	board := NewBoard(cfg, picker, sink)
	e := &Engine{
		cfg:   cfg,
		board: board,
		sel:   NewSelection(cfg.Mapping),
		hit:   board,
		sink:  sink,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Board returns the engine's board.
func (e *Engine) Board() *Board {
	return e.board
}

// Path returns a copy of the current selection path.
func (e *Engine) Path() []*Tile {
	return e.sel.Snapshot()
}

// Selecting reports whether a gesture is in progress.
func (e *Engine) Selecting() bool {
	return e.sel.Len() > 0
}

// Fill schedules the initial board.
func (e *Engine) Fill() {
	e.board.Fill()
}

// PointerDown starts a gesture on the tile at pos. Misses are ignored.
func (e *Engine) PointerDown(pos Vec2) {
	if t, ok := e.resolve(pos); ok {
		e.PointerDownTile(t)
	}
}

// PointerDownTile starts a gesture on t. Tiles that are not live are ignored.
func (e *Engine) PointerDownTile(t *Tile) {
	if !e.board.Contains(t) {
		return
	}
	e.sel.Start(t)
	e.emitLineColor(t.Color)
	e.emitHighlight()
}

// PointerMove extends the gesture with the tile at pos.
func (e *Engine) PointerMove(pos Vec2) bool {
	t, ok := e.resolve(pos)
	if !ok {
		return false
	}
	return e.PointerMoveTile(t)
}

// PointerMoveTile extends the gesture with t and reports whether t was accepted.
// Moving onto the last tile again is simply rejected.
func (e *Engine) PointerMoveTile(t *Tile) bool {
	if !e.board.Contains(t) || t == e.sel.Last() {
		return false
	}
	started := e.sel.Len() == 0
	if !e.sel.TryAppend(t) {
		return false
	}
	if started {
		e.emitLineColor(t.Color)
	}
	e.emitHighlight()
	return true
}

// PointerUp ends the gesture. A path of two or more tiles is cleared: a closed
// square removes every live tile of its color and refills without that color,
// any other path removes exactly its tiles. The selection is always cleared.
func (e *Engine) PointerUp() Release {
	path := e.sel.Snapshot()
	rel := Release{Kind: ReleaseNone, Color: NoColor, Path: path}

	if color, ok := e.sel.Color(); ok && len(path) > 1 {
		rel.Color = color

		if FormsSquare(path, e.cfg.Mapping) {
			rel.Kind = ReleaseSquare
			rel.Removed = e.board.RemoveColor(color)
			rel.Counts = e.board.ComputeReplenishCounts(rel.Removed)
			e.board.Replenish(rel.Counts, color)
		} else {
			rel.Kind = ReleasePath
			rel.Removed = e.board.RemoveTiles(path)
			rel.Counts = e.board.ComputeReplenishCounts(rel.Removed)
			e.board.Replenish(rel.Counts, NoColor)
		}
	}

	if len(path) > 0 {
		e.sel.Clear()
		e.sink.Emit(ClearHighlight{})
	}
	return rel
}

// Cancel abandons the gesture without removing anything.
func (e *Engine) Cancel() {
	if e.sel.Len() == 0 {
		return
	}
	e.sel.Clear()
	e.sink.Emit(ClearHighlight{})
}

// Update advances the board clock by dt.
func (e *Engine) Update(dt time.Duration) {
	e.tick++
	e.board.Update(dt)
}

// AdvanceReplenishWave emits the next wave of every running replenish job.
func (e *Engine) AdvanceReplenishWave() int {
	return e.board.AdvanceReplenishWave()
}

func (e *Engine) resolve(pos Vec2) (*Tile, bool) {
	t, ok := e.hit.TileAt(pos)
	if !ok || !e.board.Contains(t) {
		return nil, false
	}
	return t, true
}

func (e *Engine) emitLineColor(id ColorID) {
	e.sink.Emit(SetLineColor{ColorID: id, Color: e.cfg.PaletteColor(id)})
}

func (e *Engine) emitHighlight() {
	e.sink.Emit(HighlightPath{Positions: e.sel.Positions()})
}
