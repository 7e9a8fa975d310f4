package core

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/kamstrup/intmap"
)

// ErrRowWidth is returned by SpawnRow when the color count differs from the board width.
var ErrRowWidth = errors.New("core: row colors do not match board width")

// Board owns the live tiles. Tiles are free-falling and identified by
// reference; there is no fixed slot array. Once gravity has settled, every
// live tile sits in a distinct cell of [0,Width) x [0,Height).
type Board struct {
	cfg    Config
	picker ColorPicker
	sink   Sink

	tiles  *intmap.Map[TileID, *Tile]
	nextID TileID

	jobs  []*replenishJob
	dying []dyingTile
}

// dyingTile is a removed tile waiting for its shrink animation to finish.
type dyingTile struct {
	tile *Tile
	left time.Duration
}

// NewBoard creates an empty board. Call Fill to spawn the initial tiles.
func NewBoard(cfg Config, picker ColorPicker, sink Sink) *Board {
	if sink == nil {
		sink = Discard
	}
	return &Board{
		cfg:    cfg,
		picker: picker,
		sink:   sink,
		tiles:  intmap.New[TileID, *Tile](cfg.Width * cfg.Height * 2),
		nextID: 1,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.cfg.Width
}

// Height returns the number of visible rows.
func (b *Board) Height() int {
	return b.cfg.Height
}

// Mapping returns the position/cell transform.
func (b *Board) Mapping() Mapping {
	return b.cfg.Mapping
}

// Len returns the number of live tiles.
func (b *Board) Len() int {
	return b.tiles.Len()
}

// Contains reports whether t is a live tile of this board.
func (b *Board) Contains(t *Tile) bool {
	if t == nil {
		return false
	}
	got, ok := b.tiles.Get(t.ID)
	return ok && got == t
}

// Tiles returns all live tiles ordered by ID.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, 0, b.tiles.Len())
	b.tiles.ForEach(func(_ TileID, t *Tile) bool {
		out = append(out, t)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Dying returns removed tiles whose destruction is still pending.
func (b *Board) Dying() []*Tile {
	out := make([]*Tile, len(b.dying))
	for i, d := range b.dying {
		out[i] = d.tile
	}
	return out
}

// TileAt returns the live tile occupying the cell at pos.
// Positions on a cell boundary resolve to nothing. If several tiles overlap
// (possible while falling) the oldest wins.
func (b *Board) TileAt(pos Vec2) (*Tile, bool) {
	cell, err := b.cfg.Mapping.CellStrict(pos)
	if err != nil {
		return nil, false
	}
	var found *Tile
	b.tiles.ForEach(func(_ TileID, t *Tile) bool {
		if t.Cell(b.cfg.Mapping) == cell && (found == nil || t.ID < found.ID) {
			found = t
		}
		return true
	})
	return found, found != nil
}

// SpawnRow places one tile per column at logical row row above the visible
// window, using colors[col] for each column.
func (b *Board) SpawnRow(row int, colors []ColorID) ([]*Tile, error) {
	if len(colors) != b.cfg.Width {
		return nil, fmt.Errorf("%w: got %d colors for width %d", ErrRowWidth, len(colors), b.cfg.Width)
	}
	spawned := make([]*Tile, 0, len(colors))
	for col, color := range colors {
		spawned = append(spawned, b.spawn(col, row, color))
	}
	return spawned, nil
}

// spawn creates a tile in column col at logical row row above the window.
func (b *Board) spawn(col, row int, color ColorID) *Tile {
	t := &Tile{
		ID:    b.nextID,
		Color: color,
		Pos:   b.cfg.Mapping.Center(C(col, b.cfg.Height+row)),
	}
	b.nextID++
	b.tiles.Put(t.ID, t)
	b.sink.Emit(SpawnTile{Column: col, Row: row, Tile: t})
	return t
}

// Place puts a tile of the given color directly on cell c, bypassing
// replenishment. Used to build scripted boards.
func (b *Board) Place(c Coord, color ColorID) *Tile {
	t := &Tile{
		ID:    b.nextID,
		Color: color,
		Pos:   b.cfg.Mapping.Center(c),
	}
	b.nextID++
	b.tiles.Put(t.ID, t)
	b.sink.Emit(SpawnTile{Column: c.X, Row: c.Y - b.cfg.Height, Tile: t})
	return t
}

// RemoveTiles takes tiles off the board. They stop being matchable at once;
// DestroyTile follows after the configured shrink duration. Tiles that are not
// live (unknown, or already removed) are skipped. Returns the removed tiles.
func (b *Board) RemoveTiles(tiles []*Tile) []*Tile {
	removed := make([]*Tile, 0, len(tiles))
	for _, t := range tiles {
		if !b.Contains(t) {
			continue
		}
		b.tiles.Del(t.ID)
		b.sink.Emit(RemoveTile{Tile: t})
		b.dying = append(b.dying, dyingTile{tile: t, left: b.cfg.ShrinkDuration})
		removed = append(removed, t)
	}
	return removed
}

// RemoveColor removes every live tile of the given color whose column is on
// the board, including tiles that are still falling.
func (b *Board) RemoveColor(color ColorID) []*Tile {
	var victims []*Tile
	for _, t := range b.Tiles() {
		if t.Color != color {
			continue
		}
		if col := t.Cell(b.cfg.Mapping).X; col < 0 || col >= b.cfg.Width {
			continue
		}
		victims = append(victims, t)
	}
	return b.RemoveTiles(victims)
}

// ComputeReplenishCounts returns, per column, how many of removed were in that column.
func (b *Board) ComputeReplenishCounts(removed []*Tile) []int {
	counts := make([]int, b.cfg.Width)
	for _, t := range removed {
		col := t.Cell(b.cfg.Mapping).X
		if col < 0 || col >= b.cfg.Width {
			continue
		}
		counts[col]++
	}
	return counts
}

// Update advances replenish timers, pending destructions and gravity by dt.
func (b *Board) Update(dt time.Duration) {
	b.updateJobs(dt)
	b.updateDying(dt)
	b.applyGravity(dt)
}

// updateDying emits DestroyTile for removed tiles whose shrink time is over.
func (b *Board) updateDying(dt time.Duration) {
	keep := b.dying[:0]
	for _, d := range b.dying {
		d.left -= dt
		if d.left <= 0 {
			b.sink.Emit(DestroyTile{Tile: d.tile})
			continue
		}
		keep = append(keep, d)
	}
	b.dying = keep
}
