package core

import (
	"sort"
	"time"
)

// columnTiles groups live tiles by column, each column ordered bottom-up.
// Tiles with equal height are ordered by ID. Tiles outside the board's
// columns are left out and never move.
func (b *Board) columnTiles() [][]*Tile {
	cols := make([][]*Tile, b.cfg.Width)
	b.tiles.ForEach(func(_ TileID, t *Tile) bool {
		col := t.Cell(b.cfg.Mapping).X
		if col >= 0 && col < b.cfg.Width {
			cols[col] = append(cols[col], t)
		}
		return true
	})
	for _, tiles := range cols {
		sort.Slice(tiles, func(i, j int) bool {
			if tiles[i].Pos.Y != tiles[j].Pos.Y {
				return tiles[i].Pos.Y < tiles[j].Pos.Y
			}
			return tiles[i].ID < tiles[j].ID
		})
	}
	return cols
}

// restY returns the world Y of the cell a tile at the given rank rests on.
func (b *Board) restY(col, rank int) float64 {
	return b.cfg.Mapping.Center(C(col, rank)).Y
}

// applyGravity moves every tile towards its resting cell: the n-th lowest
// tile of a column rests on row n. Tiles fall at FallSpeed cells per second
// and stop exactly on the cell center.
func (b *Board) applyGravity(dt time.Duration) {
	step := b.cfg.FallSpeed * dt.Seconds() * b.cfg.Mapping.CellSize.Y
	instant := b.cfg.FallSpeed <= 0

	for col, tiles := range b.columnTiles() {
		for rank, t := range tiles {
			target := b.restY(col, rank)
			switch {
			case t.Pos.Y <= target, instant, t.Pos.Y-target <= step:
				t.Pos.Y = target
			default:
				t.Pos.Y -= step
			}
		}
	}
}

// Settle snaps every tile to its resting cell.
func (b *Board) Settle() {
	for col, tiles := range b.columnTiles() {
		for rank, t := range tiles {
			t.Pos.Y = b.restY(col, rank)
		}
	}
}

// Settled reports whether no waves are pending and every tile rests on its cell.
func (b *Board) Settled() bool {
	if len(b.jobs) > 0 {
		return false
	}
	for col, tiles := range b.columnTiles() {
		for rank, t := range tiles {
			if t.Pos.Y != b.restY(col, rank) {
				return false
			}
		}
	}
	return true
}

// Resting reports whether t currently sits on its resting cell.
func (b *Board) Resting(t *Tile) bool {
	if !b.Contains(t) {
		return false
	}
	col := t.Cell(b.cfg.Mapping).X
	if col < 0 || col >= b.cfg.Width {
		return false
	}
	for rank, other := range b.columnTiles()[col] {
		if other == t {
			return t.Pos.Y == b.restY(col, rank)
		}
	}
	return false
}

// RestingTiles returns every tile that currently sits on its resting cell,
// grouped by column bottom-up.
func (b *Board) RestingTiles() []*Tile {
	var out []*Tile
	for col, tiles := range b.columnTiles() {
		for rank, t := range tiles {
			if t.Pos.Y == b.restY(col, rank) {
				out = append(out, t)
			}
		}
	}
	return out
}
