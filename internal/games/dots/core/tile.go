package core

import "fmt"

// TileID uniquely identifies a tile for the lifetime of a board.
type TileID uint32

// Tile is a single dot. Tiles are owned by the Board and handed out by pointer;
// two tiles are the same tile only if the pointers are equal.
type Tile struct {
	ID    TileID
	Color ColorID
	Pos   Vec2 // Continuous world position; changes while the tile falls
}

// Cell returns the grid cell the tile currently occupies.
func (t *Tile) Cell(m Mapping) Coord {
	return m.Cell(t.Pos)
}

// String returns a short description of the tile.
func (t *Tile) String() string {
	if t == nil {
		return "tile(nil)"
	}
	return fmt.Sprintf("tile#%d(%c)", t.ID, t.Color.Char())
}
