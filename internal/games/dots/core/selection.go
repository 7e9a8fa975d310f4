package core

import "github.com/zyedidia/generic/mapset"

// Selection tracks the ordered path of tiles collected during one gesture.
//
// Invariants while the path is non-empty:
//   - every tile has the color of the first tile
//   - consecutive tiles are grid-adjacent
//   - a tile appears twice only if the repeat closes a square
type Selection struct {
	mapping Mapping
	path    []*Tile
	members mapset.Set[TileID]
}

// NewSelection creates an empty selection using m to derive tile cells.
func NewSelection(m Mapping) *Selection {
	return &Selection{
		mapping: m,
		members: mapset.New[TileID](),
	}
}

// Start resets the path to [t].
func (s *Selection) Start(t *Tile) {
	s.Clear()
	s.path = append(s.path, t)
	s.members.Put(t.ID)
}

// TryAppend adds t to the path if it continues the gesture legally and
// reports whether it was accepted. On an empty path any tile is accepted.
//
// A tile already in the path is accepted only when appending it closes a
// square; every other repeat is rejected.
func (s *Selection) TryAppend(t *Tile) bool {
	if t == nil {
		return false
	}
	if len(s.path) == 0 {
		s.Start(t)
		return true
	}

	if t.Color != s.path[0].Color {
		return false
	}

	last := s.Last()
	if !last.Cell(s.mapping).Adjacent(t.Cell(s.mapping)) {
		return false
	}

	if !s.members.Has(t.ID) {
		s.path = append(s.path, t)
		s.members.Put(t.ID)
		return true
	}

	// Revisit: only allowed if it closes a loop
	candidate := make([]*Tile, len(s.path), len(s.path)+1)
	copy(candidate, s.path)
	candidate = append(candidate, t)
	if !FormsSquare(candidate, s.mapping) {
		return false
	}
	s.path = candidate
	return true
}

// Clear empties the path. Clearing an empty selection is a no-op.
func (s *Selection) Clear() {
	if len(s.path) == 0 {
		return
	}
	s.path = nil
	s.members = mapset.New[TileID]()
}

// Snapshot returns a copy of the current path in gesture order.
func (s *Selection) Snapshot() []*Tile {
	if len(s.path) == 0 {
		return nil
	}
	out := make([]*Tile, len(s.path))
	copy(out, s.path)
	return out
}

// Len returns the number of entries in the path, repeats included.
func (s *Selection) Len() int {
	return len(s.path)
}

// Last returns the most recently added tile, or nil.
func (s *Selection) Last() *Tile {
	if len(s.path) == 0 {
		return nil
	}
	return s.path[len(s.path)-1]
}

// Color returns the path color; false if the path is empty.
func (s *Selection) Color() (ColorID, bool) {
	if len(s.path) == 0 {
		return NoColor, false
	}
	return s.path[0].Color, true
}

// Contains reports whether t is part of the path.
func (s *Selection) Contains(t *Tile) bool {
	return t != nil && s.members.Has(t.ID)
}

// Positions returns the world positions of the path, for highlighting.
func (s *Selection) Positions() []Vec2 {
	out := make([]Vec2, len(s.path))
	for i, t := range s.path {
		out[i] = t.Pos
	}
	return out
}

// Cells returns the grid cells of the path.
func (s *Selection) Cells() []Coord {
	out := make([]Coord, len(s.path))
	for i, t := range s.path {
		out[i] = t.Cell(s.mapping)
	}
	return out
}
