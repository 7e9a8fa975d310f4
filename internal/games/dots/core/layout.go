package core

import "fmt"

// ParseLayout reads an ASCII board, top row first, as produced by
// Snapshot.String: 'A'.. are colors, '.' is an empty cell.
// All rows must have the same width.
func ParseLayout(rows []string) (map[Coord]ColorID, error) {
	layout := make(map[Coord]ColorID)
	width := -1
	for i, row := range rows {
		runes := []rune(row)
		if width < 0 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, fmt.Errorf("layout row %d: width %d, expected %d", i, len(runes), width)
		}

		y := len(rows) - 1 - i
		for x, r := range runes {
			switch {
			case r == '.':
				continue
			case r >= 'A' && r <= 'Z':
				layout[C(x, y)] = ColorID(r - 'A')
			default:
				return nil, fmt.Errorf("layout row %d: invalid cell %q at column %d", i, r, x)
			}
		}
	}
	return layout, nil
}

// PlaceLayout places one tile per entry of layout and returns them keyed by cell.
func (b *Board) PlaceLayout(layout map[Coord]ColorID) map[Coord]*Tile {
	placed := make(map[Coord]*Tile, len(layout))
	// Place in row-major order so tile IDs are deterministic
	for y := 0; y < b.cfg.Height; y++ {
		for x := 0; x < b.cfg.Width; x++ {
			if color, ok := layout[C(x, y)]; ok {
				placed[C(x, y)] = b.Place(C(x, y), color)
			}
		}
	}
	return placed
}
