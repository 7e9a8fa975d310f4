package core

import "strings"

// Snapshot captures the board for determinism testing and debugging.
type Snapshot struct {
	Tick         uint64
	Width        int
	Height       int
	Cells        [][]ColorID // Cells[row][col], row 0 is the bottom; NoColor when empty
	Live         int         // Live tiles, including those above the window
	Dying        int         // Removed tiles not yet destroyed
	PendingWaves int
	Path         []Coord
	Settled      bool
}

// Snapshot returns the current engine snapshot.
// A cell holding several tiles mid-fall shows the oldest one.
func (e *Engine) Snapshot() Snapshot {
	b := e.board
	cells := make([][]ColorID, b.Height())
	for y := range cells {
		cells[y] = make([]ColorID, b.Width())
		for x := range cells[y] {
			cells[y][x] = NoColor
		}
	}

	// Tiles() is ID ordered, so skip cells already taken
	for _, t := range b.Tiles() {
		c := t.Cell(b.Mapping())
		if c.X < 0 || c.X >= b.Width() || c.Y < 0 || c.Y >= b.Height() {
			continue
		}
		if cells[c.Y][c.X] == NoColor {
			cells[c.Y][c.X] = t.Color
		}
	}

	return Snapshot{
		Tick:         e.tick,
		Width:        b.Width(),
		Height:       b.Height(),
		Cells:        cells,
		Live:         b.Len(),
		Dying:        len(b.dying),
		PendingWaves: b.PendingWaves(),
		Path:         e.sel.Cells(),
		Settled:      b.Settled(),
	}
}

// String renders the visible grid as ASCII, top row first.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for y := s.Height - 1; y >= 0; y-- {
		for x := 0; x < s.Width; x++ {
			sb.WriteRune(s.Cells[y][x].Char())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// CountByColor returns the number of visible tiles per color.
func (s Snapshot) CountByColor() map[ColorID]int {
	counts := make(map[ColorID]int)
	for _, row := range s.Cells {
		for _, c := range row {
			if c != NoColor {
				counts[c]++
			}
		}
	}
	return counts
}
