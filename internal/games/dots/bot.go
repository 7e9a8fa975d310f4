package dots

import (
	"math/rand"

	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

// Bot plays gestures on a settled board. It is seeded, so a bot replaying
// against an engine with the same picker seed reproduces the same game.
type Bot struct {
	rng          *rand.Rand
	SquareChance float64 // Probability of taking an available square
	MaxPath      int     // Longest random path attempted
}

// NewBot creates a bot with the given seed.
func NewBot(seed int64) *Bot {
	return &Bot{
		rng:          rand.New(rand.NewSource(seed)),
		SquareChance: 0.5,
		MaxPath:      6,
	}
}

// Play performs one full gesture on e and returns the release.
// It returns a ReleaseNone release when the board offers no move.
func (b *Bot) Play(e *core.Engine) core.Release {
	path := b.Choose(e.Board())
	if len(path) == 0 {
		return e.PointerUp()
	}
	e.PointerDownTile(path[0])
	for _, t := range path[1:] {
		e.PointerMoveTile(t)
	}
	return e.PointerUp()
}

// Choose picks the tiles of the next gesture. A square is returned as a
// closed loop, its first tile repeated at the end.
func (b *Bot) Choose(board *core.Board) []*core.Tile {
	grid := visibleTiles(board)
	if len(grid) == 0 {
		return nil
	}

	if b.rng.Float64() < b.SquareChance {
		if sq := b.findSquare(grid, board.Width(), board.Height()); sq != nil {
			return sq
		}
	}

	// Random walks from shuffled starts until one connects two tiles
	starts := make([]core.Coord, 0, len(grid))
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if _, ok := grid[core.C(x, y)]; ok {
				starts = append(starts, core.C(x, y))
			}
		}
	}
	b.rng.Shuffle(len(starts), func(i, j int) {
		starts[i], starts[j] = starts[j], starts[i]
	})
	for _, s := range starts {
		if path := b.walk(grid, s); len(path) > 1 {
			return path
		}
	}
	return nil
}

var neighbours = [...]core.Coord{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// walk grows a simple path of one color from start.
func (b *Bot) walk(grid map[core.Coord]*core.Tile, start core.Coord) []*core.Tile {
	limit := 2
	if b.MaxPath > 2 {
		limit += b.rng.Intn(b.MaxPath - 1)
	}

	color := grid[start].Color
	seen := map[core.Coord]bool{start: true}
	path := []*core.Tile{grid[start]}
	cur := start

	for len(path) < limit {
		var options []core.Coord
		for _, d := range neighbours {
			next := cur.Add(d)
			if t, ok := grid[next]; ok && !seen[next] && t.Color == color {
				options = append(options, next)
			}
		}
		if len(options) == 0 {
			break
		}
		cur = options[b.rng.Intn(len(options))]
		seen[cur] = true
		path = append(path, grid[cur])
	}
	return path
}

// findSquare returns a random 2x2 block of one color as a closed loop.
func (b *Bot) findSquare(grid map[core.Coord]*core.Tile, w, h int) []*core.Tile {
	var found [][]*core.Tile
	for y := 0; y+1 < h; y++ {
		for x := 0; x+1 < w; x++ {
			corners := []*core.Tile{
				grid[core.C(x, y)],
				grid[core.C(x+1, y)],
				grid[core.C(x+1, y+1)],
				grid[core.C(x, y+1)],
			}
			if sameColor(corners) {
				found = append(found, append(corners, corners[0]))
			}
		}
	}
	if len(found) == 0 {
		return nil
	}
	return found[b.rng.Intn(len(found))]
}

func sameColor(tiles []*core.Tile) bool {
	for _, t := range tiles {
		if t == nil || t.Color != tiles[0].Color {
			return false
		}
	}
	return true
}

// visibleTiles indexes the resting tiles inside the window by cell.
func visibleTiles(board *core.Board) map[core.Coord]*core.Tile {
	m := board.Mapping()
	grid := make(map[core.Coord]*core.Tile, board.Width()*board.Height())
	for _, t := range board.RestingTiles() {
		c := t.Cell(m)
		if c.Y < 0 || c.Y >= board.Height() {
			continue
		}
		if _, taken := grid[c]; !taken {
			grid[c] = t
		}
	}
	return grid
}
