package dots

import (
	"math"

	platformcore "github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

const (
	cellW      = 4 // Terminal columns per board column
	cellH      = 2 // Terminal rows per board row
	hudHeight  = 2
	footHeight = 2 // Reserved for the platform help line
)

// layout places the board on the terminal.
// Board row 0 is at the bottom; terminal rows grow downward.
type layout struct {
	grid    platformcore.Rect // Area covered by tiles and connectors
	width   int               // Board columns
	height  int               // Board rows
	mapping core.Mapping
}

// newLayout centers a width x height board in a screenW x screenH terminal.
// ok is false when the terminal is too small.
func newLayout(screenW, screenH, width, height int, m core.Mapping) (layout, bool) {
	gridW := width * cellW
	gridH := height*cellH - 1

	// Box border around the grid
	needW := gridW + 2
	needH := gridH + 2 + hudHeight + footHeight
	if screenW < needW || screenH < needH {
		return layout{}, false
	}

	avail := platformcore.NewRect(0, hudHeight, screenW, screenH-hudHeight-footHeight)
	box := avail.Centered(needW, gridH+2)

	return layout{
		grid:    platformcore.NewRect(box.X+1, box.Y+1, gridW, gridH),
		width:   width,
		height:  height,
		mapping: m,
	}, true
}

// box returns the frame drawn around the grid.
func (l layout) box() platformcore.Rect {
	return platformcore.NewRect(l.grid.X-1, l.grid.Y-1, l.grid.W+2, l.grid.H+2)
}

// glyph returns the terminal cell of a tile glyph at continuous grid coords.
func (l layout) glyph(gx, gy float64) (x, y int) {
	x = l.grid.X + int(math.Round(gx*cellW)) + 1
	y = l.grid.Y + int(math.Round((float64(l.height-1)-gy)*cellH))
	return x, y
}

// cellGlyph returns the terminal cell of the glyph for board cell c.
func (l layout) cellGlyph(c core.Coord) (x, y int) {
	return l.glyph(float64(c.X), float64(c.Y))
}

// world converts a terminal cell into a world position.
// Every terminal cell inside the grid maps strictly inside one board cell,
// never onto a boundary. ok is false outside the grid.
func (l layout) world(sx, sy int) (core.Vec2, bool) {
	if !l.grid.Contains(sx, sy) {
		return core.Vec2{}, false
	}
	gx := (float64(sx-l.grid.X)+0.5)/cellW - 0.5
	gy := float64(l.height-1) - ((float64(sy-l.grid.Y)+0.5)/cellH - 0.5)
	return l.mapping.Point(gx, gy), true
}

// visible reports whether continuous row gy is inside the window.
func (l layout) visible(gy float64) bool {
	return gy <= float64(l.height)-0.5
}
