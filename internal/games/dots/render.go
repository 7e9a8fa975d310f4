package dots

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

// Tile glyphs, largest first.
const (
	glyphDot      = '●'
	glyphSelected = '◉'
	glyphSmall    = '•'
	glyphTiny     = '·'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Config error", g.err.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(g.layout.box(), platformcore.ColorDimGray)
	g.renderLine(dst)
	g.renderTiles(dst)
	g.renderCursor(dst)

	if g.paused {
		dst.Tint(g.layout.box(), platformcore.ColorDimGray)
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" %s  Cleared: %d  Moves: %d  Squares: %d", g.title, g.cleared, g.moves, g.squares)
	dst.DrawTextColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), platformcore.Cell{Rune: '─', Color: platformcore.ColorGray})
}

// renderLine draws the connectors between consecutive path tiles.
func (g *Game) renderLine(dst *platformcore.Screen) {
	line := g.pres.line
	if len(line) < 2 {
		return
	}
	cell := platformcore.Cell{Color: g.colorOf(g.pres.lineColor)}

	for i := 1; i < len(line); i++ {
		x0, y0 := g.layout.glyph(g.cfg.Mapping.Grid(line[i-1]))
		x1, y1 := g.layout.glyph(g.cfg.Mapping.Grid(line[i]))
		switch {
		case y0 == y1:
			cell.Rune = '─'
			lo := platformcore.Min(x0, x1)
			dst.DrawHLine(lo+1, y0, platformcore.Max(x0, x1)-lo-1, cell)
		case x0 == x1:
			cell.Rune = '│'
			lo := platformcore.Min(y0, y1)
			dst.DrawVLine(x0, lo+1, platformcore.Max(y0, y1)-lo-1, cell)
		}
	}
}

// renderTiles draws tiles still shrinking out, then live tiles over them.
func (g *Game) renderTiles(dst *platformcore.Screen) {
	selected := make(map[*core.Tile]bool)
	for _, t := range g.engine.Path() {
		selected[t] = true
	}

	for t, age := range g.pres.dying {
		g.drawTile(dst, t, g.pres.shrinkGlyph(age))
	}
	for _, t := range g.engine.Board().Tiles() {
		glyph := glyphDot
		if selected[t] {
			glyph = glyphSelected
		}
		g.drawTile(dst, t, glyph)
	}
}

func (g *Game) drawTile(dst *platformcore.Screen, t *core.Tile, glyph rune) {
	gx, gy := g.cfg.Mapping.Grid(t.Pos)
	if !g.layout.visible(gy) {
		return
	}
	x, y := g.layout.glyph(gx, gy)
	dst.SetCell(x, y, platformcore.Cell{Rune: glyph, Color: g.colorOf(t.Color)})
}

// renderCursor brackets the keyboard cursor without covering connectors.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	x, y := g.layout.cellGlyph(g.cursor)
	color := platformcore.ColorBrightWhite
	if g.dragging {
		color = g.colorOf(g.pres.lineColor)
	}
	for _, p := range [...]struct {
		x  int
		ch rune
	}{{x - 1, '['}, {x + 1, ']'}} {
		if dst.Get(p.x, y) == ' ' {
			dst.SetCell(p.x, y, platformcore.Cell{Rune: p.ch, Color: color})
		}
	}
}

// colorOf returns the terminal color of a palette entry.
func (g *Game) colorOf(id core.ColorID) platformcore.Color {
	if id < 0 || int(id) >= len(g.palette) {
		return platformcore.ColorDefault
	}
	return g.palette[id]
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	textW := platformcore.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := platformcore.Min(textW+4, dst.Width())
	r := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.DrawHLine(r.X+1, y, r.W-2, platformcore.Cell{Rune: ' '})
	}
	dst.DrawBox(r, platformcore.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, line2, platformcore.ColorDefault)
}
