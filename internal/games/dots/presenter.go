package dots

import (
	"time"

	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

// presenter is the terminal-side Sink. It keeps only what the engine does
// not: the connecting line and tiles that are shrinking out.
type presenter struct {
	lineColor core.ColorID
	line      []core.Vec2

	shrink time.Duration
	dying  map[*core.Tile]time.Duration // Age since RemoveTile

	spawned int
	removed int // RemoveTile commands since the last take
}

func newPresenter(shrink time.Duration) *presenter {
	return &presenter{
		lineColor: core.NoColor,
		shrink:    shrink,
		dying:     make(map[*core.Tile]time.Duration),
	}
}

// Emit implements core.Sink.
func (p *presenter) Emit(cmd core.Command) {
	switch c := cmd.(type) {
	case core.SetLineColor:
		p.lineColor = c.ColorID
	case core.HighlightPath:
		p.line = append(p.line[:0], c.Positions...)
	case core.ClearHighlight:
		p.line = p.line[:0]
		p.lineColor = core.NoColor
	case core.SpawnTile:
		p.spawned++
	case core.RemoveTile:
		p.dying[c.Tile] = 0
		p.removed++
	case core.DestroyTile:
		delete(p.dying, c.Tile)
	}
}

// advance ages shrinking tiles by dt.
func (p *presenter) advance(dt time.Duration) {
	for t, age := range p.dying {
		p.dying[t] = age + dt
	}
}

// takeRemoved returns and resets the RemoveTile count.
func (p *presenter) takeRemoved() int {
	n := p.removed
	p.removed = 0
	return n
}

// shrinkGlyph picks the glyph for a tile removed age ago.
func (p *presenter) shrinkGlyph(age time.Duration) rune {
	if p.shrink <= 0 {
		return glyphTiny
	}
	switch frac := float64(age) / float64(p.shrink); {
	case frac < 1.0/3:
		return glyphDot
	case frac < 2.0/3:
		return glyphSmall
	default:
		return glyphTiny
	}
}
