package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dots/internal/games/dots/core"
)

func testConfig(w, h int) core.Config {
	cfg := core.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Colors = 3
	return cfg
}

// spawned returns the SpawnTile commands in cmds.
func spawned(cmds []core.Command) []core.SpawnTile {
	var out []core.SpawnTile
	for _, cmd := range cmds {
		if s, ok := cmd.(core.SpawnTile); ok {
			out = append(out, s)
		}
	}
	return out
}

func countCommands[T core.Command](cmds []core.Command) int {
	n := 0
	for _, cmd := range cmds {
		if _, ok := cmd.(T); ok {
			n++
		}
	}
	return n
}

// settle runs the board clock until gravity and replenishment are done.
func settle(t *testing.T, b *core.Board) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if b.Settled() {
			return
		}
		b.Update(16 * time.Millisecond)
	}
	t.Fatal("board did not settle")
}

func TestSpawnRow(t *testing.T) {
	rec := &core.Recorder{}
	b := core.NewBoard(testConfig(3, 4), core.NewSequencePicker(0), rec)

	if _, err := b.SpawnRow(0, []core.ColorID{0, 1}); !errors.Is(err, core.ErrRowWidth) {
		t.Fatalf("expected ErrRowWidth, got %v", err)
	}

	tiles, err := b.SpawnRow(1, []core.ColorID{0, 1, 2})
	if err != nil {
		t.Fatalf("SpawnRow: %v", err)
	}
	for col, tile := range tiles {
		if tile.Color != core.ColorID(col) {
			t.Errorf("column %d: color %d", col, tile.Color)
		}
		if got := tile.Cell(b.Mapping()); got != core.C(col, 5) {
			t.Errorf("column %d: spawned at %v, want (%d,5)", col, got, col)
		}
	}

	cmds := spawned(rec.Drain())
	if len(cmds) != 3 {
		t.Fatalf("expected 3 SpawnTile commands, got %d", len(cmds))
	}
	for col, cmd := range cmds {
		if cmd.Column != col || cmd.Row != 1 || cmd.Tile != tiles[col] {
			t.Errorf("command %d = %+v", col, cmd)
		}
	}

	b.Settle()
	for col, tile := range tiles {
		if got := tile.Cell(b.Mapping()); got != core.C(col, 0) {
			t.Errorf("column %d: settled at %v", col, got)
		}
	}
}

func TestTileAt(t *testing.T) {
	b := core.NewBoard(testConfig(3, 3), core.NewSequencePicker(0), nil)
	m := b.Mapping()
	tile := b.Place(core.C(1, 2), 1)

	got, ok := b.TileAt(m.Center(core.C(1, 2)))
	if !ok || got != tile {
		t.Fatalf("TileAt(center) = %v, %v", got, ok)
	}
	if _, ok := b.TileAt(m.Center(core.C(0, 0))); ok {
		t.Error("TileAt on an empty cell found a tile")
	}
	if _, ok := b.TileAt(m.Point(1.5, 2)); ok {
		t.Error("TileAt on a cell boundary should find nothing")
	}
}

func TestRemoveTilesIsLogicalAndDeferred(t *testing.T) {
	rec := &core.Recorder{}
	cfg := testConfig(3, 3)
	b := core.NewBoard(cfg, core.NewSequencePicker(0), rec)
	a := b.Place(core.C(0, 0), 0)
	c := b.Place(core.C(1, 0), 0)
	stranger := &core.Tile{ID: 77, Color: 0, Pos: b.Mapping().Center(core.C(2, 0))}
	rec.Drain()

	removed := b.RemoveTiles([]*core.Tile{a, stranger, c})
	if len(removed) != 2 {
		t.Fatalf("removed %d tiles, want 2", len(removed))
	}
	if b.Contains(a) || b.Contains(c) {
		t.Error("removed tiles are still live")
	}
	if _, ok := b.TileAt(b.Mapping().Center(core.C(0, 0))); ok {
		t.Error("removed tile is still hit-testable")
	}
	if len(b.Dying()) != 2 {
		t.Errorf("Dying() = %d, want 2", len(b.Dying()))
	}

	// Removing again is a no-op
	if again := b.RemoveTiles([]*core.Tile{a}); len(again) != 0 {
		t.Error("second removal should skip the tile")
	}

	cmds := rec.Drain()
	if n := countCommands[core.RemoveTile](cmds); n != 2 {
		t.Errorf("RemoveTile commands = %d, want 2", n)
	}
	if n := countCommands[core.DestroyTile](cmds); n != 0 {
		t.Errorf("DestroyTile emitted before shrink finished")
	}

	b.Update(cfg.ShrinkDuration / 2)
	if n := countCommands[core.DestroyTile](rec.Drain()); n != 0 {
		t.Errorf("DestroyTile emitted halfway through the shrink")
	}

	b.Update(cfg.ShrinkDuration / 2)
	if n := countCommands[core.DestroyTile](rec.Drain()); n != 2 {
		t.Errorf("DestroyTile commands = %d, want 2", n)
	}
	if len(b.Dying()) != 0 {
		t.Error("destroyed tiles still pending")
	}
}

func TestRemoveColor(t *testing.T) {
	b := core.NewBoard(testConfig(3, 2), core.NewSequencePicker(0), nil)
	layout, err := core.ParseLayout([]string{
		"BAB",
		"ABC",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	b.PlaceLayout(layout)
	offBoard := b.Place(core.C(-1, 0), 1)

	removed := b.RemoveColor(1)
	if len(removed) != 3 {
		t.Fatalf("removed %d tiles, want 3", len(removed))
	}
	for _, tile := range removed {
		if tile.Color != 1 {
			t.Errorf("removed %v of the wrong color", tile)
		}
	}
	if !b.Contains(offBoard) {
		t.Error("tile outside the board columns should be left alone")
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d, want 4", b.Len())
	}
}

func TestComputeReplenishCounts(t *testing.T) {
	b := core.NewBoard(testConfig(4, 3), core.NewSequencePicker(0), nil)
	tiles := []*core.Tile{
		b.Place(core.C(0, 0), 0),
		b.Place(core.C(0, 1), 0),
		b.Place(core.C(2, 2), 0),
		b.Place(core.C(9, 0), 0), // outside the board
	}

	got := b.ComputeReplenishCounts(tiles)
	want := []int{2, 0, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("counts = %v, want %v", got, want)
		}
	}
}

func TestReplenishWaves(t *testing.T) {
	rec := &core.Recorder{}
	cfg := testConfig(4, 3)
	b := core.NewBoard(cfg, core.NewSequencePicker(0), rec)

	b.Replenish([]int{3, 1, 0, 2}, core.NoColor)

	// Fullest column starts first
	first := spawned(rec.Drain())
	if len(first) != 1 || first[0].Column != 0 || first[0].Row != 0 {
		t.Fatalf("first wave = %+v", first)
	}
	if b.PendingWaves() != 2 {
		t.Errorf("PendingWaves() = %d, want 2", b.PendingWaves())
	}

	states := []struct {
		state core.ColumnState
		left  int
	}{
		{core.ColumnSpawning, 2},
		{core.ColumnSpawning, 1},
		{core.ColumnIdle, 0},
		{core.ColumnSpawning, 2},
	}
	for col, want := range states {
		state, left := b.ColumnState(col)
		if state != want.state || left != want.left {
			t.Errorf("column %d: %v/%d, want %v/%d", col, state, left, want.state, want.left)
		}
	}

	if n := b.AdvanceReplenishWave(); n != 2 {
		t.Fatalf("second wave spawned %d, want 2", n)
	}
	second := spawned(rec.Drain())
	if second[0].Column != 0 || second[1].Column != 3 || second[0].Row != 1 {
		t.Errorf("second wave = %+v", second)
	}

	// Half a delay is not enough
	b.Update(cfg.WaveDelay / 2)
	if len(spawned(rec.Drain())) != 0 {
		t.Fatal("wave emitted before the delay elapsed")
	}
	b.Update(cfg.WaveDelay / 2)
	third := spawned(rec.Drain())
	if len(third) != 3 {
		t.Fatalf("third wave spawned %d, want 3", len(third))
	}
	for _, cmd := range third {
		if cmd.Row != 2 {
			t.Errorf("third wave row = %d, want 2", cmd.Row)
		}
	}

	if b.PendingWaves() != 0 {
		t.Errorf("PendingWaves() = %d after last wave", b.PendingWaves())
	}
	for col := 0; col < 4; col++ {
		if state, _ := b.ColumnState(col); state != core.ColumnIdle {
			t.Errorf("column %d still %v", col, state)
		}
	}
	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
}

func TestReplenishInterleaves(t *testing.T) {
	rec := &core.Recorder{}
	b := core.NewBoard(testConfig(4, 3), core.NewSequencePicker(0), rec)

	b.Replenish([]int{2, 0, 0, 0}, core.NoColor)
	b.Replenish([]int{0, 0, 0, 2}, core.NoColor)
	if n := len(spawned(rec.Drain())); n != 2 {
		t.Fatalf("first waves spawned %d, want 2", n)
	}

	// One advance serves both jobs
	if n := b.AdvanceReplenishWave(); n != 2 {
		t.Errorf("interleaved wave spawned %d, want 2", n)
	}
	if b.PendingWaves() != 0 {
		t.Error("jobs should be finished")
	}
}

func TestReplenishZeroDelayRunsAtOnce(t *testing.T) {
	cfg := testConfig(2, 4)
	cfg.WaveDelay = 0
	b := core.NewBoard(cfg, core.NewSequencePicker(0), nil)

	b.Replenish([]int{4, 2}, core.NoColor)
	b.Update(0)

	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
	if b.PendingWaves() != 0 {
		t.Error("waves still pending")
	}
}

func TestReplenishIgnoresBadCounts(t *testing.T) {
	b := core.NewBoard(testConfig(2, 3), core.NewSequencePicker(0), nil)

	b.Replenish([]int{0, -3, 7}, core.NoColor)
	if b.Len() != 0 || b.PendingWaves() != 0 {
		t.Errorf("expected nothing scheduled, got %d tiles, %d waves", b.Len(), b.PendingWaves())
	}
}

func TestReplenishExcludesColor(t *testing.T) {
	cfg := testConfig(3, 3)
	b := core.NewBoard(cfg, core.NewRandPicker(5, cfg.Colors), nil)

	b.Replenish([]int{3, 3, 3}, 1)
	settle(t, b)

	for _, tile := range b.Tiles() {
		if tile.Color == 1 {
			t.Fatalf("%v has the excluded color", tile)
		}
	}
}

func TestReplenishConservation(t *testing.T) {
	b := core.NewBoard(testConfig(3, 3), core.NewSequencePicker(2), nil)
	layout, err := core.ParseLayout([]string{
		"ABA",
		"BAB",
		"ABA",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	placed := b.PlaceLayout(layout)
	oldest := core.TileID(len(placed))

	removed := b.RemoveTiles([]*core.Tile{placed[core.C(1, 0)], placed[core.C(1, 2)], placed[core.C(0, 1)]})
	counts := b.ComputeReplenishCounts(removed)
	b.Replenish(counts, core.NoColor)
	settle(t, b)

	fresh := make([]int, 3)
	total := make([]int, 3)
	cells := make(map[core.Coord]bool)
	for _, tile := range b.Tiles() {
		c := tile.Cell(b.Mapping())
		if cells[c] {
			t.Fatalf("two tiles on %v", c)
		}
		cells[c] = true
		total[c.X]++
		if tile.ID > oldest {
			fresh[c.X]++
		}
	}

	for col := 0; col < 3; col++ {
		if fresh[col] != counts[col] {
			t.Errorf("column %d: %d new tiles, want %d", col, fresh[col], counts[col])
		}
		if total[col] != 3 {
			t.Errorf("column %d: %d tiles, want 3", col, total[col])
		}
	}
}

func TestGravity(t *testing.T) {
	cfg := testConfig(1, 4)
	b := core.NewBoard(cfg, core.NewSequencePicker(0), nil)
	m := b.Mapping()

	tile := b.Place(core.C(0, 3), 0)
	if b.Settled() || b.Resting(tile) {
		t.Fatal("floating tile reported as resting")
	}

	startY := tile.Pos.Y
	b.Update(50 * time.Millisecond)
	wantY := startY - cfg.FallSpeed*0.05*m.CellSize.Y
	if diff := tile.Pos.Y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("after 50ms Y = %g, want %g", tile.Pos.Y, wantY)
	}

	settle(t, b)
	if got := tile.Cell(m); got != core.C(0, 0) {
		t.Errorf("tile rests on %v, want (0,0)", got)
	}
	if tile.Pos != m.Center(core.C(0, 0)) {
		t.Errorf("tile not snapped to the cell center: %v", tile.Pos)
	}
	if !b.Resting(tile) {
		t.Error("tile should be resting")
	}
}

func TestRestingTiles(t *testing.T) {
	cfg := testConfig(2, 3)
	b := core.NewBoard(cfg, core.NewSequencePicker(0), nil)

	low := b.Place(core.C(0, 0), 0)
	floating := b.Place(core.C(0, 2), 0)
	other := b.Place(core.C(1, 0), 1)

	got := b.RestingTiles()
	if len(got) != 2 || got[0] != low || got[1] != other {
		t.Fatalf("RestingTiles() = %v, want [%v %v]", got, low, other)
	}
	for _, tile := range got {
		if !b.Resting(tile) {
			t.Errorf("%v listed but not resting", tile)
		}
	}
	if b.Resting(floating) {
		t.Error("floating tile reported as resting")
	}

	settle(t, b)
	if n := len(b.RestingTiles()); n != 3 {
		t.Errorf("after settling %d resting tiles, want 3", n)
	}
}

func TestGravityStacks(t *testing.T) {
	cfg := testConfig(1, 3)
	cfg.FallSpeed = 0
	b := core.NewBoard(cfg, core.NewSequencePicker(0), nil)

	low := b.Place(core.C(0, 1), 0)
	high := b.Place(core.C(0, 2), 1)
	b.Update(time.Millisecond)

	if got := low.Cell(b.Mapping()); got != core.C(0, 0) {
		t.Errorf("low tile on %v", got)
	}
	if got := high.Cell(b.Mapping()); got != core.C(0, 1) {
		t.Errorf("high tile on %v", got)
	}
	if !b.Settled() {
		t.Error("instant gravity should settle in one update")
	}
}

func TestFill(t *testing.T) {
	cfg := testConfig(4, 3)
	b := core.NewBoard(cfg, core.NewRandPicker(9, cfg.Colors), nil)

	b.Fill()
	if b.Len() != 4 {
		t.Fatalf("first wave spawned %d, want 4", b.Len())
	}
	for b.PendingWaves() > 0 {
		b.AdvanceReplenishWave()
	}
	b.Settle()

	if b.Len() != 12 {
		t.Errorf("Len() = %d, want 12", b.Len())
	}
	if !b.Settled() {
		t.Error("board should be settled")
	}

	cells := make(map[core.Coord]bool)
	for _, tile := range b.Tiles() {
		c := tile.Cell(b.Mapping())
		if c.X < 0 || c.X >= 4 || c.Y < 0 || c.Y >= 3 {
			t.Errorf("%v outside the window at %v", tile, c)
		}
		cells[c] = true
	}
	if len(cells) != 12 {
		t.Errorf("%d distinct cells, want 12", len(cells))
	}
}

func TestParseLayout(t *testing.T) {
	layout, err := core.ParseLayout([]string{
		"A.",
		"CB",
	})
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if len(layout) != 3 {
		t.Fatalf("len = %d, want 3", len(layout))
	}
	if layout[core.C(0, 1)] != 0 || layout[core.C(0, 0)] != 2 || layout[core.C(1, 0)] != 1 {
		t.Errorf("layout = %v", layout)
	}

	if _, err := core.ParseLayout([]string{"AB", "A"}); err == nil {
		t.Error("ragged layout should fail")
	}
	if _, err := core.ParseLayout([]string{"A1"}); err == nil {
		t.Error("invalid cell should fail")
	}
}
