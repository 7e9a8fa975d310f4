package core

// Command is an instruction for the presentation layer.
// The concrete types are HighlightPath, SetLineColor, ClearHighlight,
// SpawnTile, RemoveTile and DestroyTile.
type Command interface {
	command()
}

// HighlightPath asks the presentation to draw the connecting line through Positions.
type HighlightPath struct {
	Positions []Vec2
}

// SetLineColor sets the color of the connecting line.
type SetLineColor struct {
	ColorID ColorID
	Color   RGB
}

// ClearHighlight removes the connecting line.
type ClearHighlight struct{}

// SpawnTile announces a new tile in column Column.
// Row counts from the top of the visible window: 0 is just above it, and
// tiles placed inside the window have negative rows.
type SpawnTile struct {
	Column int
	Row    int
	Tile   *Tile
}

// RemoveTile announces that a tile has left the board.
// The presentation may keep showing it (shrinking) until DestroyTile.
type RemoveTile struct {
	Tile *Tile
}

// DestroyTile tells the presentation that a removed tile can be discarded.
type DestroyTile struct {
	Tile *Tile
}

func (HighlightPath) command()  {}
func (SetLineColor) command()   {}
func (ClearHighlight) command() {}
func (SpawnTile) command()      {}
func (RemoveTile) command()     {}
func (DestroyTile) command()    {}

// Sink receives commands emitted by the engine and the board.
type Sink interface {
	Emit(cmd Command)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(cmd Command)

// Emit calls f(cmd).
func (f SinkFunc) Emit(cmd Command) {
	f(cmd)
}

// Discard is a Sink that drops every command.
var Discard Sink = SinkFunc(func(Command) {})

// Recorder is a Sink that collects commands in emission order.
type Recorder struct {
	Commands []Command
}

// Emit appends cmd.
func (r *Recorder) Emit(cmd Command) {
	r.Commands = append(r.Commands, cmd)
}

// Drain returns the recorded commands and resets the recorder.
func (r *Recorder) Drain() []Command {
	cmds := r.Commands
	r.Commands = nil
	return cmds
}
