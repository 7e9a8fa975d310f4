package core

import (
	"errors"
	"fmt"
	"math"
)

// Coord is a discrete grid cell.
// X increases to the right, Y increases upward (row 0 is the bottom row).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the component-wise difference c - other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Dot returns the dot product of two coordinates treated as vectors.
func (c Coord) Dot(other Coord) int {
	return c.X*other.X + c.Y*other.Y
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent returns true if other is one of the four orthogonal neighbours of c.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// Vec2 is a continuous world-space position.
type Vec2 struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// ErrAmbiguousPosition is returned when a position sits exactly between two cells.
var ErrAmbiguousPosition = errors.New("core: position lies on a cell boundary")

// boundaryEpsilon is how close to a half-cell a position must be to count as a tie.
const boundaryEpsilon = 1e-9

// Mapping converts between world positions and grid cells with a fixed
// affine transform: cell = round((pos + Origin) / CellSize).
type Mapping struct {
	Origin   Vec2 // Offset added before scaling
	CellSize Vec2 // World size of one cell
}

// Grid returns the continuous grid coordinates of a world position.
func (m Mapping) Grid(p Vec2) (gx, gy float64) {
	return (p.X + m.Origin.X) / m.CellSize.X, (p.Y + m.Origin.Y) / m.CellSize.Y
}

// Cell returns the grid cell containing p. Halfway positions round away from zero.
func (m Mapping) Cell(p Vec2) Coord {
	gx, gy := m.Grid(p)
	return Coord{X: int(math.Round(gx)), Y: int(math.Round(gy))}
}

// CellStrict is like Cell but refuses positions that lie on a cell boundary.
func (m Mapping) CellStrict(p Vec2) (Coord, error) {
	gx, gy := m.Grid(p)
	if onBoundary(gx) || onBoundary(gy) {
		return Coord{}, fmt.Errorf("%w: (%g,%g)", ErrAmbiguousPosition, p.X, p.Y)
	}
	return Coord{X: int(math.Round(gx)), Y: int(math.Round(gy))}, nil
}

// Center returns the world position of the center of cell c.
// Cell(Center(c)) == c for every c.
func (m Mapping) Center(c Coord) Vec2 {
	return m.Point(float64(c.X), float64(c.Y))
}

// Point converts continuous grid coordinates back to a world position.
func (m Mapping) Point(gx, gy float64) Vec2 {
	return Vec2{
		X: gx*m.CellSize.X - m.Origin.X,
		Y: gy*m.CellSize.Y - m.Origin.Y,
	}
}

func onBoundary(f float64) bool {
	frac := f - math.Floor(f)
	return math.Abs(frac-0.5) < boundaryEpsilon
}
