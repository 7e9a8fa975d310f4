package core

// minSquarePath is the shortest path that can close a loop:
// four corners plus the repeated first corner.
const minSquarePath = 5

// FindSquare looks for a closed 2x2 loop in path.
// It takes the first index i with path[i] == path[i+4] and checks that the
// cells of path[i..i+3] form a unit square. Returns the loop start index.
func FindSquare(path []*Tile, m Mapping) (int, bool) {
	if len(path) < minSquarePath {
		return -1, false
	}

	start := -1
	for i := 0; i+4 < len(path); i++ {
		if path[i] == path[i+4] {
			start = i
			break
		}
	}
	if start < 0 {
		return -1, false
	}

	p1 := path[start].Cell(m)
	p2 := path[start+1].Cell(m)
	p3 := path[start+2].Cell(m)
	p4 := path[start+3].Cell(m)

	if !IsUnitSquare(p1, p2, p3, p4) {
		return -1, false
	}
	return start, true
}

// FormsSquare reports whether path contains a closed square.
func FormsSquare(path []*Tile, m Mapping) bool {
	_, ok := FindSquare(path, m)
	return ok
}

// IsUnitSquare reports whether p1, p2, p3, p4 (in path order) are the corners
// of an axis-aligned unit square: a parallelogram with p3 opposite p1, a right
// angle at p1, and unit edges leaving p1.
func IsUnitSquare(p1, p2, p3, p4 Coord) bool {
	e1 := p2.Sub(p1)
	e2 := p4.Sub(p1)

	if e1.Dot(e1) != 1 || e2.Dot(e2) != 1 {
		return false
	}
	return p3 == p1.Add(e1).Add(e2) && e1.Dot(e2) == 0
}
