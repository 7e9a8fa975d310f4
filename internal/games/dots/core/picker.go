package core

import "math/rand"

// ColorPicker chooses colors for newly spawned tiles.
// Pick returns false when no color is available, e.g. a one-color palette
// that excludes its only color.
type ColorPicker interface {
	Pick(exclude ColorID) (ColorID, bool)
}

// RandPicker picks colors uniformly at random from [0, colors).
type RandPicker struct {
	rng    *rand.Rand
	colors int
}

// NewRandPicker creates a seeded random picker.
func NewRandPicker(seed int64, colors int) *RandPicker {
	return &RandPicker{
		rng:    rand.New(rand.NewSource(seed)),
		colors: colors,
	}
}

// Pick returns a uniformly random color other than exclude.
// The excluded color is skipped by drawing from n-1 colors and shifting,
// so it never loops.
func (p *RandPicker) Pick(exclude ColorID) (ColorID, bool) {
	n := p.colors
	if exclude >= 0 && int(exclude) < n {
		if n < 2 {
			return NoColor, false
		}
		c := ColorID(p.rng.Intn(n - 1))
		if c >= exclude {
			c++
		}
		return c, true
	}
	if n < 1 {
		return NoColor, false
	}
	return ColorID(p.rng.Intn(n)), true
}

// SequencePicker hands out colors from a fixed cycle, skipping the excluded one.
// Useful for scripted boards and tests.
type SequencePicker struct {
	seq  []ColorID
	next int
}

// NewSequencePicker creates a picker cycling through seq.
func NewSequencePicker(seq ...ColorID) *SequencePicker {
	return &SequencePicker{seq: seq}
}

// Pick returns the next color in the cycle that is not exclude.
func (p *SequencePicker) Pick(exclude ColorID) (ColorID, bool) {
	for range p.seq {
		c := p.seq[p.next%len(p.seq)]
		p.next++
		if c != exclude {
			return c, true
		}
	}
	return NoColor, false
}
