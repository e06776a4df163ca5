package automaton

import (
	"github.com/pkg/errors"

	"simca/pkg/core"
)

// Simulator advances a toroidal boolean grid one generation at a time
// according to a rule specification. It keeps two equally sized buffers and
// swaps them after each step, so stepping never allocates.
//
// The simulator is not safe for concurrent use: callers that share one
// across goroutines must serialize every call themselves.
type Simulator struct {
	spec *Spec
	cur  *core.BoolGrid
	nxt  *core.BoolGrid
}

// New creates a simulator with an all-dead w x h grid. The spec is validated
// first; on ErrInvalidSpec no simulator is returned.
func New(w, h int, spec *Spec) (*Simulator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		spec: spec,
		cur:  core.NewBoolGrid(w, h),
		nxt:  core.NewBoolGrid(w, h),
	}, nil
}

// NewFromGrid creates a simulator seeded from the provided grid, taking its
// dimensions. The initial grid is copied; the caller keeps ownership of its
// argument.
func NewFromGrid(initial *core.BoolGrid, spec *Spec) (*Simulator, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		spec: spec,
		cur:  initial.Clone(),
		nxt:  core.NewBoolGrid(initial.W, initial.H),
	}, nil
}

// Spec returns the rule specification the simulator was built with.
func (s *Simulator) Spec() *Spec { return s.spec }

// Size returns the grid dimensions.
func (s *Simulator) Size() core.Size { return s.cur.Size() }

// Cell returns the state of the cell at (x, y). Direct access does not wrap:
// coordinates outside the grid report ErrOutOfRange.
func (s *Simulator) Cell(x, y int) (bool, error) {
	if x < 0 || x >= s.cur.W || y < 0 || y >= s.cur.H {
		return false, errors.Wrapf(ErrOutOfRange, "cell (%d, %d) outside %dx%d grid", x, y, s.cur.W, s.cur.H)
	}
	return s.cur.Get(x, y), nil
}

// SetCell writes the state of the cell at (x, y), with the same bounds
// contract as Cell.
func (s *Simulator) SetCell(x, y int, alive bool) error {
	if x < 0 || x >= s.cur.W || y < 0 || y >= s.cur.H {
		return errors.Wrapf(ErrOutOfRange, "cell (%d, %d) outside %dx%d grid", x, y, s.cur.W, s.cur.H)
	}
	s.cur.Set(x, y, alive)
	return nil
}

// Grid returns a copy of the active buffer. Mutating the returned grid never
// affects the simulator, and stepping never affects grids already returned.
func (s *Simulator) Grid() *core.BoolGrid {
	return s.cur.Clone()
}

// SetGrid replaces the active buffer with a copy of g, resizing the
// simulator to g's dimensions. The staging buffer is reallocated all-dead.
func (s *Simulator) SetGrid(g *core.BoolGrid) {
	s.cur = g.Clone()
	s.nxt = core.NewBoolGrid(g.W, g.H)
}

// Clear kills every cell of the active buffer.
func (s *Simulator) Clear() {
	s.cur.Clear()
}

// LiveCells returns the number of live cells in the active buffer.
func (s *Simulator) LiveCells() int {
	return s.cur.Popcount()
}

// Step advances the grid one generation. Every cell's neighbor count is the
// weight-sum of live cells at the mask offsets, with both axes wrapping
// toroidally; the rule table then decides the next state. All reads come
// from the old buffer and all writes go to the staging buffer, which becomes
// active in a single swap at the end, so the generation is computed from one
// consistent snapshot.
func (s *Simulator) Step() {
	w, h := s.cur.W, s.cur.H
	rx, ry := s.spec.Mask.Radius()
	old, next := s.cur.Cells(), s.nxt.Cells()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			count := 0
			for dy := -ry; dy <= ry; dy++ {
				maskRow := s.spec.Mask[dy+ry]
				// Masks may be larger than the grid, so plain "+h" is not
				// enough to keep the index non-negative.
				ny := ((y+dy)%h + h) % h
				rowBase := ny * w
				for dx := -rx; dx <= rx; dx++ {
					weight := maskRow[dx+rx]
					if weight == 0 {
						continue
					}
					nx := ((x+dx)%w + w) % w
					if old[rowBase+nx] {
						count += weight
					}
				}
			}
			state := 0
			idx := y*w + x
			if old[idx] {
				state = 1
			}
			next[idx] = s.spec.Rules[state][count] != 0
		}
	}

	s.cur, s.nxt = s.nxt, s.cur
}
