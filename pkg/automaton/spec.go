// Package automaton implements a generic two-dimensional cellular automaton
// over a toroidal boolean grid. The neighborhood shape and weights and the
// birth/survival rules are data, so the same stepping core runs Conway's
// Game of Life, Life-like variants and weighted-neighborhood automata.
package automaton

import "github.com/pkg/errors"

// Mask is a weighted neighborhood: rows are indexed [dy+ry][dx+rx] where
// (rx, ry) is the radius derived from the odd mask dimensions, so the center
// entry is the offset (0, 0) — the cell itself. A weight n at an offset makes
// a live neighbor there contribute n to the neighbor count.
type Mask [][]int

// Dims returns the mask width and height.
func (m Mask) Dims() (w, h int) {
	h = len(m)
	if h > 0 {
		w = len(m[0])
	}
	return w, h
}

// Radius returns the neighborhood radius in each axis. Only meaningful for
// masks with odd dimensions.
func (m Mask) Radius() (rx, ry int) {
	w, h := m.Dims()
	return (w - 1) / 2, (h - 1) / 2
}

// MaxCount returns the largest reachable neighbor count: the sum of all
// weights in the mask.
func (m Mask) MaxCount() int {
	total := 0
	for _, row := range m {
		for _, w := range row {
			total += w
		}
	}
	return total
}

// Moore returns the classic 3x3 eight-neighbor mask with a zero center.
func Moore() Mask {
	return Mask{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
}

// RuleTable maps (current state, neighbor count) to the next state. Row 0 is
// consulted for dead cells, row 1 for live cells; a non-zero entry at index k
// means a cell with neighbor count k is alive next generation.
type RuleTable [][]int

// Spec pairs a neighborhood mask with a rule table. It is a plain data
// holder: NewSpec stores both fields untouched, and the simulator runs
// Validate once at construction before any stepping.
type Spec struct {
	Mask  Mask
	Rules RuleTable
}

// NewSpec builds a Spec without validating it.
func NewSpec(mask Mask, rules RuleTable) *Spec {
	return &Spec{Mask: mask, Rules: rules}
}

// Validate checks the structural invariants of the specification. All
// failures are reported as ErrInvalidSpec with context describing the
// violation.
func (s *Spec) Validate() error {
	w, h := s.Mask.Dims()
	if w < 1 || h < 1 {
		return errors.Wrapf(ErrInvalidSpec, "neighborhood mask is %dx%d, both dimensions must be at least 1", w, h)
	}
	if w%2 == 0 || h%2 == 0 {
		return errors.Wrapf(ErrInvalidSpec, "neighborhood mask is %dx%d, both dimensions must be odd", w, h)
	}
	for dy, row := range s.Mask {
		if len(row) != w {
			return errors.Wrapf(ErrInvalidSpec, "neighborhood mask row %d has %d entries, want %d", dy, len(row), w)
		}
		for dx, weight := range row {
			if weight < 0 {
				return errors.Wrapf(ErrInvalidSpec, "neighborhood weight at (%d, %d) is %d, weights must be non-negative", dx, dy, weight)
			}
		}
	}
	if len(s.Rules) != 2 {
		return errors.Wrapf(ErrInvalidSpec, "rule table has %d rows, want 2 (dead row and live row)", len(s.Rules))
	}
	maxCount := s.Mask.MaxCount()
	for state, row := range s.Rules {
		if len(row) < maxCount+1 {
			return errors.Wrapf(ErrInvalidSpec, "rule row %d has %d entries, need %d to cover every neighbor count", state, len(row), maxCount+1)
		}
	}
	return nil
}
