package automaton

import "github.com/pkg/errors"

var (
	// ErrInvalidSpec is reported at simulator construction when the rule
	// specification violates its structural invariants.
	ErrInvalidSpec = errors.New("invalid rule specification")

	// ErrOutOfRange is reported by the single-cell accessors when coordinates
	// fall outside the grid. Stepping never reports it; neighbor lookups wrap.
	ErrOutOfRange = errors.New("cell coordinates out of range")
)
