package automaton

import (
	"errors"
	"testing"
)

func conwayRules() RuleTable {
	return RuleTable{
		{0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 0, 0},
	}
}

func TestValidateConway(t *testing.T) {
	spec := NewSpec(Moore(), conwayRules())
	if err := spec.Validate(); err != nil {
		t.Fatalf("conway spec must validate, got %v", err)
	}
}

func TestValidateRejectsEvenMask(t *testing.T) {
	// 2x2, 2x3, 3x2 and empty masks in turn.
	masks := []Mask{
		{{1, 1}, {1, 1}},
		{{1, 1}, {1, 1}, {1, 1}},
		{{1, 1, 1}, {1, 1, 1}},
		{},
	}
	for i, mask := range masks {
		spec := NewSpec(mask, RuleTable{make([]int, 16), make([]int, 16)})
		err := spec.Validate()
		if err == nil {
			t.Fatalf("mask %d: even/empty dimensions must be rejected", i)
		}
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("mask %d: error %v must wrap ErrInvalidSpec", i, err)
		}
	}
}

func TestValidateRejectsRaggedMask(t *testing.T) {
	mask := Mask{
		{1, 1, 1},
		{1, 0},
		{1, 1, 1},
	}
	spec := NewSpec(mask, conwayRules())
	if err := spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("ragged mask must be rejected, got %v", err)
	}
}

func TestValidateRejectsNegativeWeight(t *testing.T) {
	mask := Moore()
	mask[0][0] = -1
	spec := NewSpec(mask, conwayRules())
	if err := spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("negative weight must be rejected, got %v", err)
	}
}

func TestValidateRejectsWrongRowCount(t *testing.T) {
	tables := []RuleTable{
		{},
		{make([]int, 9)},
		{make([]int, 9), make([]int, 9), make([]int, 9)},
	}
	for i, rules := range tables {
		spec := NewSpec(Moore(), rules)
		if err := spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("table %d: %d rule rows must be rejected, got %v", i, len(rules), err)
		}
	}
}

func TestValidateRejectsShortRuleRows(t *testing.T) {
	// Moore mask sums to 8, so both rows need at least 9 entries.
	short := RuleTable{make([]int, 8), make([]int, 9)}
	if err := NewSpec(Moore(), short).Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("short dead row must be rejected, got %v", err)
	}
	short = RuleTable{make([]int, 9), make([]int, 8)}
	if err := NewSpec(Moore(), short).Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("short live row must be rejected, got %v", err)
	}
}

func TestMaskMaxCountSumsWeights(t *testing.T) {
	mask := Mask{
		{1, 2, 1},
		{2, 0, 2},
		{1, 2, 1},
	}
	if got := mask.MaxCount(); got != 12 {
		t.Fatalf("MaxCount = %d, want 12", got)
	}
	rx, ry := mask.Radius()
	if rx != 1 || ry != 1 {
		t.Fatalf("Radius = (%d, %d), want (1, 1)", rx, ry)
	}
}

func TestSingleCellMask(t *testing.T) {
	// A 1x1 mask is valid: the neighborhood is just the cell itself.
	spec := NewSpec(Mask{{1}}, RuleTable{{0, 0}, {0, 1}})
	if err := spec.Validate(); err != nil {
		t.Fatalf("1x1 mask must validate, got %v", err)
	}
}
