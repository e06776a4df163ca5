package automaton

import (
	"errors"
	"testing"

	"simca/pkg/core"
)

func newConway(t *testing.T, w, h int) *Simulator {
	t.Helper()
	sim, err := New(w, h, NewSpec(Moore(), conwayRules()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sim
}

func liveSet(t *testing.T, sim *Simulator) map[[2]int]bool {
	t.Helper()
	set := map[[2]int]bool{}
	g := sim.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func TestConstructionRejectsInvalidSpec(t *testing.T) {
	spec := NewSpec(Mask{{1, 1}, {1, 1}}, RuleTable{make([]int, 5), make([]int, 5)})
	if _, err := New(10, 10, spec); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("New with even mask must fail with ErrInvalidSpec, got %v", err)
	}
	if _, err := NewFromGrid(core.NewBoolGrid(4, 4), spec); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("NewFromGrid with even mask must fail with ErrInvalidSpec, got %v", err)
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	// rules[0][0] == 0, so zero neighbors never spawn life.
	sim := newConway(t, 8, 6)
	for i := 0; i < 5; i++ {
		sim.Step()
	}
	if n := sim.LiveCells(); n != 0 {
		t.Fatalf("all-dead grid produced %d live cells", n)
	}
}

func TestCellAccessors(t *testing.T) {
	sim := newConway(t, 7, 4)

	if err := sim.SetCell(3, 2, true); err != nil {
		t.Fatalf("SetCell in range: %v", err)
	}
	alive, err := sim.Cell(3, 2)
	if err != nil {
		t.Fatalf("Cell in range: %v", err)
	}
	if !alive {
		t.Fatal("cell (3, 2) must be alive after SetCell")
	}

	// Direct access never wraps: the width itself is already out of range.
	if _, err := sim.Cell(7, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Cell(W, 0) must fail with ErrOutOfRange, got %v", err)
	}
	if err := sim.SetCell(0, 4, true); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetCell(0, H) must fail with ErrOutOfRange, got %v", err)
	}
	if _, err := sim.Cell(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Cell(-1, 0) must fail with ErrOutOfRange, got %v", err)
	}

	// A failed call leaves the grid untouched.
	if n := sim.LiveCells(); n != 1 {
		t.Fatalf("live cells = %d, want 1", n)
	}
}

func TestGridReturnsDefensiveCopy(t *testing.T) {
	sim := newConway(t, 5, 5)
	if err := sim.SetCell(2, 2, true); err != nil {
		t.Fatal(err)
	}

	first := sim.Grid()
	second := sim.Grid()
	if !first.Equal(second) {
		t.Fatal("consecutive Grid calls without mutation must be equal")
	}

	first.Set(0, 0, true)
	if got, _ := sim.Cell(0, 0); got {
		t.Fatal("mutating a returned grid must not affect the simulator")
	}

	sim.Step()
	if !first.Get(0, 0) {
		t.Fatal("stepping must not mutate grids returned earlier")
	}
}

func TestSetGridResizes(t *testing.T) {
	sim := newConway(t, 3, 3)

	seed := core.NewBoolGrid(6, 4)
	seed.Set(5, 3, true)
	sim.SetGrid(seed)

	if size := sim.Size(); size.W != 6 || size.H != 4 {
		t.Fatalf("size after SetGrid = %dx%d, want 6x4", size.W, size.H)
	}
	alive, err := sim.Cell(5, 3)
	if err != nil || !alive {
		t.Fatalf("cell (5, 3) = %v, %v, want alive", alive, err)
	}

	// The caller keeps ownership of the seed grid.
	seed.Set(0, 0, true)
	if got, _ := sim.Cell(0, 0); got {
		t.Fatal("mutating the seed grid after SetGrid must not affect the simulator")
	}
}

func TestClearKillsEverything(t *testing.T) {
	sim := newConway(t, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if err := sim.SetCell(x, y, true); err != nil {
				t.Fatal(err)
			}
		}
	}
	sim.Clear()
	if n := sim.LiveCells(); n != 0 {
		t.Fatalf("live cells after Clear = %d, want 0", n)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	sim := newConway(t, 5, 5)
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if err := sim.SetCell(c[0], c[1], true); err != nil {
			t.Fatal(err)
		}
	}

	sim.Step()
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	got := liveSet(t, sim)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			key := [2]int{x, y}
			if expects[key] != got[key] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got[key], expects[key])
			}
		}
	}

	sim.Step()
	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	got = liveSet(t, sim)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			key := [2]int{x, y}
			if expects[key] != got[key] {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, got[key], expects[key])
			}
		}
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	sim := newConway(t, 20, 20)
	start := [][2]int{{5, 5}, {6, 6}, {4, 7}, {5, 7}, {6, 7}}
	for _, c := range start {
		if err := sim.SetCell(c[0], c[1], true); err != nil {
			t.Fatal(err)
		}
	}

	// The glider's translation period is 4 generations with displacement
	// (+1, +1).
	for i := 0; i < 4; i++ {
		sim.Step()
	}

	expects := map[[2]int]bool{}
	for _, c := range start {
		expects[[2]int{c[0] + 1, c[1] + 1}] = true
	}
	got := liveSet(t, sim)
	if len(got) != len(expects) {
		t.Fatalf("live cells after 4 steps = %v, want %v", got, expects)
	}
	for key := range expects {
		if !got[key] {
			t.Fatalf("cell (%d,%d) must be alive after 4 steps, live set %v", key[0], key[1], got)
		}
	}
}

func TestToroidalWraparound(t *testing.T) {
	// Birth on exactly one neighbor at offset (+1, +1).
	mask := Mask{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	}
	rules := RuleTable{{0, 1}, {0, 0}}
	sim, err := New(4, 3, NewSpec(mask, rules))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sim.SetCell(0, 0, true); err != nil {
		t.Fatal(err)
	}

	sim.Step()
	// (0, 0) is the (+1, +1) neighbor of the opposite corner.
	alive, _ := sim.Cell(3, 2)
	if !alive {
		t.Fatal("live cell at (0,0) must be seen across the corner by (W-1,H-1)")
	}

	// And the mirror case: offset (-1, -1) reaches from (0, 0) back to the
	// far corner.
	mask = Mask{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	sim, err = New(4, 3, NewSpec(mask, rules))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sim.SetCell(3, 2, true); err != nil {
		t.Fatal(err)
	}
	sim.Step()
	alive, _ = sim.Cell(0, 0)
	if !alive {
		t.Fatal("live cell at (W-1,H-1) must be seen across the corner by (0,0)")
	}
}

func TestWraparoundOnSingleRowGrid(t *testing.T) {
	// With H = 1 every vertical offset wraps back onto the same row, so the
	// column left of a live cell sees it through all three mask rows.
	mask := Moore()
	rules := RuleTable{{0, 0, 0, 1, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 0, 0}}
	sim, err := New(5, 1, NewSpec(mask, rules))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sim.SetCell(2, 0, true); err != nil {
		t.Fatal(err)
	}

	sim.Step()
	for x := 0; x < 5; x++ {
		alive, _ := sim.Cell(x, 0)
		want := x == 1 || x == 3
		if alive != want {
			t.Fatalf("cell (%d,0) alive=%v, expected %v", x, alive, want)
		}
	}
}

func TestWeightedNeighborCounts(t *testing.T) {
	// Weight 2 at offset (-1, 0): one live left neighbor counts as two.
	mask := Mask{
		{0, 0, 0},
		{2, 0, 0},
		{0, 0, 0},
	}
	rules := RuleTable{{0, 0, 1}, {0, 0, 0}}
	sim, err := New(5, 5, NewSpec(mask, rules))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sim.SetCell(1, 2, true); err != nil {
		t.Fatal(err)
	}

	sim.Step()
	got := liveSet(t, sim)
	want := map[[2]int]bool{{2, 2}: true}
	if len(got) != 1 || !got[[2]int{2, 2}] {
		t.Fatalf("live set after step = %v, want %v", got, want)
	}
}

func TestStepReadsOneConsistentSnapshot(t *testing.T) {
	// A block is a still life only if every cell is judged against the old
	// generation; in-place updates would break it.
	sim := newConway(t, 6, 6)
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	for _, c := range block {
		if err := sim.SetCell(c[0], c[1], true); err != nil {
			t.Fatal(err)
		}
	}
	before := sim.Grid()
	sim.Step()
	if !before.Equal(sim.Grid()) {
		t.Fatal("block still life must survive a step unchanged")
	}
}

func BenchmarkStep(b *testing.B) {
	spec := NewSpec(Moore(), conwayRules())
	sim, err := New(256, 256, spec)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	seed := core.NewBoolGrid(256, 256)
	core.FillBinary(core.NewRNG(42).Source(), seed.Cells())
	sim.SetGrid(seed)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim.Step()
	}
}
