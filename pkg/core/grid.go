package core

// BoolGrid stores a 2D grid of boolean cells in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates an all-dead grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *BoolGrid) Index(x, y int) int { return y*g.W + x }

// Get returns the cell value at (x, y). Coordinates must be in range.
func (g *BoolGrid) Get(x, y int) bool { return g.data[y*g.W+x] }

// Set writes the cell value at (x, y). Coordinates must be in range.
func (g *BoolGrid) Set(x, y int, v bool) { g.data[y*g.W+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates. The result is
// always non-negative, even for offsets far below zero.
func (g *BoolGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear kills every cell.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Clone returns an independent copy of the grid.
func (g *BoolGrid) Clone() *BoolGrid {
	c := &BoolGrid{W: g.W, H: g.H, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *BoolGrid) Equal(o *BoolGrid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// Popcount returns the number of live cells.
func (g *BoolGrid) Popcount() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Size returns the grid dimensions.
func (g *BoolGrid) Size() Size { return Size{W: g.W, H: g.H} }
