package core

// Grid stores a 2D grid of integer cell values in row-major order.
type Grid struct {
	W, H int
	data []int
}

// NewGrid allocates a zeroed grid with the given dimensions. Non-positive
// dimensions yield an empty grid.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, data: make([]int, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int { return g.data }

// Index returns the linear slice index for row r and column c.
func (g *Grid) Index(r, c int) int { return r*g.W + c }

// At returns the value stored at row r, column c after toroidal wrapping.
func (g *Grid) At(r, c int) int {
	r, c = g.Wrap(r, c)
	return g.data[g.Index(r, c)]
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.H + g.H) % g.H
	c = (c%g.W + g.W) % g.W
	return r, c
}

// VonNeumann returns the four edge-adjacent neighbor indices of (r, c) on the
// torus in the order down, up, right, left. On small grids entries may repeat
// or point back at (r, c) itself.
func (g *Grid) VonNeumann(r, c int) [4]int {
	down := (r + 1) % g.H
	up := (r - 1 + g.H) % g.H
	right := (c + 1) % g.W
	left := (c - 1 + g.W) % g.W
	return [4]int{
		g.Index(down, c),
		g.Index(up, c),
		g.Index(r, right),
		g.Index(r, left),
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]int, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
