package core

// DoubleBuffer stores two equally sized byte grids in row-major order. One of
// them is current, the other is scratch for the generation being computed.
type DoubleBuffer struct {
	W, H int
	bufs [2][]uint8
	cur  int
}

// NewDoubleBuffer allocates an all-dead buffer pair with the given dimensions.
func NewDoubleBuffer(w, h int) *DoubleBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	n := Size{W: w, H: h}.Cells()
	return &DoubleBuffer{
		W:    w,
		H:    h,
		bufs: [2][]uint8{make([]uint8, n), make([]uint8, n)},
	}
}

// Size returns the grid dimensions.
func (g *DoubleBuffer) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the current buffer so callers can read/write values directly.
func (g *DoubleBuffer) Cells() []uint8 { return g.bufs[g.cur] }

// Next exposes the scratch buffer.
func (g *DoubleBuffer) Next() []uint8 { return g.bufs[1-g.cur] }

// Swap exchanges the roles of the two buffers without copying.
func (g *DoubleBuffer) Swap() { g.cur = 1 - g.cur }

// Index returns the linear slice index for coordinates (x, y).
func (g *DoubleBuffer) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (g *DoubleBuffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Reset sets every cell in both buffers to dead.
func (g *DoubleBuffer) Reset() {
	clear(g.bufs[0])
	clear(g.bufs[1])
}
