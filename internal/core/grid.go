package core

// ByteGrid is a dense row-major raster of byte values covering a window of an
// unbounded lattice. (X0, Y0) is the lattice coordinate of the first cell.
type ByteGrid struct {
	X0, Y0 int
	W, H   int
	data   []uint8
}

// NewByteGrid allocates a w*h raster whose top-left cell sits at (x0, y0).
func NewByteGrid(x0, y0, w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{X0: x0, Y0: y0, W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the slice index for lattice coordinates (x, y), or -1 when the
// point lies outside the raster.
func (g *ByteGrid) Index(x, y int) int {
	cx, cy := x-g.X0, y-g.Y0
	if cx < 0 || cy < 0 || cx >= g.W || cy >= g.H {
		return -1
	}
	return cy*g.W + cx
}

// At returns the value at lattice coordinates (x, y); zero outside the raster.
func (g *ByteGrid) At(x, y int) uint8 {
	if i := g.Index(x, y); i >= 0 {
		return g.data[i]
	}
	return 0
}

// Set writes v at lattice coordinates (x, y) and reports whether it landed
// inside the raster.
func (g *ByteGrid) Set(x, y int, v uint8) bool {
	i := g.Index(x, y)
	if i < 0 {
		return false
	}
	g.data[i] = v
	return true
}

// Clear fills the raster with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// FloatGrid is the float64 counterpart of ByteGrid, used for concentration
// fields.
type FloatGrid struct {
	X0, Y0 int
	W, H   int
	data   []float64
}

// NewFloatGrid allocates a w*h float raster whose top-left cell sits at (x0, y0).
func NewFloatGrid(x0, y0, w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{X0: x0, Y0: y0, W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice.
func (g *FloatGrid) Cells() []float64 { return g.data }

// At returns the value at lattice coordinates (x, y); zero outside the raster.
func (g *FloatGrid) At(x, y int) float64 {
	cx, cy := x-g.X0, y-g.Y0
	if cx < 0 || cy < 0 || cx >= g.W || cy >= g.H {
		return 0
	}
	return g.data[cy*g.W+cx]
}

// Set writes v at lattice coordinates (x, y) and reports whether it landed
// inside the raster.
func (g *FloatGrid) Set(x, y int, v float64) bool {
	cx, cy := x-g.X0, y-g.Y0
	if cx < 0 || cy < 0 || cx >= g.W || cy >= g.H {
		return false
	}
	g.data[cy*g.W+cx] = v
	return true
}
