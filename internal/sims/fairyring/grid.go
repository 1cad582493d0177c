package fairyring

import (
	"slices"

	"fungi-ca/internal/geometry"
)

// Grid is a sparse, unbounded map from lattice coordinate to cell state.
// Empty cells are never stored.
type Grid struct {
	cells map[geometry.Point]State
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[geometry.Point]State)}
}

// At returns the state at p, Empty when nothing is stored.
func (g *Grid) At(p geometry.Point) State {
	return g.cells[p]
}

// Set stores s at p. Writing Empty removes the entry.
func (g *Grid) Set(p geometry.Point, s State) {
	if s == Empty {
		delete(g.cells, p)
		return
	}
	g.cells[p] = s
}

// Len returns the number of occupied coordinates.
func (g *Grid) Len() int { return len(g.cells) }

// Has reports whether p holds an explicit entry.
func (g *Grid) Has(p geometry.Point) bool {
	_, ok := g.cells[p]
	return ok
}

// Points returns the occupied coordinates in row-major order.
func (g *Grid) Points() []geometry.Point {
	pts := make([]geometry.Point, 0, len(g.cells))
	for p := range g.cells {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, rowMajor)
	return pts
}

// Collect returns, in row-major order, every coordinate whose state satisfies
// keep.
func (g *Grid) Collect(keep func(State) bool) []geometry.Point {
	var pts []geometry.Point
	for p, s := range g.cells {
		if keep(s) {
			pts = append(pts, p)
		}
	}
	slices.SortFunc(pts, rowMajor)
	return pts
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}
	return n
}

// Active returns every occupied coordinate together with its Moore
// neighbourhood, in row-major order. Coordinates outside this set are Empty
// with no Young neighbour and can never change during a step.
func (g *Grid) Active() []geometry.Point {
	seen := make(map[geometry.Point]struct{}, len(g.cells)*9)
	for p := range g.cells {
		seen[p] = struct{}{}
		for _, off := range geometry.MooreOffsets {
			seen[p.Add(off)] = struct{}{}
		}
	}
	pts := make([]geometry.Point, 0, len(seen))
	for p := range seen {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, rowMajor)
	return pts
}

// Bounds returns the minimal bounding box of occupied coordinates. The second
// result is false for an empty grid.
func (g *Grid) Bounds() (geometry.Rect, bool) {
	var r geometry.Rect
	first := true
	for p := range g.cells {
		if first {
			r = geometry.Rect{Min: p, Max: p}
			first = false
			continue
		}
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r, !first
}

func rowMajor(a, b geometry.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
