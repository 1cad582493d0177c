package geometry

import "math"

// Point is an integer lattice coordinate. X is the column and Y the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Norm returns the Euclidean length of p seen as a vector.
func (p Point) Norm() float64 { return math.Hypot(float64(p.X), float64(p.Y)) }

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int { return abs(p.X-q.X) + abs(p.Y-q.Y) }

// MooreOffsets lists the eight neighbour displacements in the fixed order used
// for neighbour iteration everywhere in the simulation.
var MooreOffsets = [8]Point{
	{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1},
	{X: 0, Y: 1}, {X: 0, Y: -1},
	{X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// Rect is an inclusive integer bounding box.
type Rect struct {
	Min, Max Point
}

// Dx returns the number of columns covered by r.
func (r Rect) Dx() int { return r.Max.X - r.Min.X + 1 }

// Dy returns the number of rows covered by r.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y + 1 }

// Grow returns r extended by n cells on every side. Negative n shrinks it.
func (r Rect) Grow(n int) Rect {
	return Rect{
		Min: Point{X: r.Min.X - n, Y: r.Min.Y - n},
		Max: Point{X: r.Max.X + n, Y: r.Max.Y + n},
	}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
