package toxin

import (
	"slices"

	"fungi-ca/internal/geometry"
)

// Field is a sparse toxin concentration map. Missing coordinates hold zero.
type Field struct {
	values map[geometry.Point]float64
}

// NewField returns an empty field.
func NewField() *Field {
	return &Field{values: make(map[geometry.Point]float64)}
}

// Set stores v at p. Values <= 0 remove the entry.
func (f *Field) Set(p geometry.Point, v float64) {
	if v <= 0 {
		delete(f.values, p)
		return
	}
	f.values[p] = v
}

// At returns the concentration at p, treating non-positive entries as absent.
func (f *Field) At(p geometry.Point) float64 {
	v := f.values[p]
	if v <= 0 {
		return 0
	}
	return v
}

// Len returns the number of stored entries.
func (f *Field) Len() int { return len(f.values) }

// Mass returns the sum of all positive concentrations.
func (f *Field) Mass() float64 {
	total := 0.0
	for _, v := range f.values {
		if v > 0 {
			total += v
		}
	}
	return total
}

// Points returns the stored coordinates in row-major order.
func (f *Field) Points() []geometry.Point {
	pts := make([]geometry.Point, 0, len(f.values))
	for p := range f.values {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, rowMajor)
	return pts
}

// Each calls fn for every stored entry in row-major order.
func (f *Field) Each(fn func(p geometry.Point, v float64)) {
	for _, p := range f.Points() {
		fn(p, f.values[p])
	}
}

// add accumulates v at p without pruning.
func (f *Field) add(p geometry.Point, v float64) {
	f.values[p] += v
}

func rowMajor(a, b geometry.Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
