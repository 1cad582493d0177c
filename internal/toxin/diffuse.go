package toxin

import (
	"math"

	"fungi-ca/internal/geometry"
)

// EmitterStrength is the source value of a coordinate whose cell releases
// toxin. Emission replaces, rather than adds to, the decayed prior value.
const EmitterStrength = 1.0

// Sources builds the source map for one step. Every coordinate with prior
// toxin either becomes a full-strength emitter (when isEmitter reports true)
// or decays linearly by decay, dropping results that reach zero. Every
// coordinate in emitters is then forced to full strength.
func Sources(prev *Field, emitters []geometry.Point, isEmitter func(geometry.Point) bool, decay float64) *Field {
	src := NewField()
	if prev != nil {
		for p, v := range prev.values {
			if v <= 0 {
				continue
			}
			if isEmitter != nil && isEmitter(p) {
				src.values[p] = EmitterStrength
				continue
			}
			if next := math.Max(v-decay, 0); next > 0 {
				src.values[p] = next
			}
		}
	}
	for _, p := range emitters {
		src.values[p] = EmitterStrength
	}
	return src
}

// Diffuse convolves the sparse source map with k, accumulating every source's
// weighted contribution at its centred kernel offsets. Sources are visited in
// row-major order so the floating-point sums are reproducible.
func Diffuse(src *Field, k Kernel) *Field {
	out := NewField()
	if src == nil || k.IsZero() {
		return out
	}
	r := k.Radius()
	for _, p := range src.Points() {
		v := src.values[p]
		for row := 0; row < k.size; row++ {
			for col := 0; col < k.size; col++ {
				w := k.weights[row*k.size+col]
				if w == 0 {
					continue
				}
				out.add(geometry.Point{X: p.X + col - r, Y: p.Y + row - r}, w*v)
			}
		}
	}
	return out
}

// DiffuseSeparable convolves src with s.Row along X and then with s.Col along
// Y. For any kernel equal to s.Outer() the result matches Diffuse within
// floating-point tolerance.
func DiffuseSeparable(src *Field, s Separable) *Field {
	out := NewField()
	if src == nil || len(s.Row) == 0 {
		return out
	}
	r := len(s.Row) / 2

	rows := NewField()
	for _, p := range src.Points() {
		v := src.values[p]
		for j, w := range s.Row {
			if w == 0 {
				continue
			}
			rows.add(geometry.Point{X: p.X + j - r, Y: p.Y}, w*v)
		}
	}
	for _, p := range rows.Points() {
		v := rows.values[p]
		for i, w := range s.Col {
			if w == 0 {
				continue
			}
			out.add(geometry.Point{X: p.X, Y: p.Y + i - r}, w*v)
		}
	}
	return out
}

// Step runs one full toxin update: source construction followed by diffusion.
func Step(prev *Field, emitters []geometry.Point, isEmitter func(geometry.Point) bool, decay float64, k Kernel) *Field {
	return Diffuse(Sources(prev, emitters, isEmitter, decay), k)
}
