package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. A simulation owns exactly one RNG and threads it through every
// stochastic trial, so a seed fully determines a run.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance draws once and reports whether the draw fell below p. It always
// consumes a draw, even for p <= 0 or p >= 1, so the draw sequence does not
// depend on parameter values.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// IntN returns a uniform value in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
