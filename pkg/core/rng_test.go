package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestChanceAlwaysDraws(t *testing.T) {
	a, b := NewRNG(3), NewRNG(3)
	if a.Chance(0) {
		t.Fatal("Chance(0) must be false")
	}
	if !a.Chance(1) {
		t.Fatal("Chance(1) must be true")
	}
	b.Float64()
	b.Float64()
	if a.Float64() != b.Float64() {
		t.Fatal("Chance must consume exactly one draw")
	}
}

func TestIntNBounds(t *testing.T) {
	r := NewRNG(1)
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) must be 0")
	}
	for i := 0; i < 50; i++ {
		if v := r.IntN(3); v < 0 || v >= 3 {
			t.Fatalf("IntN(3) = %d", v)
		}
	}
}
