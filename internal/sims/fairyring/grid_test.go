package fairyring

import (
	"slices"
	"testing"

	"fungi-ca/internal/geometry"
)

func TestGridPrunesEmpty(t *testing.T) {
	g := NewGrid()
	p := geometry.Pt(-3, 7)
	g.Set(p, Young)
	if g.At(p) != Young || g.Len() != 1 {
		t.Fatalf("expected Young stored, got %v (len %d)", g.At(p), g.Len())
	}
	g.Set(p, Empty)
	if g.Len() != 0 || g.Has(p) {
		t.Fatal("writing Empty must remove the entry")
	}
	if g.At(geometry.Pt(1000, -1000)) != Empty {
		t.Fatal("missing coordinates must read as Empty")
	}
}

func TestGridActiveCoversMooreNeighbourhood(t *testing.T) {
	g := NewGrid()
	g.Set(geometry.Pt(0, 0), Spore)
	g.Set(geometry.Pt(5, 5), Inert)

	active := g.Active()
	if len(active) != 18 {
		t.Fatalf("active set size = %d, want 18", len(active))
	}
	if !slices.IsSortedFunc(active, rowMajor) {
		t.Fatal("active set must be row-major ordered")
	}
	if active[0] != geometry.Pt(-1, -1) {
		t.Fatalf("first active = %v, want (-1,-1)", active[0])
	}
	for _, p := range []geometry.Point{{X: 1, Y: 1}, {X: 4, Y: 6}, {X: 6, Y: 4}} {
		if _, ok := slices.BinarySearchFunc(active, p, rowMajor); !ok {
			t.Fatalf("active set missing %v", p)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid()
	if _, ok := g.Bounds(); ok {
		t.Fatal("empty grid must report no bounds")
	}
	g.Set(geometry.Pt(2, -1), Spore)
	g.Set(geometry.Pt(-4, 3), Older)
	r, ok := g.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := geometry.Rect{Min: geometry.Pt(-4, -1), Max: geometry.Pt(2, 3)}
	if r != want {
		t.Fatalf("bounds = %+v, want %+v", r, want)
	}
}

func TestGridCollectFruiting(t *testing.T) {
	g := NewGrid()
	g.Set(geometry.Pt(1, 0), Mushroom)
	g.Set(geometry.Pt(0, 0), Older)
	g.Set(geometry.Pt(0, 1), Maturing)
	got := g.Collect(State.Fruiting)
	want := []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	if !slices.Equal(got, want) {
		t.Fatalf("fruiting = %v, want %v", got, want)
	}
}

func TestStateClassification(t *testing.T) {
	for s := Empty; s <= Inert; s++ {
		wantToxin := s == Maturing || s == Older || s == Decaying
		if s.ReleasesToxin() != wantToxin {
			t.Fatalf("%v ReleasesToxin = %v", s, s.ReleasesToxin())
		}
		if !s.Valid() {
			t.Fatalf("%v must be valid", s)
		}
		parsed, err := ParseState(s.String())
		if err != nil || parsed != s {
			t.Fatalf("ParseState(%q) = %v, %v", s.String(), parsed, err)
		}
	}
	if State(10).Valid() {
		t.Fatal("state 10 must be invalid")
	}
}
