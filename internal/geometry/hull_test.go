package geometry

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvexHullDropsInteriorAndCollinearPoints(t *testing.T) {
	pts := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}, {1, 0}, {0, 1}}
	got := ConvexHull(pts)
	want := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hull mismatch (-want +got):\n%s", diff)
	}
}

func TestConvexHullDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		want []Point
	}{
		{name: "empty", in: nil, want: []Point{}},
		{name: "single", in: []Point{{3, 4}}, want: []Point{{3, 4}}},
		{name: "duplicates", in: []Point{{1, 1}, {1, 1}, {1, 1}}, want: []Point{{1, 1}}},
		{name: "pair", in: []Point{{5, 0}, {-1, 2}}, want: []Point{{-1, 2}, {5, 0}}},
		{name: "collinear", in: []Point{{2, 2}, {0, 0}, {3, 3}, {1, 1}}, want: []Point{{0, 0}, {3, 3}}},
		{name: "vertical", in: []Point{{0, 4}, {0, -1}, {0, 2}}, want: []Point{{0, -1}, {0, 4}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvexHull(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("hull mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvexHullIsCounterClockwise(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	pts := randomPoints(rng, 200, 30)
	hull := ConvexHull(pts)
	if len(hull) < 3 {
		t.Fatalf("expected a proper polygon, got %v", hull)
	}
	for i := range hull {
		a, b, c := hull[i], hull[(i+1)%len(hull)], hull[(i+2)%len(hull)]
		if Cross(a, b, c) <= 0 {
			t.Fatalf("hull turn at %v,%v,%v is not a strict left turn", a, b, c)
		}
	}
	for _, p := range pts {
		for i := range hull {
			if Cross(hull[i], hull[(i+1)%len(hull)], p) < 0 {
				t.Fatalf("point %v lies outside hull edge %v-%v", p, hull[i], hull[(i+1)%len(hull)])
			}
		}
	}
}

func TestConvexHullIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for trial := 0; trial < 25; trial++ {
		pts := randomPoints(rng, 5+trial*4, 12)
		hull := ConvexHull(pts)
		again := ConvexHull(hull)
		if !sameCycle(hull, again) {
			t.Fatalf("trial %d: hull of hull differs: %v vs %v", trial, hull, again)
		}
	}
}

func TestAreaDegenerateIsZero(t *testing.T) {
	for _, poly := range [][]Point{nil, {{1, 1}}, {{0, 0}, {4, 9}}} {
		if got := Area(poly); got != 0 {
			t.Fatalf("Area(%v) = %f, want 0", poly, got)
		}
	}
}

func TestAreaIgnoresWinding(t *testing.T) {
	ccw := []Point{{0, 0}, {4, 0}, {0, 3}}
	cw := []Point{{0, 0}, {0, 3}, {4, 0}}
	if got := Area(ccw); got != 6 {
		t.Fatalf("ccw area = %f, want 6", got)
	}
	if got := Area(cw); got != 6 {
		t.Fatalf("cw area = %f, want 6", got)
	}
	hull := ConvexHull([]Point{{-2, -2}, {2, -2}, {2, 2}, {-2, 2}, {0, 0}})
	if got := Area(hull); got != 16 {
		t.Fatalf("square hull area = %f, want 16", got)
	}
}

func TestPointOperations(t *testing.T) {
	p := Pt(3, -4)
	if got := p.Norm(); got != 5 {
		t.Fatalf("Norm = %f, want 5", got)
	}
	if got := p.Manhattan(Pt(-1, 0)); got != 8 {
		t.Fatalf("Manhattan = %d, want 8", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, -5) {
		t.Fatalf("Sub = %v", got)
	}
	if got := p.Add(Pt(1, 1)); got != Pt(4, -3) {
		t.Fatalf("Add = %v", got)
	}
	diag := MooreOffsets[0].Norm()
	if math.Abs(diag-math.Sqrt2) > 1e-12 {
		t.Fatalf("diagonal offset norm = %f", diag)
	}
}

func randomPoints(rng *rand.Rand, n, span int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.IntN(2*span+1) - span, Y: rng.IntN(2*span+1) - span}
	}
	return pts
}

// sameCycle reports whether b is a rotation of a.
func sameCycle(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	start := slices.Index(b, a[0])
	if start < 0 {
		return false
	}
	for i := range a {
		if a[i] != b[(start+i)%len(b)] {
			return false
		}
	}
	return true
}

func TestRectGrow(t *testing.T) {
	r := Rect{Min: Pt(0, -1), Max: Pt(3, 0)}
	got := r.Grow(2)
	want := Rect{Min: Pt(-2, -3), Max: Pt(5, 2)}
	if got != want {
		t.Fatalf("Grow(2) = %+v, want %+v", got, want)
	}
	if got.Dx() != 8 || got.Dy() != 6 {
		t.Fatalf("grown size %dx%d, want 8x6", got.Dx(), got.Dy())
	}
	if back := got.Grow(-2); back != r {
		t.Fatalf("Grow(-2) = %+v, want %+v", back, r)
	}
	if !got.Contains(Pt(-2, 2)) || got.Contains(Pt(6, 0)) {
		t.Fatal("Contains disagrees with the grown bounds")
	}
}
