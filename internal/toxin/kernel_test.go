package toxin

import (
	"math"
	"testing"

	errgo "gopkg.in/errgo.v1"
)

func TestNewKernelRejectsInvalidShapes(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{name: "empty", rows: nil},
		{name: "even", rows: [][]float64{{0.25, 0.25}, {0.25, 0.25}}},
		{name: "ragged", rows: [][]float64{{0, 0, 0}, {0, 1}, {0, 0, 0}}},
		{name: "negative", rows: [][]float64{{0, -0.5, 0}, {0, 1.5, 0}, {0, 0, 0}}},
		{name: "unnormalized", rows: [][]float64{{0, 0, 0}, {0, 0.5, 0}, {0, 0, 0}}},
		{name: "nan", rows: [][]float64{{math.NaN()}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewKernel(tc.rows)
			if err == nil {
				t.Fatal("expected an error")
			}
			if errgo.Cause(err) != ErrInvalidKernel {
				t.Fatalf("unexpected cause %v", errgo.Cause(err))
			}
		})
	}
}

func TestNewKernelKeepsWeights(t *testing.T) {
	rows := [][]float64{{0, 0.25, 0}, {0.25, 0, 0.25}, {0, 0.25, 0}}
	k, err := NewKernel(rows)
	if err != nil {
		t.Fatalf("NewKernel: %v", err)
	}
	if k.Size() != 3 || k.Radius() != 1 {
		t.Fatalf("size %d radius %d", k.Size(), k.Radius())
	}
	if got := k.At(1, 2); got != 0.25 {
		t.Fatalf("At(1,2) = %f", got)
	}
	got := k.Rows()
	got[0][1] = 99
	if k.At(0, 1) != 0.25 {
		t.Fatal("Rows must return a copy")
	}
}

func TestGaussianIsNormalizedAndSymmetric(t *testing.T) {
	k, err := Gaussian(5, 1)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	sum := 0.0
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			sum += k.At(r, c)
			if math.Abs(k.At(r, c)-k.At(c, r)) > 1e-15 {
				t.Fatalf("kernel not symmetric at %d,%d", r, c)
			}
			if math.Abs(k.At(r, c)-k.At(4-r, 4-c)) > 1e-15 {
				t.Fatalf("kernel not centred at %d,%d", r, c)
			}
			if k.At(r, c) > k.At(2, 2) {
				t.Fatalf("centre weight is not the maximum")
			}
		}
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("kernel sums to %v", sum)
	}
	if _, err := NewKernel(k.Rows()); err != nil {
		t.Fatalf("gaussian kernel should validate: %v", err)
	}
}

func TestGaussianRejectsBadParameters(t *testing.T) {
	if _, err := Gaussian(4, 1); errgo.Cause(err) != ErrInvalidKernel {
		t.Fatalf("even size: got %v", err)
	}
	if _, err := Gaussian(0, 1); errgo.Cause(err) != ErrInvalidKernel {
		t.Fatalf("zero size: got %v", err)
	}
	if _, err := Gaussian(3, 0); errgo.Cause(err) != ErrInvalidKernel {
		t.Fatalf("zero sigma: got %v", err)
	}
	k, err := Gaussian(1, 0.5)
	if err != nil {
		t.Fatalf("1x1 gaussian: %v", err)
	}
	if k.At(0, 0) != 1 {
		t.Fatalf("1x1 gaussian weight = %f", k.At(0, 0))
	}
}

func TestNewSeparableValidatesBothFactors(t *testing.T) {
	if _, err := NewSeparable([]float64{0.5, 0.5}, []float64{0.5, 0.5}); errgo.Cause(err) != ErrInvalidKernel {
		t.Fatalf("even factors: got %v", err)
	}
	if _, err := NewSeparable([]float64{0.2, 0.6, 0.2}, []float64{1}); errgo.Cause(err) != ErrInvalidKernel {
		t.Fatalf("length mismatch: got %v", err)
	}
	if _, err := NewSeparable([]float64{0.2, 0.6, 0.2}, []float64{0.2, 0.2, 0.2}); errgo.Cause(err) != ErrInvalidKernel {
		t.Fatalf("unnormalized column: got %v", err)
	}
	s, err := NewSeparable([]float64{0.2, 0.5, 0.3}, []float64{0, 0.25, 0.75})
	if err != nil {
		t.Fatalf("NewSeparable: %v", err)
	}
	k := s.Outer()
	if got, want := k.At(2, 0), 0.75*0.2; math.Abs(got-want) > 1e-15 {
		t.Fatalf("Outer At(2,0) = %v, want %v", got, want)
	}
	if k.At(0, 1) != 0 {
		t.Fatalf("Outer At(0,1) = %v, want 0", k.At(0, 1))
	}
}
