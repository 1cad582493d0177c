package toxin

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	errgo "gopkg.in/errgo.v1"
)

// ErrInvalidKernel is the cause of every kernel validation failure.
var ErrInvalidKernel = errgo.New("invalid diffusion kernel")

// sumTolerance bounds how far a kernel's weights may sum away from 1.
const sumTolerance = 1e-9

// Kernel is a square, odd-sided, normalized diffusion weight matrix. Entry
// (row, col) moves mass by (col-Radius, row-Radius).
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel validates rows and returns the kernel they describe. Weights are
// never renormalized: a kernel that does not sum to 1 is rejected.
func NewKernel(rows [][]float64) (Kernel, error) {
	size := len(rows)
	if size == 0 {
		return Kernel{}, errgo.WithCausef(nil, ErrInvalidKernel, "kernel has no rows")
	}
	if size%2 == 0 {
		return Kernel{}, errgo.WithCausef(nil, ErrInvalidKernel, "kernel side %d is not odd", size)
	}
	weights := make([]float64, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return Kernel{}, errgo.WithCausef(nil, ErrInvalidKernel, "kernel row %d has %d columns, want %d", i, len(row), size)
		}
		weights = append(weights, row...)
	}
	if err := checkWeights(weights); err != nil {
		return Kernel{}, err
	}
	return Kernel{size: size, weights: weights}, nil
}

// Identity returns the 1×1 kernel that leaves a field unchanged.
func Identity() Kernel {
	return Kernel{size: 1, weights: []float64{1}}
}

// Gaussian returns a size×size Gaussian kernel with standard deviation sigma,
// normalized to sum to 1.
func Gaussian(size int, sigma float64) (Kernel, error) {
	sep, err := GaussianSeparable(size, sigma)
	if err != nil {
		return Kernel{}, err
	}
	return sep.Outer(), nil
}

// Size returns the side length.
func (k Kernel) Size() int { return k.size }

// Radius returns the offset of the centre cell.
func (k Kernel) Radius() int { return k.size / 2 }

// At returns the weight at (row, col).
func (k Kernel) At(row, col int) float64 { return k.weights[row*k.size+col] }

// IsZero reports whether k is the zero value (no weights at all).
func (k Kernel) IsZero() bool { return k.size == 0 }

// Rows returns a copy of the weights as a square matrix.
func (k Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.size)
	for i := range rows {
		rows[i] = append([]float64(nil), k.weights[i*k.size:(i+1)*k.size]...)
	}
	return rows
}

// Separable is a kernel expressed as the outer product of a column (vertical)
// and a row (horizontal) 1-D kernel.
type Separable struct {
	Row []float64
	Col []float64
}

// NewSeparable validates both 1-D kernels. They must share an odd length and
// each must be non-negative and sum to 1.
func NewSeparable(row, col []float64) (Separable, error) {
	if len(row) == 0 || len(row)%2 == 0 {
		return Separable{}, errgo.WithCausef(nil, ErrInvalidKernel, "row kernel length %d is not a positive odd number", len(row))
	}
	if len(col) != len(row) {
		return Separable{}, errgo.WithCausef(nil, ErrInvalidKernel, "column kernel length %d differs from row length %d", len(col), len(row))
	}
	if err := checkWeights(row); err != nil {
		return Separable{}, errgo.NoteMask(err, "row kernel", errgo.Any)
	}
	if err := checkWeights(col); err != nil {
		return Separable{}, errgo.NoteMask(err, "column kernel", errgo.Any)
	}
	return Separable{
		Row: append([]float64(nil), row...),
		Col: append([]float64(nil), col...),
	}, nil
}

// GaussianSeparable returns the 1-D factors of Gaussian(size, sigma).
func GaussianSeparable(size int, sigma float64) (Separable, error) {
	if size <= 0 || size%2 == 0 {
		return Separable{}, errgo.WithCausef(nil, ErrInvalidKernel, "gaussian size %d is not a positive odd number", size)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return Separable{}, errgo.WithCausef(nil, ErrInvalidKernel, "gaussian sigma %v must be positive", sigma)
	}
	half := float64(size-1) / 2
	gauss := make([]float64, size)
	if size == 1 {
		gauss[0] = 0
	} else {
		floats.Span(gauss, -half, half)
	}
	for i, x := range gauss {
		gauss[i] = math.Exp(-0.5 * x * x / (sigma * sigma))
	}
	floats.Scale(1/floats.Sum(gauss), gauss)
	return Separable{Row: gauss, Col: append([]float64(nil), gauss...)}, nil
}

// Size returns the common length of the 1-D factors.
func (s Separable) Size() int { return len(s.Row) }

// Outer expands s into the equivalent 2-D kernel.
func (s Separable) Outer() Kernel {
	n := len(s.Row)
	var m mat.Dense
	m.Outer(1, mat.NewVecDense(n, append([]float64(nil), s.Col...)), mat.NewVecDense(n, append([]float64(nil), s.Row...)))
	weights := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		weights = append(weights, m.RawRowView(i)...)
	}
	return Kernel{size: n, weights: weights}
}

func checkWeights(weights []float64) error {
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return errgo.WithCausef(nil, ErrInvalidKernel, "kernel weight %v is not finite", w)
		}
	}
	if min := floats.Min(weights); min < 0 {
		return errgo.WithCausef(nil, ErrInvalidKernel, "kernel weight %v is negative", min)
	}
	if sum := floats.Sum(weights); math.Abs(sum-1) > sumTolerance {
		return errgo.WithCausef(nil, ErrInvalidKernel, "kernel weights sum to %v, want 1", sum)
	}
	return nil
}
