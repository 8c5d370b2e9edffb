package interpolate

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/numanalysis/polynomial"
)

// Interpolator is an interpolating polynomial built from tabulated data.
type Interpolator interface {
	// At evaluates the interpolant at x.
	At(x float64) float64

	// Polynomial returns the interpolant in coefficient form.
	Polynomial() polynomial.Polynomial
}

var (
	_ Interpolator = (*Lagrange)(nil)
	_ Interpolator = (*Neville)(nil)
	_ Interpolator = (*NewtonDivided)(nil)
	_ Interpolator = (*Hermite)(nil)
)

// table is the validated, copied data shared by every method.
type table struct {
	xs, ys []float64
}

// newTable validates (xs, ys) and copies them.
func newTable(xs, ys []float64) (table, error) {
	if len(xs) == 0 {
		return table{}, ErrNoPoints
	}
	if len(xs) != len(ys) {
		return table{}, fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if err := finite("y", ys); err != nil {
		return table{}, err
	}
	if err := distinct(xs); err != nil {
		return table{}, err
	}

	return table{xs: slices.Clone(xs), ys: slices.Clone(ys)}, nil
}

// distinct checks finiteness and uniqueness of the abscissae.
func distinct(xs []float64) error {
	if err := finite("x", xs); err != nil {
		return err
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return fmt.Errorf("x=%g repeated: %w", sorted[i], ErrIndistinctPoints)
		}
	}
	return nil
}

func finite(name string, vs []float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s[%d]=%v: %w", name, i, v, ErrNonFinite)
		}
	}
	return nil
}

// Points returns copies of the abscissae and ordinates.
func (t table) Points() ([]float64, []float64) {
	return slices.Clone(t.xs), slices.Clone(t.ys)
}
