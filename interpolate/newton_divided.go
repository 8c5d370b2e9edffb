package interpolate

import (
	"slices"

	"github.com/katalvlaran/numanalysis/polynomial"
)

// NewtonDivided holds the Newton form
//
//	P(x) = a₀ + a₁(x − x₀) + a₂(x − x₀)(x − x₁) + …
//
// with aₖ = f[x₀, …, xₖ] computed once at construction.
type NewtonDivided struct {
	table
	coef []float64
}

// NewNewtonDivided validates the data and builds the divided-difference
// diagonal in O(n²).
func NewNewtonDivided(xs, ys []float64) (*NewtonDivided, error) {
	t, err := newTable(xs, ys)
	if err != nil {
		return nil, err
	}
	return &NewtonDivided{table: t, coef: dividedDifferences(t.xs, t.ys)}, nil
}

// dividedDifferences overwrites one column in place; entry k ends up as
// f[x₀, …, xₖ].
func dividedDifferences(xs, ys []float64) []float64 {
	f := slices.Clone(ys)
	for j := 1; j < len(f); j++ {
		for i := len(f) - 1; i >= j; i-- {
			f[i] = (f[i] - f[i-1]) / (xs[i] - xs[i-j])
		}
	}
	return f
}

// Coefficients returns a copy of the Newton coefficients a₀ … aₙ₋₁.
func (nd *NewtonDivided) Coefficients() []float64 { return slices.Clone(nd.coef) }

// At evaluates the nested form in O(n).
func (nd *NewtonDivided) At(x float64) float64 {
	n := len(nd.coef) - 1
	p := nd.coef[n]
	for k := n - 1; k >= 0; k-- {
		p = nd.coef[k] + (x-nd.xs[k])*p
	}
	return p
}

// Polynomial expands the nested form with MulLinear.
func (nd *NewtonDivided) Polynomial() polynomial.Polynomial {
	return nested(nd.coef, nd.xs)
}

// nested expands c[n] ∘ (x − z[n−1]) + c[n−1] … down to c[0].
func nested(c, z []float64) polynomial.Polynomial {
	n := len(c) - 1
	p := polynomial.Constant(c[n])
	for k := n - 1; k >= 0; k-- {
		p = p.MulLinear(z[k]).Add(polynomial.Constant(c[k]))
	}
	return p.Trim()
}
