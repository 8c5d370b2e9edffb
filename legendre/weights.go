package legendre

import (
	"fmt"

	"github.com/katalvlaran/numanalysis/quad"
)

// Weights returns wᵢ = ∫₋₁¹ Lᵢ(x) dx for every root, where
//
//	Lᵢ(x) = Π_{j≠i} (x − rⱼ)/(rᵢ − rⱼ)
//
// integrated with the given composite rule over `subintervals` panels.
// Lᵢ is evaluated in product form; it is never expanded into coefficients.
// A nil integrate falls back to quad.Trapezoid.
//
// Errors: ErrIndistinctRoots when two roots coincide; any integrator error.
func Weights(roots []float64, integrate quad.Integrator, subintervals int) ([]float64, error) {
	if integrate == nil {
		integrate = quad.Trapezoid
	}

	weights := make([]float64, len(roots))
	for i, ri := range roots {
		for j, rj := range roots {
			if j != i && ri == rj {
				return nil, fmt.Errorf("roots[%d] = roots[%d] = %g: %w", i, j, ri, ErrIndistinctRoots)
			}
		}

		w, err := integrate(basis(roots, i), -1, 1, subintervals)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %w", i, err)
		}
		weights[i] = w
	}

	return weights, nil
}

// basis returns Lᵢ as a closure over the roots.
func basis(roots []float64, i int) func(float64) float64 {
	ri := roots[i]
	return func(x float64) float64 {
		v := 1.0
		for j, rj := range roots {
			if j != i {
				v *= (x - rj) / (ri - rj)
			}
		}
		return v
	}
}

// checkRule verifies the invariants every Gauss-Legendre rule satisfies:
// adjacent roots farther apart than tol, strictly positive weights and
// Σwᵢ within WeightSumTolerance of 2. roots must be sorted ascending.
func checkRule(roots, weights []float64, tol float64) error {
	for i := 1; i < len(roots); i++ {
		if gap := roots[i] - roots[i-1]; !(gap > tol) {
			return fmt.Errorf("roots %d and %d are %g apart (tolerance %g): %w", i-1, i, gap, tol, ErrIndistinctRoots)
		}
	}
	sum := 0.0
	for i, w := range weights {
		if !(w > 0) {
			return fmt.Errorf("weight %d = %g at root %g: %w", i, w, roots[i], ErrInaccurateRule)
		}
		sum += w
	}
	if d := sum - 2; !(d <= WeightSumTolerance && d >= -WeightSumTolerance) {
		return fmt.Errorf("weight sum %g: %w", sum, ErrInaccurateRule)
	}

	return nil
}
