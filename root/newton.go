package root

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numanalysis/polynomial"
)

const methodNewton = "Newton"

// Newton finds a zero of p starting from guess by Newton–Raphson iteration.
//
// Algorithm:
//  1. d = p'(p_k); d == 0 → ErrSingularDerivative.
//  2. p_{k+1} = p_k − p(p_k)/d; a non-finite step → ErrSingularDerivative.
//  3. Stop when p(p_{k+1}) == 0 or |p(p_{k+1})| < Tolerance.
//  4. After MaxIterations steps → *ConvergenceError (matches ErrConvergence).
//
// Defaults: Tolerance 1e-5, MaxIterations 100.
//
// Complexity: O(MaxIterations · deg p).
func Newton(p polynomial.Evaluator, guess float64, opts ...Option) (float64, error) {
	if p == nil {
		return 0, fmt.Errorf("%s: %w", methodNewton, ErrNilFunction)
	}
	cfg := gather(DefaultOptions(), opts)

	var (
		pk   = guess // current iterate
		next float64 // p_{k+1}
		fx   float64 // p(p_{k+1})
		d    float64 // p'(p_k)
	)
	for k := 1; k <= cfg.MaxIterations; k++ {
		d = p.DerivativeEvaluate(pk)
		if d == 0 {
			return 0, fmt.Errorf("%s: iteration %d at x=%g: %w", methodNewton, k, pk, ErrSingularDerivative)
		}
		next = pk - p.Evaluate(pk)/d
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, fmt.Errorf("%s: iteration %d at x=%g: non-finite step: %w", methodNewton, k, pk, ErrSingularDerivative)
		}

		fx = p.Evaluate(next)
		if fx == 0 || math.Abs(fx) < cfg.Tolerance {
			return next, nil
		}
		pk = next
	}

	return 0, &ConvergenceError{Method: methodNewton, Iterations: cfg.MaxIterations, Last: pk, Residual: fx}
}
