package root

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numanalysis/polynomial"
)

const methodBisection = "Bisection"

// Bisection finds a zero of p inside [a, b], which must bracket a sign
// change (f(a)·f(b) < 0, else ErrInvalidBracket).
//
// The orientation of the bracket is decided once from sign(f(a)); the
// function itself is never rewritten. A midpoint with f(mid) == 0 or
// |f(mid)| < Tolerance is returned immediately.
//
// Defaults: Tolerance 1e-7, MaxIterations 100.
//
// Complexity: O(MaxIterations · deg p); the bracket halves every step.
func Bisection(p polynomial.Evaluator, a, b float64, opts ...Option) (float64, error) {
	if p == nil {
		return 0, fmt.Errorf("%s: %w", methodBisection, ErrNilFunction)
	}
	cfg := gather(Options{Tolerance: DefaultBracketTolerance, MaxIterations: DefaultMaxIterations}, opts)

	fa, fb := p.Evaluate(a), p.Evaluate(b)
	if !(fa*fb < 0) {
		return 0, fmt.Errorf("%s: f(%g)=%g, f(%g)=%g: %w", methodBisection, a, fa, b, fb, ErrInvalidBracket)
	}

	// rising: f(a) < 0 < f(b); otherwise the bracket descends.
	rising := fa < 0

	var mid, fm float64
	for k := 1; k <= cfg.MaxIterations; k++ {
		mid = (a + b) / 2
		fm = p.Evaluate(mid)
		if fm == 0 || math.Abs(fm) < cfg.Tolerance {
			return mid, nil
		}
		if (fm > 0) == rising {
			b = mid
		} else {
			a = mid
		}
	}

	return 0, &ConvergenceError{Method: methodBisection, Iterations: cfg.MaxIterations, Last: mid, Residual: fm}
}
