package root

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numanalysis/polynomial"
)

const methodFixedPoint = "FixedPoint"

// Func adapts an Evaluator to a plain scalar function, e.g. to feed a
// polynomial g into FixedPoint.
func Func(p polynomial.Evaluator) func(float64) float64 {
	return p.Evaluate
}

// FixedPoint solves p = g(p) by iterating p_{k+1} = g(p_k) from p0 until
// |p_{k+1} − p_k| < Tolerance.
//
// Defaults: Tolerance 1e-7, MaxIterations 100.
func FixedPoint(g func(float64) float64, p0 float64, opts ...Option) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodFixedPoint, ErrNilFunction)
	}
	cfg := gather(Options{Tolerance: DefaultBracketTolerance, MaxIterations: DefaultMaxIterations}, opts)

	p := g(p0)
	for k := 1; k <= cfg.MaxIterations; k++ {
		if math.Abs(p-p0) < cfg.Tolerance {
			return p, nil
		}
		p0, p = p, g(p)
	}

	return 0, &ConvergenceError{Method: methodFixedPoint, Iterations: cfg.MaxIterations, Last: p, Residual: math.Abs(p - p0)}
}
