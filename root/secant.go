package root

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numanalysis/polynomial"
)

const methodSecant = "Secant"

// Secant finds a zero of p from two seeds p0 and p1 without using p'.
// Each step replaces the tangent of Newton's method by the chord through
// the last two iterates:
//
//	p = p₁ − f(p₁)·(p₁ − p₀)/(f(p₁) − f(p₀))
//
// It stops when f(p) == 0 or |p − p₀| < Tolerance, p₀ being the older of
// the two iterates the chord was drawn through. A flat chord
// (f(p₁) == f(p₀)) returns ErrSingularDerivative.
//
// Defaults: Tolerance 1e-5, MaxIterations 100 (both seeds count as iterations).
func Secant(p polynomial.Evaluator, p0, p1 float64, opts ...Option) (float64, error) {
	if p == nil {
		return 0, fmt.Errorf("%s: %w", methodSecant, ErrNilFunction)
	}
	cfg := gather(DefaultOptions(), opts)

	f0 := p.Evaluate(p0)
	step := math.Inf(1)
	for k := 2; k <= cfg.MaxIterations; k++ {
		f1 := p.Evaluate(p1)
		if f1 == f0 {
			return 0, fmt.Errorf("%s: iteration %d: flat secant at f=%g: %w", methodSecant, k, f1, ErrSingularDerivative)
		}
		next := p1 - f1*(p1-p0)/(f1-f0)
		step = math.Abs(next - p0)
		if p.Evaluate(next) == 0 || step < cfg.Tolerance {
			return next, nil
		}
		p0, f0 = p1, f1
		p1 = next
	}

	return 0, &ConvergenceError{Method: methodSecant, Iterations: cfg.MaxIterations, Last: p1, Residual: step}
}
