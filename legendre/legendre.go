package legendre

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/numanalysis/polynomial"
	"github.com/katalvlaran/numanalysis/quad"
	"github.com/katalvlaran/numanalysis/root"
)

// Legendre is a fully computed Gauss-Legendre rule of one degree.
// It is read-only after New returns and safe for concurrent use.
type Legendre struct {
	degree  int
	poly    polynomial.Polynomial
	roots   []float64
	weights []float64
	rule    quad.Rule
}

// Polynomial returns Pₙ by Bonnet's recurrence, built bottom-up from
// P₀ = 1 and P₁ = x. Panics if n < 0.
func Polynomial(n int) polynomial.Polynomial {
	if n < 0 {
		panic(fmt.Sprintf("legendre: Polynomial: negative degree %d", n))
	}
	prev, cur := polynomial.Constant(1), polynomial.Identity()
	if n == 0 {
		return prev
	}
	for k := 2; k <= n; k++ {
		// k·Pₖ = (2k−1)·x·Pₖ₋₁ − (k−1)·Pₖ₋₂
		next := cur.MulLinear(0).Scale(float64(2*k - 1)).
			Sub(prev.Scale(float64(k - 1))).
			Scale(1 / float64(k))
		prev, cur = cur, next
	}

	return cur
}

// New computes the degree-n polynomial, its roots and weights.
//
// Errors:
//   - ErrInvalidDegree when n < MinDegree.
//   - root.ErrConvergence / root.ErrSingularDerivative from a root refinement,
//     wrapped with the root index.
//   - ErrIndistinctRoots when two refined roots lie within the tolerance.
//   - ErrInaccurateRule when a weight is not positive or Σwᵢ misses 2 by
//     more than WeightSumTolerance; raise WithSubintervals for large n.
//   - quad errors from the weight stage.
func New(n int, opts ...Option) (*Legendre, error) {
	if n < MinDegree {
		return nil, fmt.Errorf("legendre: n=%d: %w", n, ErrInvalidDegree)
	}
	cfg := gather(opts)

	roots, err := findRoots(n, cfg)
	if err != nil {
		return nil, err
	}
	weights, err := Weights(roots, cfg.Integrator, cfg.Subintervals)
	if err != nil {
		return nil, fmt.Errorf("legendre: n=%d: %w", n, err)
	}
	if err = checkRule(roots, weights, cfg.Tolerance); err != nil {
		return nil, fmt.Errorf("legendre: n=%d: %w", n, err)
	}
	rule, err := quad.NewRule(roots, weights)
	if err != nil {
		return nil, fmt.Errorf("legendre: n=%d: %w", n, err)
	}

	return &Legendre{degree: n, poly: Polynomial(n), roots: roots, weights: weights, rule: rule}, nil
}

// findRoots refines the positive half of the roots and mirrors them.
// Newton runs on the recurrence, not on the expanded polynomial.
func findRoots(n int, cfg Options) ([]float64, error) {
	p := recurrence(n)
	half := n / 2
	roots := make([]float64, 0, n)
	ropts := []root.Option{root.WithTolerance(cfg.Tolerance), root.WithMaxIterations(cfg.MaxIterations)}

	for i := 1; i <= half; i++ {
		seed := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))
		r, err := root.Newton(p, seed, ropts...)
		if err != nil {
			return nil, fmt.Errorf("legendre: n=%d root %d (seed %g): %w", n, i, seed, err)
		}
		roots = append(roots, r, -r)
	}
	if n%2 == 1 {
		roots = append(roots, 0)
	}
	sort.Float64s(roots)

	return roots, nil
}

// Degree returns n.
func (l *Legendre) Degree() int { return l.degree }

// Polynomial returns Pₙ.
func (l *Legendre) Polynomial() polynomial.Polynomial { return l.poly }

// Roots returns a copy of the ascending roots.
func (l *Legendre) Roots() []float64 { return append([]float64(nil), l.roots...) }

// Weights returns a copy of the weights aligned with Roots.
func (l *Legendre) Weights() []float64 { return append([]float64(nil), l.weights...) }

// Rule returns the (root, weight) rule.
func (l *Legendre) Rule() quad.Rule { return l.rule }

// RootsAndWeights returns the ordered root→weight pairs.
func (l *Legendre) RootsAndWeights() []quad.Node { return l.rule.Pairs() }
