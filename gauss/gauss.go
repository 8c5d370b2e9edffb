package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numanalysis/legendre"
	"github.com/katalvlaran/numanalysis/quad"
)

// Quadrature binds one rule to an integrand and its bounds.
// It is immutable and safe for concurrent use if f is.
type Quadrature struct {
	f     func(float64) float64
	a, b  float64
	rule  quad.Rule
	nodes []float64
	wts   []float64
}

// Option configures New.
type Option func(*config)

type config struct {
	cache *legendre.Cache
	rule  *quad.Rule
}

// WithCache resolves the rule from c instead of legendre.Shared().
func WithCache(c *legendre.Cache) Option {
	if c == nil {
		panic(panicCacheNil)
	}
	return func(cfg *config) { cfg.cache = c }
}

// WithRule uses r as is; degree is then ignored.
func WithRule(r quad.Rule) Option {
	if r.Len() == 0 {
		panic(panicRuleEmpty)
	}
	return func(cfg *config) { cfg.rule = &r }
}

// New prepares ∫ₐᵇ f with the degree-n Gauss-Legendre rule.
//
// Errors:
//   - ErrNilFunction for a nil f.
//   - ErrNonFiniteBounds for NaN or infinite a, b.
//   - legendre.ErrInvalidDegree and construction errors from the cache.
func New(f func(float64) float64, a, b float64, degree int, opts ...Option) (*Quadrature, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("gauss: [%g, %g]: %w", a, b, ErrNonFiniteBounds)
	}

	cfg := config{cache: legendre.Shared()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var rule quad.Rule
	if cfg.rule != nil {
		rule = *cfg.rule
	} else {
		l, err := cfg.cache.Get(degree)
		if err != nil {
			return nil, fmt.Errorf("gauss: degree %d: %w", degree, err)
		}
		rule = l.Rule()
	}

	return &Quadrature{
		f:     f,
		a:     a,
		b:     b,
		rule:  rule,
		nodes: rule.Nodes(),
		wts:   rule.Weights(),
	}, nil
}

// Integrate evaluates the weighted sum in one pass.
func (q *Quadrature) Integrate() float64 {
	if q.a == q.b {
		return 0
	}
	half := (q.b - q.a) / 2
	mid := (q.a + q.b) / 2

	sum := 0.0
	for i, r := range q.nodes {
		sum += q.wts[i] * q.f(half*r+mid)
	}

	return half * sum
}

// Rule returns the rule in use.
func (q *Quadrature) Rule() quad.Rule { return q.rule }

// Bounds returns (a, b).
func (q *Quadrature) Bounds() (float64, float64) { return q.a, q.b }

// Integrate is New(...).Integrate() in one call.
func Integrate(f func(float64) float64, a, b float64, degree int) (float64, error) {
	q, err := New(f, a, b, degree)
	if err != nil {
		return 0, err
	}
	return q.Integrate(), nil
}
