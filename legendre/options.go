package legendre

import (
	"math"

	"github.com/katalvlaran/numanalysis/quad"
)

const (
	// MinDegree is the smallest degree New accepts.
	MinDegree = 2

	// DefaultTolerance is the Newton stopping threshold for each root.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations is the Newton budget for each root.
	DefaultMaxIterations = 10000

	// DefaultSubintervals is the panel count used to integrate each
	// Lagrange basis polynomial.
	DefaultSubintervals = 100

	// WeightSumTolerance bounds |Σwᵢ − 2| for a rule New accepts.
	WeightSumTolerance = 1e-3
)

// Options configures rule construction.
type Options struct {
	Tolerance     float64         // Newton threshold; > 0
	MaxIterations int             // Newton budget; > 0
	Integrator    quad.Integrator // composite rule for the weights
	Subintervals  int             // panels passed to Integrator; > 0
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// DefaultOptions returns tol=1e-5, 10000 iterations, trapezoid with 100 panels.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Integrator:    quad.Trapezoid,
		Subintervals:  DefaultSubintervals,
	}
}

// WithTolerance sets the Newton threshold. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the Newton budget per root. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithIntegrator replaces the composite rule used for the weights.
func WithIntegrator(in quad.Integrator) Option {
	if in == nil {
		panic(panicIntegratorNil)
	}
	return func(o *Options) { o.Integrator = in }
}

// WithSubintervals sets the panel count for weight integration. Panics unless k > 0.
func WithSubintervals(k int) Option {
	if k <= 0 {
		panic(panicSubintervalsInvalid)
	}
	return func(o *Options) { o.Subintervals = k }
}

func gather(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
