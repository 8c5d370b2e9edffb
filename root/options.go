package root

import "math"

// Defaults mirror the classic textbook settings of each method.
const (
	// DefaultTolerance is the stopping threshold for Newton and Secant.
	DefaultTolerance = 1e-5

	// DefaultBracketTolerance is the stopping threshold for Bisection and FixedPoint.
	DefaultBracketTolerance = 1e-7

	// DefaultMaxIterations bounds every solver.
	DefaultMaxIterations = 100
)

// Options holds the effective solver configuration.
type Options struct {
	Tolerance     float64 // stopping threshold; > 0
	MaxIterations int     // iteration budget; > 0
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// DefaultOptions returns Newton/Secant defaults (tol=1e-5, 100 iterations).
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// WithTolerance sets the stopping threshold. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the iteration budget. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.MaxIterations = n }
}

// gather applies opts over base.
func gather(base Options, opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	return base
}
