package lsq

import (
	"math"

	"github.com/katalvlaran/numanalysis/matrix"
)

// DefaultEpsilon is the relative pivot tolerance used when solving the
// equilibrated normal equations.
const DefaultEpsilon = 1e-12

// Option configures a fit.
type Option func(*Options)

// Options holds the effective fit configuration.
type Options struct {
	// Epsilon is forwarded to matrix.WithEpsilon. Columns of the design
	// matrix are scaled to unit norm first, so XᵀX has a unit diagonal and
	// Epsilon reads as an absolute pivot floor.
	Epsilon float64

	// Ridge is the penalty λ added to the diagonal of the equilibrated
	// normal matrix. Zero is plain least squares.
	Ridge float64
}

// DefaultOptions returns the defaults.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon overrides the pivot tolerance. Panics unless eps is finite
// and non-negative.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithRidge adds λ·I to the equilibrated normal matrix (ridge regression on
// unit-norm columns, intercept included). Any λ > 0 makes the system
// non-singular. Panics unless lambda is finite and non-negative.
func WithRidge(lambda float64) Option {
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		panic(panicRidgeInvalid)
	}
	return func(o *Options) { o.Ridge = lambda }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) matrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(o.Epsilon)}
}
