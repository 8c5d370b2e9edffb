// SPDX-License-Identifier: MIT

package matrix

import "math"

const (
	// DefaultEpsilon is the relative pivot tolerance of LU: a pivot is zero
	// when |u_ii| ≤ eps·max|a_ij|.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles finite-value validation in Dense.Set.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the relative pivot tolerance. eps = 0 only rejects
// exactly-zero pivots. Panics unless eps is finite and ≥ 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf lets Dense.Set store NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the defaults. Exposed for callers that
// want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether Set rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
