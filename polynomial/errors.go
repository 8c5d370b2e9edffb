package polynomial

import "errors"

// Sentinel errors returned by the polynomial package.
var (
	// ErrEmptyCoefficients indicates that a polynomial was requested from an
	// empty coefficient list. A polynomial always carries at least c[0].
	ErrEmptyCoefficients = errors.New("polynomial: at least one coefficient is required")

	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("polynomial: coefficient is NaN or Inf")

	// ErrNotPolynomial indicates that an expression could not be normalized
	// into coefficient form: a free symbol other than the indeterminate,
	// a negative or fractional exponent, division by a non-constant, or an
	// unsupported node such as a transcendental function call.
	ErrNotPolynomial = errors.New("polynomial: expression is not a polynomial in x")
)
