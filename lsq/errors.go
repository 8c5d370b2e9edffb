package lsq

import "errors"

// Sentinel errors returned by the lsq package.
var (
	// ErrLengthMismatch indicates x and y of different lengths.
	ErrLengthMismatch = errors.New("lsq: x and y differ in length")

	// ErrInsufficientData indicates fewer observations than coefficients.
	ErrInsufficientData = errors.New("lsq: not enough observations for the model")

	// ErrInvalidModel indicates an unknown model name or value.
	ErrInvalidModel = errors.New("lsq: unknown model (want linear, exp or power)")

	// ErrInvalidDegree indicates a negative polynomial degree.
	ErrInvalidDegree = errors.New("lsq: degree must be >= 0")

	// ErrNonPositive indicates data outside the domain of a log-linearised
	// model: y <= 0 for exp, x <= 0 or y <= 0 for power.
	ErrNonPositive = errors.New("lsq: log-linearised model requires positive data")

	// ErrNonFinite indicates a NaN or infinite observation.
	ErrNonFinite = errors.New("lsq: data must be finite")

	// ErrSingularSystem indicates rank-deficient normal equations
	// (e.g. all x equal, or degree too high for the distinct abscissae).
	ErrSingularSystem = errors.New("lsq: normal equations are singular")

	// ErrNotPolynomial is returned by Fit.Polynomial for exp and power fits.
	ErrNotPolynomial = errors.New("lsq: fitted model is not a polynomial")
)

// Panic messages for option constructors (programmer errors).
const (
	panicEpsilonInvalid = "lsq: WithEpsilon: eps must be finite, non-negative"
	panicRidgeInvalid   = "lsq: WithRidge: lambda must be finite, non-negative"
)
