package gauss

import "errors"

// Sentinel errors returned by the gauss package.
var (
	// ErrNilFunction indicates a nil integrand.
	ErrNilFunction = errors.New("gauss: integrand is nil")

	// ErrNonFiniteBounds indicates a NaN or infinite integration bound.
	ErrNonFiniteBounds = errors.New("gauss: bounds must be finite")
)

// Panic messages for option constructors (programmer errors).
const (
	panicCacheNil  = "gauss: WithCache: cache is nil"
	panicRuleEmpty = "gauss: WithRule: rule has no nodes"
)
