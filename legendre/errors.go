package legendre

import "errors"

// Sentinel errors returned by the legendre package.
var (
	// ErrInvalidDegree indicates a requested degree below MinDegree.
	ErrInvalidDegree = errors.New("legendre: degree must be >= 2")

	// ErrIndistinctRoots indicates two roots closer than the tolerance; the
	// Lagrange basis would divide by (nearly) zero.
	ErrIndistinctRoots = errors.New("legendre: roots must be distinct")

	// ErrInaccurateRule indicates computed weights that a Gauss-Legendre
	// rule cannot have: a non-positive weight or a sum away from 2.
	ErrInaccurateRule = errors.New("legendre: weights fail the rule checks")

	// ErrMalformedTable indicates a persisted root/weight table that cannot
	// be decoded into a valid rule.
	ErrMalformedTable = errors.New("legendre: malformed root/weight table")
)

// Panic messages for option constructors (programmer errors).
const (
	panicToleranceInvalid    = "legendre: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid      = "legendre: WithMaxIterations: n must be > 0"
	panicIntegratorNil       = "legendre: WithIntegrator: integrator is nil"
	panicSubintervalsInvalid = "legendre: WithSubintervals: k must be > 0"
	panicLoggerNil           = "legendre: WithLogger: logger is nil"
)
