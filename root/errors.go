package root

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the root solvers.
var (
	// ErrConvergence indicates that the iteration budget was exhausted
	// before the stopping criterion was met.
	ErrConvergence = errors.New("root: method failed to converge")

	// ErrSingularDerivative indicates a zero slope at an iterate (Newton)
	// or a flat secant (Secant); the next step would divide by zero.
	ErrSingularDerivative = errors.New("root: zero derivative at iterate")

	// ErrInvalidBracket indicates that Bisection endpoints do not satisfy
	// f(a)·f(b) < 0.
	ErrInvalidBracket = errors.New("root: endpoints must satisfy f(a)*f(b) < 0")

	// ErrNilFunction indicates a nil Evaluator or function argument.
	ErrNilFunction = errors.New("root: function is nil")
)

// Panic messages for option constructors (programmer errors).
const (
	panicToleranceInvalid = "root: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "root: WithMaxIterations: n must be > 0"
)

// ConvergenceError reports a spent iteration budget together with the
// last iterate. It matches ErrConvergence under errors.Is.
type ConvergenceError struct {
	Method     string  // solver name, e.g. "Newton"
	Iterations int     // iterations performed
	Last       float64 // last iterate
	Residual   float64 // f(Last), or |Last − previous| for step-based stops
}

// Error implements error.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("root: %s: no convergence after %d iterations (last=%g, residual=%g)",
		e.Method, e.Iterations, e.Last, e.Residual)
}

// Is lets errors.Is(err, ErrConvergence) match.
func (e *ConvergenceError) Is(target error) bool { return target == ErrConvergence }
