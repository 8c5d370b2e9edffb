package quad

import "errors"

// Sentinel errors returned by the quad package.
var (
	// ErrInvalidPartition indicates a non-positive subinterval count, or an
	// odd one for Simpson's rule.
	ErrInvalidPartition = errors.New("quad: invalid number of subintervals")

	// ErrNilFunction indicates a nil integrand.
	ErrNilFunction = errors.New("quad: integrand is nil")

	// ErrEmptyRule indicates a rule with no nodes.
	ErrEmptyRule = errors.New("quad: rule has no nodes")

	// ErrLengthMismatch indicates len(nodes) != len(weights).
	ErrLengthMismatch = errors.New("quad: nodes and weights differ in length")

	// ErrUnorderedNodes indicates nodes that are not strictly ascending
	// (duplicates included).
	ErrUnorderedNodes = errors.New("quad: nodes must be strictly ascending")
)
