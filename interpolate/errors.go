package interpolate

import "errors"

// Sentinel errors returned by the interpolate package.
var (
	// ErrNoPoints indicates an empty data set.
	ErrNoPoints = errors.New("interpolate: at least one point is required")

	// ErrLengthMismatch indicates x, y (and y') of different lengths.
	ErrLengthMismatch = errors.New("interpolate: data slices differ in length")

	// ErrIndistinctPoints indicates a repeated abscissa.
	ErrIndistinctPoints = errors.New("interpolate: abscissae must be distinct")

	// ErrNonFinite indicates a NaN or infinite datum.
	ErrNonFinite = errors.New("interpolate: data must be finite")
)
