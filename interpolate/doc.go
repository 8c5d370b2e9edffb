// Package interpolate builds the unique polynomial through tabulated data.
//
// 🚀 Methods:
//
//	Lagrange       Σ yᵢ·Lᵢ(x), Lᵢ the cardinal basis
//	Neville        iterated linear blending table, evaluated at a point
//	NewtonDivided  divided-difference coefficients, nested (Horner-like) form
//	Hermite        matches values and first derivatives (degree ≤ 2n − 1)
//
// Every method satisfies Interpolator: At(x) evaluates the interpolant at one
// point without building it; Polynomial() returns it in coefficient form.
// Lagrange, Neville and NewtonDivided yield the same polynomial for the
// same data.
//
// ⚙️ Usage:
//
//	in, err := interpolate.NewLagrange([]float64{1, 2, 4}, []float64{1, 4, 16})
//	in.At(3)            // 9
//	in.Polynomial()     // x^2
//
// Inputs are copied. Abscissae must be distinct (ErrIndistinctPoints) and
// match the ordinates in length (ErrLengthMismatch).
//
// Complexity (n points): At is O(n²) for Lagrange, Neville and Hermite, O(n)
// for NewtonDivided; Polynomial is O(n³) for Lagrange and Neville, O(n²)
// otherwise.
package interpolate
