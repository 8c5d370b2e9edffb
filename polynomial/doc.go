// Package polynomial is the coefficient-vector polynomial every other
// numanalysis package speaks.
//
// 🚀 What is a Polynomial here?
//
//	An immutable, ordered slice of float64 coefficients c[0..n] representing
//	    p(x) = c[0] + c[1]·x + c[2]·x² + … + c[n]·xⁿ
//	Every operation (derivative, sum, product, multiply by a linear factor)
//	returns a brand-new value; nothing is mutated in place.
//
// ✨ Key features:
//   - Horner evaluation of p(x) and p'(x) without allocating the derivative.
//   - Closed algebra: Add, Sub, Scale, Mul, MulLinear, FromRoots; enough to
//     build Lagrange basis polynomials and the Legendre recurrence.
//   - Expression normalization: FromExpr expands a small expression tree
//     (sums, products, integer powers, constant quotients) into coefficient
//     form and rejects anything that is not a polynomial in x.
//   - Evaluator: the minimal contract consumed by root solvers and the
//     Legendre generator.
//
// ⚙️ Usage:
//
//	p := polynomial.Must(-4, 0, 1)      // x² − 4
//	p.Evaluate(3)                       // 5
//	p.DerivativeEvaluate(3)             // 6
//	q := p.MulLinear(1)                 // (x² − 4)(x − 1)
//
// Complexity:
//
//   - Evaluate / DerivativeEvaluate: O(n)
//   - Add / Sub / Scale:             O(n)
//   - Mul:                           O(n·m)
//   - FromRoots(k roots):            O(k²)
package polynomial
