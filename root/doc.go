// Package root finds zeros of polynomials and scalar functions.
//
// 🚀 Methods:
//
//	Newton     p_{k+1} = p_k − f(p_k)/f'(p_k)         (needs f')
//	Secant     p = p₁ − f(p₁)(p₁ − p₀)/(f(p₁) − f(p₀)) (two seeds)
//	Bisection  halve [a, b] keeping the sign change   (bracket)
//	FixedPoint p = g(p)                               (contraction)
//
// Newton, Secant and Bisection accept any polynomial.Evaluator, so the
// Legendre generator and user code share one solver contract.
//
// ⚙️ Usage:
//
//	p := polynomial.Must(-4, 0, 1)
//	r, err := root.Newton(p, 3, root.WithTolerance(1e-10))
//
// Failure policy:
//   - No solver ever returns an approximate answer on failure.
//   - ErrConvergence is returned when the iteration budget is spent; the
//     wrapped *ConvergenceError carries the last iterate for callers that
//     explicitly want a best-effort value.
//   - ErrSingularDerivative is returned instead of dividing by zero.
//   - There are no retries: the methods are deterministic, only a different
//     seed or tolerance can change the outcome.
package root
