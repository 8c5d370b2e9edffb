// Package gauss integrates arbitrary functions over a finite interval with
// Gauss-Legendre rules.
//
// The rule lives on [-1, 1]; the affine map x = ((b − a)·r + a + b)/2 moves
// each root into [a, b] and the Jacobian (b − a)/2 rescales the sum:
//
//	∫ₐᵇ f(x) dx ≈ (b − a)/2 · Σ wᵢ·f(((b − a)·rᵢ + a + b)/2)
//
// An n-point rule is exact for polynomials of degree ≤ 2n − 1.
//
// Usage:
//
//	q, err := gauss.New(math.Exp, 0, 1, 5)
//	v := q.Integrate()
//
// Rules come from legendre.Shared() unless WithCache or WithRule is given.
// a == b integrates to 0; a > b yields the sign-flipped value of [b, a].
// NaN or ±Inf returned by f propagate into the sum unchanged.
package gauss
