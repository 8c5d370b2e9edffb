// Package legendre builds Gauss-Legendre quadrature rules: the Legendre
// polynomial of degree n, its n roots on (-1, 1) and the matching weights.
//
// 🚀 What is a Gauss-Legendre rule?
//
//	∫₋₁¹ f(x) dx ≈ Σ_{i=1}^{n} wᵢ·f(rᵢ)
//
// where r₁ < … < rₙ are the zeros of Pₙ and wᵢ = ∫₋₁¹ Lᵢ(x) dx, Lᵢ being the
// Lagrange basis polynomial that is 1 at rᵢ and 0 at every other root. The
// rule is exact for polynomials of degree ≤ 2n − 1.
//
// ✨ Construction (New):
//
//  1. Polynomial: Bonnet's recurrence, bottom-up, keeping two predecessors:
//     P₀ = 1, P₁ = x, k·Pₖ = (2k − 1)·x·Pₖ₋₁ − (k − 1)·Pₖ₋₂.
//  2. Roots: ⌊n/2⌋ Newton refinements seeded at cos(π(i − ¼)/(n + ½)),
//     mirrored by negation; 0 is added for odd n; result sorted ascending.
//     Newton evaluates Pₙ and Pₙ' by the recurrence itself, since the
//     expanded coefficients lose all precision beyond n ≈ 30.
//  3. Weights: every Lᵢ is evaluated in product form and integrated over
//     [-1, 1] with an injected composite rule (trapezoid, 100 panels by
//     default).
//  4. Checks: adjacent roots must be farther apart than the tolerance
//     (ErrIndistinctRoots); every weight must be positive and Σwᵢ within
//     1e-3 of 2 (ErrInaccurateRule). The default trapezoid passes up to
//     n = 33; larger degrees need more subintervals.
//
// ⚙️ Options:
//
//	WithTolerance(1e-5)       Newton stopping threshold
//	WithMaxIterations(10000)  Newton iteration budget per root
//	WithIntegrator(quad.Trapezoid)
//	WithSubintervals(100)
//
// 🧠 Reuse:
//
// A rule depends on n (and the options) only. Cache memoizes rules per
// degree; concurrent first requests for one degree compute it once.
// Store persists a rule as a flat YAML mapping "root": "weight".
//
// Complexity:
//
//	Polynomial(n)   O(n²)
//	roots           O(n · iters · n)
//	weights         O(n² · subintervals)
package legendre
