// Package numanalysis is a small numerical-analysis toolkit built around
// Gauss-Legendre quadrature: polynomials, root finding, quadrature rules,
// interpolation and least-squares fitting.
//
// 🚀 What is numanalysis?
//
//	A pure-Go library where every step of building a quadrature rule is a
//	reusable piece:
//		• polynomial: immutable coefficient polynomials, closed algebra,
//		  expression-tree normalization
//		• root: Newton, Secant, Bisection and FixedPoint over any Evaluator
//		• quad: composite Trapezoid/Simpson and the Rule (nodes + weights)
//		• legendre: Bonnet recurrence, symmetric Newton roots, Lagrange-basis
//		  weights, a compute-once rule cache and YAML persistence
//		• gauss: ∫ₐᵇ f via the affine map onto a cached rule
//		• interpolate: Lagrange, Neville, Newton divided differences, Hermite
//		• lsq: OLS (linear, exp, power) and polynomial regression
//		• matrix: the dense LU kernel behind the normal equations
//
// ✨ Why numanalysis?
//
//   - Explicit errors: sentinel values per package, wrapped with context and
//     matched with errors.Is.
//   - Deterministic: identical inputs give bit-identical rules; a rule's
//     Fingerprint identifies it across runs and machines.
//   - Safe to share: constructed rules are read-only, and legendre.Cache
//     computes each degree once under concurrent access.
//
// Layout:
//
//	polynomial/  coefficient polynomials and Expr normalization
//	root/        scalar root solvers
//	quad/        composite rules, Rule, Integrator
//	legendre/    Legendre polynomials, roots, weights, Cache, Save/Load
//	gauss/       Gaussian quadrature engine
//	interpolate/ interpolating polynomials
//	matrix/      Dense, Mul, Transpose, LU, Solve, Inverse
//	lsq/         least-squares fits
//	cmd/numanalysis  command-line front end (rule, integrate, roots, fit)
//	examples/    runnable scenarios
//
// Quick example:
//
//	v, _ := gauss.Integrate(func(x float64) float64 { return 2*x + 4*x*x }, 0, 5, 2)
//	// v ≈ 191.667
//
//	go get github.com/katalvlaran/numanalysis
package numanalysis
