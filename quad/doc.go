// Package quad provides fixed-step composite integration rules and the
// Rule container shared by Gaussian quadrature.
//
// 🚀 What's inside?
//
//	Trapezoid  ∫ₐᵇ f ≈ h/2·(f(a) + 2Σf(xᵢ) + f(b))             O(h²)
//	Simpson    ∫ₐᵇ f ≈ h/3·(f(a) + 4Σodd + 2Σeven + f(b))       O(h⁴), even n
//	Rule       ordered (node, weight) pairs on [-1, 1]
//
// Both composite rules satisfy Integrator, the injection point used by the
// Legendre weight calculator to integrate Lagrange basis polynomials.
//
// ⚙️ Usage:
//
//	v, err := quad.Trapezoid(math.Sin, 0, math.Pi, 100)
//	v, err := quad.Simpson(math.Sin, 0, math.Pi, 100)
//
// A Rule is immutable; Fingerprint hashes the exact bit patterns of its
// nodes and weights (BLAKE3), so two rules compare bit-for-bit by string.
package quad
