// SPDX-License-Identifier: MIT

// Package matrix is a small dense linear-algebra kernel: just enough to form
// and solve the normal equations of a least-squares fit, with an optional
// ridge term λ·I, and invert them for the coefficient covariance.
//
// 🚀 What's inside?
//
//   - Matrix: the row/column/At/Set/Clone contract; Dense is the row-major
//     implementation with bounds-checked accessors (errors, never panics).
//   - Kernels: Add, Mul, Transpose, MatVec, ScaleCols, ColumnNorms.
//   - Factorization: LU (Doolittle, unit lower L, no pivoting), Solve, Inverse.
//   - Validators: one source of truth for nil/shape/length/finite checks.
//
// ⚙️ Usage:
//
//	X, _ := matrix.NewDenseFrom(3, 2, []float64{1, 0, 1, 1, 1, 2})
//	Xt, _ := matrix.Transpose(X)
//	XtX, _ := matrix.Mul(Xt, X)
//	Xty, _ := matrix.MatVec(Xt, []float64{1, 3, 5})
//	beta, _ := matrix.Solve(XtX, Xty) // [1 2]
//
// Determinism:
//
// Every kernel uses fixed loop orders and performs no pivoting, so identical
// inputs give bit-identical outputs. *Dense operands take a flat-slice fast
// path; other Matrix implementations go through At/Set.
//
// Numeric policy:
//
// LU treats a pivot with |u_ii| ≤ eps·max|a_ij| as zero (ErrSingular); eps is
// DefaultEpsilon unless WithEpsilon is passed. Dense rejects NaN/±Inf on Set
// unless built WithNoValidateNaNInf.
//
// Complexity:
//
//	Mul (r×n · n×c)   O(r·n·c)
//	LU, Inverse       O(n³)
//	Solve             O(n³) factor + O(n²) substitution
package matrix
