// Package lsq fits curves to noisy data by least squares.
//
// 🚀 Fits:
//
//	OLS(x, y, Linear)        y = b0 + b1·x
//	OLS(x, y, Exponential)   y = a·e^(b·x)   (fit on ln y)
//	OLS(x, y, Power)         y = a·x^b       (fit on ln x, ln y)
//	PolyRegression(x, y, d)  y = b0 + b1·x + … + b_d·x^d
//
// Every fit returns a *Fit carrying the coefficients, predictions at the
// input abscissae, residuals, MSE and R². Linear and polynomial fits also
// expose the result as a polynomial.Polynomial.
//
// 🧠 Algorithm:
//
// The Vandermonde design matrix X is built in package matrix, its columns are
// scaled to unit norm, and the normal equations (XD)ᵀ(XD)z = (XD)ᵀy are solved
// by LU. Column scaling keeps XᵀX well conditioned enough for moderate
// degrees; rank deficiency surfaces as ErrSingularSystem. WithRidge(λ) adds
// λ·I to the scaled system, which also makes it non-singular.
//
// Fit.Covariance inverts the same matrix: σ²·(XᵀX)⁻¹ with σ² the residual
// variance on n − p degrees of freedom. Fit.StdErrors is its √diagonal.
//
// ⚙️ Usage:
//
//	fit, err := lsq.OLS([]float64{0, 1, 2}, []float64{1, 3, 5}, lsq.Linear)
//	fit.Coefficients() // [1 2]
//	fit.MSE()          // 0
//
// Complexity: O(n·p² + p³) for n points and p coefficients.
package lsq
