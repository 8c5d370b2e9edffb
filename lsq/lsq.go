package lsq

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/numanalysis/matrix"
	"github.com/katalvlaran/numanalysis/polynomial"
)

// OLS fits model to (xs, ys) by ordinary least squares.
//
// Exponential and Power are log-linearised: the straight line is fit to
// (x, ln y) or (ln x, ln y) and the intercept is exponentiated back, so the
// coefficients are [a, b] of y = a·e^(bx) or y = a·x^b. Linear returns
// [b0, b1] of y = b0 + b1·x. Predictions, MSE and R² are always reported
// in the original y space.
//
// Errors: ErrLengthMismatch, ErrInsufficientData (fewer than 2 points),
// ErrNonFinite, ErrNonPositive, ErrInvalidModel, ErrSingularSystem
// (all x equal).
func OLS(xs, ys []float64, model Model, opts ...Option) (*Fit, error) {
	if err := validate(xs, ys, 2); err != nil {
		return nil, err
	}
	tx, ty, err := model.transform(xs, ys)
	if err != nil {
		return nil, err
	}
	sol, err := solveNormal(tx, ty, 1, gather(opts))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", model, err)
	}

	f := &Fit{name: model.String(), model: model, coef: model.coefficients(sol.beta), cov: sol.cov}
	if model == Linear {
		if f.poly, err = polynomial.New(sol.beta...); err != nil {
			return nil, fmt.Errorf("%v: %w", model, err)
		}
		f.isPoly = true
	}
	f.score(xs, ys)

	return f, nil
}

// PolyRegression fits y = b0 + b1·x + … + b_d·x^d by least squares.
// Coefficients are in ascending power order. With len(xs) == degree+1 and
// distinct abscissae the fit interpolates.
//
// Errors: ErrInvalidDegree, ErrLengthMismatch, ErrInsufficientData,
// ErrNonFinite, ErrSingularSystem (fewer distinct x than degree+1).
func PolyRegression(xs, ys []float64, degree int, opts ...Option) (*Fit, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree=%d: %w", degree, ErrInvalidDegree)
	}
	if err := validate(xs, ys, degree+1); err != nil {
		return nil, err
	}
	sol, err := solveNormal(xs, ys, degree, gather(opts))
	if err != nil {
		return nil, fmt.Errorf("poly(%d): %w", degree, err)
	}
	p, err := polynomial.New(sol.beta...)
	if err != nil {
		return nil, fmt.Errorf("poly(%d): %w", degree, err)
	}

	f := &Fit{name: fmt.Sprintf("poly(%d)", degree), model: Linear, coef: sol.beta, cov: sol.cov, poly: p, isPoly: true}
	f.score(xs, ys)

	return f, nil
}

func validate(xs, ys []float64, params int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < params {
		return fmt.Errorf("%d observations for %d coefficients: %w", len(xs), params, ErrInsufficientData)
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return fmt.Errorf("(x,y)[%d]=(%v,%v): %w", i, xs[i], ys[i], ErrNonFinite)
		}
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// normal is the solution of one least-squares system.
type normal struct {
	beta []float64
	// cov is σ²·(XᵀX)⁻¹ with σ² = ‖Xβ − y‖²/(n − p); nil when n == p.
	cov *matrix.Dense
}

// solveNormal returns β minimising ‖Xβ − y‖² (plus λ‖D⁻¹β‖² with a ridge)
// for the Vandermonde design X[i][j] = x_i^j, j = 0..degree, and its covariance.
//
// Implementation:
//   - Stage 1: build X row-major.
//   - Stage 2: equilibrate columns to unit norm (D = diag(1/‖X_j‖)).
//   - Stage 3: A = (XD)ᵀ(XD), plus λ·I when Ridge > 0.
//   - Stage 4: solve A·z = (XD)ᵀy by LU, then β = D·z.
//   - Stage 5: covariance σ²·D·A⁻¹·D from the residuals of Stage 4.
//
// Complexity: O(n·p² + p³) for n observations and p = degree+1.
func solveNormal(xs, ys []float64, degree int, o Options) (normal, error) {
	n, p := len(xs), degree+1
	data := make([]float64, 0, n*p)
	for _, x := range xs {
		v := 1.0
		for j := 0; j < p; j++ {
			data = append(data, v)
			v *= x
		}
	}
	X, err := matrix.NewDenseFrom(n, p, data)
	if err != nil {
		return normal{}, fmt.Errorf("design matrix: %w", err)
	}

	norms, err := matrix.ColumnNorms(X)
	if err != nil {
		return normal{}, err
	}
	scale := make([]float64, p)
	for j, nj := range norms {
		if nj == 0 {
			return normal{}, fmt.Errorf("column %d is zero: %w", j, ErrSingularSystem)
		}
		scale[j] = 1 / nj
	}
	Xs, err := matrix.ScaleCols(X, scale)
	if err != nil {
		return normal{}, err
	}

	Xt, err := matrix.Transpose(Xs)
	if err != nil {
		return normal{}, err
	}
	A, err := matrix.Mul(Xt, Xs)
	if err != nil {
		return normal{}, err
	}
	if o.Ridge > 0 {
		if A, err = addRidge(A, o.Ridge); err != nil {
			return normal{}, err
		}
	}
	rhs, err := matrix.MatVec(Xt, slices.Clone(ys))
	if err != nil {
		return normal{}, err
	}
	z, err := matrix.Solve(A, rhs, o.matrixOptions()...)
	if errors.Is(err, matrix.ErrSingular) {
		return normal{}, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}
	if err != nil {
		return normal{}, err
	}
	for j := range z {
		z[j] *= scale[j]
	}

	out := normal{beta: z}
	if n > p {
		if out.cov, err = covariance(X, A, ys, z, scale, o); err != nil {
			return normal{}, err
		}
	}
	return out, nil
}

// addRidge returns A + λ·I.
func addRidge(A *matrix.Dense, lambda float64) (*matrix.Dense, error) {
	p := A.Rows()
	I, err := matrix.NewIdentity(p)
	if err != nil {
		return nil, err
	}
	diag := make([]float64, p)
	for j := range diag {
		diag[j] = lambda
	}
	L, err := matrix.ScaleCols(I, diag)
	if err != nil {
		return nil, err
	}
	return matrix.Add(A, L)
}

// covariance returns σ²·D·A⁻¹·D, where σ² is the residual variance of β
// with n − p degrees of freedom. A⁻¹ is symmetric, so the row scaling by D
// is a column scaling of the transpose.
func covariance(X, A *matrix.Dense, ys, beta, scale []float64, o Options) (*matrix.Dense, error) {
	fitted, err := matrix.MatVec(X, beta)
	if err != nil {
		return nil, err
	}
	rss := 0.0
	for i, y := range ys {
		r := y - fitted[i]
		rss += r * r
	}
	sigma2 := rss / float64(X.Rows()-X.Cols())

	inv, err := matrix.Inverse(A, o.matrixOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}
	cov, err := matrix.ScaleCols(inv, scale)
	if err != nil {
		return nil, err
	}
	if cov, err = matrix.Transpose(cov); err != nil {
		return nil, err
	}
	factor := make([]float64, len(scale))
	for j, s := range scale {
		factor[j] = s * sigma2
	}
	return matrix.ScaleCols(cov, factor)
}
