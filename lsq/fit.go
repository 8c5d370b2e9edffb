package lsq

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/numanalysis/matrix"
	"github.com/katalvlaran/numanalysis/polynomial"
	"github.com/montanaflynn/stats"
)

// Fit is the read-only result of a least-squares fit.
type Fit struct {
	name   string
	model  Model
	coef   []float64
	poly   polynomial.Polynomial
	isPoly bool
	cov    *matrix.Dense // nil without residual degrees of freedom

	pred, resid     []float64
	mse, r2, maxAbs float64
}

// score fills predictions, residuals and goodness of fit.
func (f *Fit) score(xs, ys []float64) {
	n := len(xs)
	f.pred = make([]float64, n)
	f.resid = make([]float64, n)
	sq := make(stats.Float64Data, n)
	abs := make(stats.Float64Data, n)
	for i, x := range xs {
		f.pred[i] = f.Predict(x)
		f.resid[i] = ys[i] - f.pred[i]
		sq[i] = f.resid[i] * f.resid[i]
		abs[i] = math.Abs(f.resid[i])
	}

	// n > 0 is guaranteed by validate, so stats never sees empty input.
	f.mse, _ = stats.Mean(sq)
	f.maxAbs, _ = stats.Max(abs)
	variance, _ := stats.PopulationVariance(stats.Float64Data(ys))
	if variance == 0 {
		f.r2 = math.NaN()
	} else {
		f.r2 = 1 - f.mse/variance
	}
}

// Model returns "linear", "exp", "power" or "poly(d)".
func (f *Fit) Model() string { return f.name }

// Coefficients returns a copy of the fitted parameters: [b0, b1] for
// linear, [a, b] for exp and power, ascending powers for poly(d).
func (f *Fit) Coefficients() []float64 { return slices.Clone(f.coef) }

// Predict evaluates the fitted model at x.
func (f *Fit) Predict(x float64) float64 {
	if f.isPoly {
		return f.poly.Evaluate(x)
	}
	return f.model.eval(f.coef, x)
}

// Predictions returns ŷ at the fitted abscissae.
func (f *Fit) Predictions() []float64 { return slices.Clone(f.pred) }

// Residuals returns y − ŷ at the fitted abscissae.
func (f *Fit) Residuals() []float64 { return slices.Clone(f.resid) }

// MSE is the mean squared residual Σ(y − ŷ)²/n.
func (f *Fit) MSE() float64 { return f.mse }

// RMSE is √MSE.
func (f *Fit) RMSE() float64 { return math.Sqrt(f.mse) }

// MaxAbsResidual is max |y − ŷ|.
func (f *Fit) MaxAbsResidual() float64 { return f.maxAbs }

// RSquared is 1 − MSE/Var(y) in the original y space. NaN when y is
// constant.
func (f *Fit) RSquared() float64 { return f.r2 }

// Covariance returns σ²·(XᵀX)⁻¹ for the fitted parameters, σ² being the
// residual variance with n − p degrees of freedom. For exp and power the
// parameters are those of the log-linearised line, [ln a, b]. With
// WithRidge the penalised normal matrix is inverted instead.
//
// Errors: ErrInsufficientData when n == p (an exact fit has no residual
// variance to estimate).
func (f *Fit) Covariance() (*matrix.Dense, error) {
	if f.cov == nil {
		return nil, fmt.Errorf("%s: no residual degrees of freedom: %w", f.name, ErrInsufficientData)
	}
	return f.cov.Clone().(*matrix.Dense), nil
}

// StdErrors returns √diag(Covariance()), one standard error per parameter.
func (f *Fit) StdErrors() ([]float64, error) {
	cov, err := f.Covariance()
	if err != nil {
		return nil, err
	}
	se := make([]float64, cov.Rows())
	for j := range se {
		v, _ := cov.At(j, j)
		se[j] = math.Sqrt(v)
	}
	return se, nil
}

// Polynomial returns the fitted polynomial for linear and poly(d) fits,
// ErrNotPolynomial otherwise.
func (f *Fit) Polynomial() (polynomial.Polynomial, error) {
	if !f.isPoly {
		return polynomial.Polynomial{}, fmt.Errorf("%s: %w", f.name, ErrNotPolynomial)
	}
	return f.poly, nil
}

// String renders the fitted equation, e.g. "y = 2x + 1" or "y = 3·exp(0.5x)".
func (f *Fit) String() string {
	if f.isPoly {
		return "y = " + f.poly.String()
	}
	switch f.model {
	case Exponential:
		return fmt.Sprintf("y = %g·exp(%gx)", f.coef[0], f.coef[1])
	case Power:
		return fmt.Sprintf("y = %g·x^%g", f.coef[0], f.coef[1])
	}
	return fmt.Sprintf("y = %gx + %g", f.coef[1], f.coef[0])
}
