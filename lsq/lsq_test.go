// Package lsq_test contains unit tests for least-squares fitting: linear,
// log-linearised and polynomial models, goodness of fit, covariance and ridge.
package lsq_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/numanalysis/lsq"
	"github.com/katalvlaran/numanalysis/polynomial"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// ------------------------------------------------------------------------
// 1. Helpers: deterministic data and a gonum QR reference.
// ------------------------------------------------------------------------

// noisy returns a deterministic, bumpy sample around a cubic.
func noisy() (xs, ys []float64) {
	for i := 0; i < 12; i++ {
		x := -1.5 + 0.3*float64(i)
		xs = append(xs, x)
		ys = append(ys, 0.5-x+0.25*x*x*x+0.1*math.Sin(7*x))
	}
	return xs, ys
}

// gonumLeastSquares solves min‖Xβ − y‖ by QR for the Vandermonde design.
func gonumLeastSquares(t *testing.T, xs, ys []float64, degree int) []float64 {
	t.Helper()
	n, p := len(xs), degree+1
	X := mat.NewDense(n, p, nil)
	for i, x := range xs {
		for j := 0; j < p; j++ {
			X.Set(i, j, math.Pow(x, float64(j)))
		}
	}
	var beta mat.Dense
	require.NoError(t, beta.Solve(X, mat.NewDense(n, 1, append([]float64(nil), ys...))))
	return mat.Col(nil, 0, &beta)
}

// ------------------------------------------------------------------------
// 2. OLS: linear, exponential and power models.
// ------------------------------------------------------------------------

// TestOLS_LinearExact recovers y = 1 + 2x.
func TestOLS_LinearExact(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9}

	fit, err := lsq.OLS(xs, ys, lsq.Linear)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 2}, fit.Coefficients(), approx); diff != "" {
		t.Errorf("coefficients (-want +got):\n%s", diff)
	}
	assert.Less(t, fit.MSE(), 1e-20)
	assert.InDelta(t, 1.0, fit.RSquared(), 1e-12)
	assert.Equal(t, "linear", fit.Model())

	p, err := fit.Polynomial()
	require.NoError(t, err)
	assert.True(t, p.Equal(polynomial.Must(1, 2), 1e-9), p.String())
	assert.InDelta(t, 21.0, fit.Predict(10), 1e-9)
}

// TestOLS_LinearMatchesReferences compares against gonum QR and the
// montanaflynn/stats regression line.
func TestOLS_LinearMatchesReferences(t *testing.T) {
	xs, ys := noisy()
	fit, err := lsq.OLS(xs, ys, lsq.Linear)
	require.NoError(t, err)

	if diff := cmp.Diff(gonumLeastSquares(t, xs, ys, 1), fit.Coefficients(), approx); diff != "" {
		t.Errorf("coefficients (-gonum +got):\n%s", diff)
	}

	series := make(stats.Series, len(xs))
	for i := range xs {
		series[i] = stats.Coordinate{X: xs[i], Y: ys[i]}
	}
	line, err := stats.LinearRegression(series)
	require.NoError(t, err)
	pred := fit.Predictions()
	for i := range line {
		assert.InDelta(t, line[i].Y, pred[i], 1e-9, "x=%g", xs[i])
	}

	resid := fit.Residuals()
	sum := 0.0
	for i, r := range resid {
		assert.InDelta(t, ys[i]-pred[i], r, 1e-15)
		sum += r
	}
	assert.InDelta(t, 0.0, sum, 1e-9, "OLS residuals with intercept sum to zero")
	assert.InDelta(t, math.Sqrt(fit.MSE()), fit.RMSE(), 1e-15)
	assert.GreaterOrEqual(t, fit.MaxAbsResidual(), fit.RMSE())
	assert.Greater(t, fit.RSquared(), 0.0)
	assert.Less(t, fit.RSquared(), 1.0)
}

// TestOLS_Exponential recovers a and b of y = 3·e^(0.5x).
func TestOLS_Exponential(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3 * math.Exp(0.5*x)
	}

	fit, err := lsq.OLS(xs, ys, lsq.Exponential)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{3, 0.5}, fit.Coefficients(), approx); diff != "" {
		t.Errorf("coefficients (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ys, fit.Predictions(), approx); diff != "" {
		t.Errorf("predictions (-want +got):\n%s", diff)
	}
	assert.Equal(t, "exp", fit.Model())

	_, err = fit.Polynomial()
	assert.ErrorIs(t, err, lsq.ErrNotPolynomial)
}

// TestOLS_Power recovers a and b of y = 2·x^1.5.
func TestOLS_Power(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2 * math.Pow(x, 1.5)
	}

	fit, err := lsq.OLS(xs, ys, lsq.Power)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{2, 1.5}, fit.Coefficients(), approx); diff != "" {
		t.Errorf("coefficients (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 2*math.Pow(9, 1.5), fit.Predict(9), 1e-7)
	assert.True(t, strings.HasPrefix(fit.String(), "y = "), fit.String())
	assert.Contains(t, fit.String(), "·x^")
}

// TestOLS_NonPositive rejects data outside the log domain.
func TestOLS_NonPositive(t *testing.T) {
	_, err := lsq.OLS([]float64{0, 1, 2}, []float64{1, 0, 2}, lsq.Exponential)
	assert.ErrorIs(t, err, lsq.ErrNonPositive)

	_, err = lsq.OLS([]float64{0, 1, 2}, []float64{1, 2, 3}, lsq.Power)
	assert.ErrorIs(t, err, lsq.ErrNonPositive)

	// Linear accepts the same data.
	_, err = lsq.OLS([]float64{0, 1, 2}, []float64{1, 0, 2}, lsq.Linear)
	assert.NoError(t, err)
}

// TestOLS_Errors covers input validation.
func TestOLS_Errors(t *testing.T) {
	_, err := lsq.OLS([]float64{1, 2}, []float64{1}, lsq.Linear)
	assert.ErrorIs(t, err, lsq.ErrLengthMismatch)

	_, err = lsq.OLS([]float64{1}, []float64{1}, lsq.Linear)
	assert.ErrorIs(t, err, lsq.ErrInsufficientData)

	_, err = lsq.OLS([]float64{1, math.NaN()}, []float64{1, 2}, lsq.Linear)
	assert.ErrorIs(t, err, lsq.ErrNonFinite)

	_, err = lsq.OLS([]float64{1, 2}, []float64{1, 2}, lsq.Model(42))
	assert.ErrorIs(t, err, lsq.ErrInvalidModel)

	_, err = lsq.OLS([]float64{2, 2, 2}, []float64{1, 2, 3}, lsq.Linear)
	assert.ErrorIs(t, err, lsq.ErrSingularSystem)

	_, err = lsq.OLS([]float64{0, 0}, []float64{1, 2}, lsq.Linear)
	assert.ErrorIs(t, err, lsq.ErrSingularSystem, "zero slope column")
}

// ------------------------------------------------------------------------
// 3. Polynomial Regression: exact and noisy fits.
// ------------------------------------------------------------------------

// TestPolyRegression_Exact recovers a quadratic.
func TestPolyRegression_Exact(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 1 - x + 0.5*x*x
	}

	fit, err := lsq.PolyRegression(xs, ys, 2)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, -1, 0.5}, fit.Coefficients(), approx); diff != "" {
		t.Errorf("coefficients (-want +got):\n%s", diff)
	}
	assert.Equal(t, "poly(2)", fit.Model())
	assert.Less(t, fit.MSE(), 1e-20)

	p, err := fit.Polynomial()
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
}

// TestPolyRegression_MatchesGonum checks cubic and quintic fits of noisy data.
func TestPolyRegression_MatchesGonum(t *testing.T) {
	xs, ys := noisy()
	for _, degree := range []int{0, 1, 3, 5} {
		fit, err := lsq.PolyRegression(xs, ys, degree)
		require.NoError(t, err, "degree %d", degree)
		want := gonumLeastSquares(t, xs, ys, degree)
		if diff := cmp.Diff(want, fit.Coefficients(), cmpopts.EquateApprox(0, 1e-8)); diff != "" {
			t.Errorf("degree %d (-gonum +got):\n%s", degree, diff)
		}
	}
}

// TestPolyRegression_DegreeOneEqualsLinear: poly(1) is the OLS line.
func TestPolyRegression_DegreeOneEqualsLinear(t *testing.T) {
	xs, ys := noisy()
	a, err := lsq.OLS(xs, ys, lsq.Linear)
	require.NoError(t, err)
	b, err := lsq.PolyRegression(xs, ys, 1)
	require.NoError(t, err)
	assert.Equal(t, a.Coefficients(), b.Coefficients())
	assert.Equal(t, a.MSE(), b.MSE())
}

// TestPolyRegression_Errors covers degree and rank checks.
func TestPolyRegression_Errors(t *testing.T) {
	_, err := lsq.PolyRegression([]float64{1, 2}, []float64{1, 2}, -1)
	assert.ErrorIs(t, err, lsq.ErrInvalidDegree)

	_, err = lsq.PolyRegression([]float64{1, 2, 3}, []float64{1, 2, 3}, 3)
	assert.ErrorIs(t, err, lsq.ErrInsufficientData)

	_, err = lsq.PolyRegression([]float64{1, 1, 2, 2, 3}, []float64{1, 2, 3, 4, 5}, 3)
	assert.ErrorIs(t, err, lsq.ErrSingularSystem)
}

// ------------------------------------------------------------------------
// 4. Fit Results: R², copies and model names.
// ------------------------------------------------------------------------

// TestFit_ConstantY leaves R² undefined.
func TestFit_ConstantY(t *testing.T) {
	fit, err := lsq.PolyRegression([]float64{0, 1, 2}, []float64{4, 4, 4}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, fit.Coefficients()[0], 1e-12)
	assert.True(t, math.IsNaN(fit.RSquared()))
}

// TestFit_ResultsAreCopies: mutating returned slices leaves the fit intact.
func TestFit_ResultsAreCopies(t *testing.T) {
	fit, err := lsq.OLS([]float64{0, 1, 2}, []float64{1, 3, 5}, lsq.Linear)
	require.NoError(t, err)
	c := fit.Coefficients()
	c[0] = 100
	fit.Predictions()[0] = 100
	assert.InDelta(t, 1.0, fit.Coefficients()[0], 1e-9)
	assert.InDelta(t, 1.0, fit.Predictions()[0], 1e-9)
}

// TestParseModel maps names and rejects unknown ones.
func TestParseModel(t *testing.T) {
	for in, want := range map[string]lsq.Model{
		"linear":      lsq.Linear,
		"EXP":         lsq.Exponential,
		"exponential": lsq.Exponential,
		" power ":     lsq.Power,
	} {
		got, err := lsq.ParseModel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := lsq.ParseModel("logistic")
	assert.ErrorIs(t, err, lsq.ErrInvalidModel)

	assert.Equal(t, "exp", lsq.Exponential.String())
	assert.Equal(t, "Model(9)", lsq.Model(9).String())
}

// TestWithEpsilon panics on nonsense and tightens the rank test when zero.
func TestWithEpsilon(t *testing.T) {
	assert.Panics(t, func() { lsq.WithEpsilon(-1) })
	assert.Panics(t, func() { lsq.WithEpsilon(math.Inf(1)) })
	assert.Equal(t, lsq.DefaultEpsilon, lsq.DefaultOptions().Epsilon)

	xs, ys := noisy()
	_, err := lsq.PolyRegression(xs, ys, 2, lsq.WithEpsilon(0))
	assert.NoError(t, err)
}

// ------------------------------------------------------------------------
// 5. Covariance and Ridge: standard errors and regularisation.
// ------------------------------------------------------------------------

// TestFit_StdErrorsLinear checks the textbook standard errors of a line:
// se(b1) = σ/√Sxx and se(b0) = σ·√(1/n + x̄²/Sxx).
func TestFit_StdErrorsLinear(t *testing.T) {
	xs, ys := noisy()
	fit, err := lsq.OLS(xs, ys, lsq.Linear)
	require.NoError(t, err)

	n := float64(len(xs))
	mean, err := stats.Mean(xs)
	require.NoError(t, err)
	sxx, rss := 0.0, 0.0
	for i, x := range xs {
		sxx += (x - mean) * (x - mean)
		rss += fit.Residuals()[i] * fit.Residuals()[i]
	}
	sigma2 := rss / (n - 2)

	se, err := fit.StdErrors()
	require.NoError(t, err)
	require.Len(t, se, 2)
	assert.InDelta(t, math.Sqrt(sigma2*(1/n+mean*mean/sxx)), se[0], 1e-9)
	assert.InDelta(t, math.Sqrt(sigma2/sxx), se[1], 1e-9)
}

// TestFit_CovarianceMatchesGonum compares σ²·(XᵀX)⁻¹ of a cubic fit with
// gonum's inverse.
func TestFit_CovarianceMatchesGonum(t *testing.T) {
	xs, ys := noisy()
	const degree = 3
	fit, err := lsq.PolyRegression(xs, ys, degree)
	require.NoError(t, err)

	n, p := len(xs), degree+1
	X := mat.NewDense(n, p, nil)
	for i, x := range xs {
		for j := 0; j < p; j++ {
			X.Set(i, j, math.Pow(x, float64(j)))
		}
	}
	var xtx, want mat.Dense
	xtx.Mul(X.T(), X)
	require.NoError(t, want.Inverse(&xtx))
	want.Scale(fit.MSE()*float64(n)/float64(n-p), &want)

	cov, err := fit.Covariance()
	require.NoError(t, err)
	require.Equal(t, p, cov.Rows())
	if diff := cmp.Diff(want.RawMatrix().Data, cov.RawData(), cmpopts.EquateApprox(1e-7, 1e-12)); diff != "" {
		t.Errorf("covariance (-gonum +got):\n%s", diff)
	}
	for i := 0; i < p; i++ {
		for j := 0; j < i; j++ {
			a, _ := cov.At(i, j)
			b, _ := cov.At(j, i)
			assert.InDelta(t, a, b, 1e-12, "symmetric at (%d,%d)", i, j)
		}
	}
}

// TestFit_CovarianceExactFit: n == p leaves no residual variance.
func TestFit_CovarianceExactFit(t *testing.T) {
	fit, err := lsq.PolyRegression([]float64{0, 1, 2}, []float64{1, 0, 3}, 2)
	require.NoError(t, err)
	_, err = fit.Covariance()
	assert.ErrorIs(t, err, lsq.ErrInsufficientData)
	_, err = fit.StdErrors()
	assert.ErrorIs(t, err, lsq.ErrInsufficientData)
}

// TestWithRidge shrinks coefficients and regularises a singular design.
func TestWithRidge(t *testing.T) {
	assert.Panics(t, func() { lsq.WithRidge(-1) })
	assert.Panics(t, func() { lsq.WithRidge(math.NaN()) })
	assert.Zero(t, lsq.DefaultOptions().Ridge)

	xs, ys := noisy()
	plain, err := lsq.PolyRegression(xs, ys, 3)
	require.NoError(t, err)
	zero, err := lsq.PolyRegression(xs, ys, 3, lsq.WithRidge(0))
	require.NoError(t, err)
	assert.Equal(t, plain.Coefficients(), zero.Coefficients())

	heavy, err := lsq.PolyRegression(xs, ys, 3, lsq.WithRidge(1e6))
	require.NoError(t, err)
	for j, c := range heavy.Coefficients() {
		assert.Less(t, math.Abs(c), 1e-3, "coefficient %d", j)
	}
	assert.Greater(t, heavy.MSE(), plain.MSE())

	_, err = lsq.OLS([]float64{2, 2, 2}, []float64{1, 2, 3}, lsq.Linear)
	require.ErrorIs(t, err, lsq.ErrSingularSystem)
	fit, err := lsq.OLS([]float64{2, 2, 2}, []float64{1, 2, 3}, lsq.Linear, lsq.WithRidge(1e-3))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Predict(2), 1e-2)
}
