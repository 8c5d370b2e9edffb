// Package polynomial_test contains unit tests for the expression parser.
package polynomial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/numanalysis/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromExpr_Expands normalizes products of linear factors and recurrence-style terms.
func TestFromExpr_Expands(t *testing.T) {
	x := polynomial.X
	type C = polynomial.Const

	cases := []struct {
		name string
		expr polynomial.Expr
		want []float64
	}{
		{"constant", C(3), []float64{3}},
		{"identity", x, []float64{0, 1}},
		{"sum collects like powers", polynomial.Sum{x, x, C(1)}, []float64{1, 2}},
		{"product of linear factors", polynomial.Product{polynomial.Linear(1), polynomial.Linear(-1)}, []float64{-1, 0, 1}},
		{"power", polynomial.Power{Base: polynomial.Sum{x, C(1)}, Exp: 2}, []float64{1, 2, 1}},
		{"power zero", polynomial.Power{Base: x, Exp: 0}, []float64{1}},
		{
			// P2 by Bonnet: ((3)·x·x − 1·1) / 2
			"legendre P2",
			polynomial.Quotient{
				Num: polynomial.Sum{polynomial.Product{C(3), x, x}, C(-1)},
				Den: C(2),
			},
			[]float64{-0.5, 0, 1.5},
		},
		{"lagrange basis", polynomial.Quotient{Num: polynomial.Linear(2), Den: polynomial.Sum{C(1), C(-2)}}, []float64{2, -1}},
		{"folded call", polynomial.Product{polynomial.Call{Name: "exp", Arg: C(0)}, x}, []float64{0, 1}},
		{"cancellation trims", polynomial.Sum{polynomial.Product{x, x}, polynomial.Product{C(-1), x, x}, C(4)}, []float64{4}},
		{"embedded polynomial", polynomial.Product{polynomial.Must(1, 1), x}, []float64{0, 1, 1}},
		{"empty sum and product", polynomial.Sum{polynomial.Sum{}, polynomial.Product{}}, []float64{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := polynomial.FromExpr(tc.expr)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, p.Coefficients(), approx); diff != "" {
				t.Fatalf("coefficients (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFromExpr_Rejects checks the TypeError-class failures.
func TestFromExpr_Rejects(t *testing.T) {
	x := polynomial.X
	type C = polynomial.Const

	cases := map[string]polynomial.Expr{
		"nil":                 nil,
		"free symbol":         polynomial.Sum{x, polynomial.Sym("y")},
		"negative exponent":   polynomial.Power{Base: x, Exp: -1},
		"fractional exponent": polynomial.Power{Base: x, Exp: 0.5},
		"rational function":   polynomial.Quotient{Num: C(1), Den: x},
		"division by zero":    polynomial.Quotient{Num: x, Den: polynomial.Sum{C(1), C(-1)}},
		"transcendental":      polynomial.Call{Name: "sin", Arg: x},
		"unknown function":    polynomial.Call{Name: "gamma", Arg: C(1)},
		"foreign node":        foreign{},
	}
	for name, e := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := polynomial.FromExpr(e)
			assert.ErrorIs(t, err, polynomial.ErrNotPolynomial)
		})
	}
}

// TestFromExpr_NonFinite rejects constants that fold into NaN/Inf.
func TestFromExpr_NonFinite(t *testing.T) {
	_, err := polynomial.FromExpr(polynomial.Call{Name: "ln", Arg: polynomial.Const(-1)})
	assert.ErrorIs(t, err, polynomial.ErrNonFinite)
}

// TestExprString keeps the rendering readable for error messages.
func TestExprString(t *testing.T) {
	e := polynomial.Quotient{Num: polynomial.Linear(2), Den: polynomial.Const(4)}
	assert.Equal(t, "((x) + (-2))/(4)", e.String())
	assert.Equal(t, "(x)^3", polynomial.Power{Base: polynomial.X, Exp: 3}.String())
	assert.Equal(t, "sin(x)", polynomial.Call{Name: "sin", Arg: polynomial.X}.String())
}

type foreign struct{}

func (foreign) String() string { return "?" }
