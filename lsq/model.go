package lsq

import (
	"fmt"
	"math"
	"strings"
)

// Model selects the functional form of an OLS fit.
type Model int

const (
	// Linear is y = b0 + b1·x.
	Linear Model = iota
	// Exponential is y = a·e^(b·x), fit as ln y = ln a + b·x.
	Exponential
	// Power is y = a·x^b, fit as ln y = ln a + b·ln x.
	Power
)

var modelNames = [...]string{Linear: "linear", Exponential: "exp", Power: "power"}

// String returns the model's short name.
func (m Model) String() string {
	if m < Linear || m > Power {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return modelNames[m]
}

// ParseModel maps "linear", "exp" (or "exponential") and "power" to a Model.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "exp", "exponential":
		return Exponential, nil
	case "power":
		return Power, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidModel)
}

// transform maps raw observations into the linear space the model is
// solved in.
func (m Model) transform(xs, ys []float64) (tx, ty []float64, err error) {
	switch m {
	case Linear:
		return xs, ys, nil
	case Exponential:
		ty = make([]float64, len(ys))
		for i, y := range ys {
			if y <= 0 {
				return nil, nil, fmt.Errorf("y[%d]=%g: %w", i, y, ErrNonPositive)
			}
			ty[i] = math.Log(y)
		}
		return xs, ty, nil
	case Power:
		tx, ty = make([]float64, len(xs)), make([]float64, len(ys))
		for i := range xs {
			if xs[i] <= 0 || ys[i] <= 0 {
				return nil, nil, fmt.Errorf("(x,y)[%d]=(%g,%g): %w", i, xs[i], ys[i], ErrNonPositive)
			}
			tx[i], ty[i] = math.Log(xs[i]), math.Log(ys[i])
		}
		return tx, ty, nil
	}
	return nil, nil, fmt.Errorf("%v: %w", m, ErrInvalidModel)
}

// coefficients maps the linear-space intercept and slope back to the
// model's natural parameters.
func (m Model) coefficients(beta []float64) []float64 {
	if m == Linear {
		return beta
	}
	return []float64{math.Exp(beta[0]), beta[1]}
}

// eval evaluates the fitted model with coefficients c at x.
func (m Model) eval(c []float64, x float64) float64 {
	switch m {
	case Exponential:
		return c[0] * math.Exp(c[1]*x)
	case Power:
		return c[0] * math.Pow(x, c[1])
	}
	return c[0] + c[1]*x
}
