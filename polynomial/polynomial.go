package polynomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Evaluator is the contract shared by every polynomial-like value that a
// root solver or quadrature builder can consume. Implementations must be
// safe for concurrent reads.
type Evaluator interface {
	// Evaluate returns p(x).
	Evaluate(x float64) float64

	// DerivativeEvaluate returns p'(x).
	DerivativeEvaluate(x float64) float64

	// Coefficients returns c[0..n] in ascending power order.
	Coefficients() []float64
}

// Polynomial is an immutable coefficient vector c[0..n] representing Σ c[i]·xⁱ.
// The zero value behaves as the constant 0.
type Polynomial struct {
	coeffs []float64
}

var _ Evaluator = Polynomial{}

// New builds a polynomial from coefficients in ascending power order.
// The input slice is copied; later changes to it do not leak in.
//
// Errors:
//   - ErrEmptyCoefficients if no coefficient is given.
//   - ErrNonFinite if any coefficient is NaN or ±Inf.
func New(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, ErrEmptyCoefficients
	}
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Polynomial{}, fmt.Errorf("c[%d]=%v: %w", i, c, ErrNonFinite)
		}
	}

	return Polynomial{coeffs: append([]float64(nil), coeffs...)}, nil
}

// Must is New that panics on error. Intended for literals in code and tests.
func Must(coeffs ...float64) Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// Of builds a polynomial from any integer or float coefficient slice.
//
//	polynomial.Of(-4, 0, 1)          // ints
//	polynomial.Of[float32](0.5, 2)   // float32
func Of[T constraints.Integer | constraints.Float](coeffs ...T) (Polynomial, error) {
	fs := make([]float64, len(coeffs))
	for i, c := range coeffs {
		fs[i] = float64(c)
	}

	return New(fs...)
}

// Constant returns the degree-0 polynomial c.
func Constant(c float64) Polynomial {
	return Polynomial{coeffs: []float64{c}}
}

// Identity returns p(x) = x.
func Identity() Polynomial {
	return Polynomial{coeffs: []float64{0, 1}}
}

// Coefficients returns a copy of c[0..n].
func (p Polynomial) Coefficients() []float64 {
	if len(p.coeffs) == 0 {
		return []float64{0}
	}

	return append([]float64(nil), p.coeffs...)
}

// Coefficient returns c[i], or 0 when i is beyond the stored length.
func (p Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}

	return p.coeffs[i]
}

// Len returns the number of stored coefficients (trailing zeros included).
func (p Polynomial) Len() int {
	if len(p.coeffs) == 0 {
		return 1
	}

	return len(p.coeffs)
}

// Degree returns the index of the highest non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	for i := len(p.coeffs) - 1; i > 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}

	return 0
}

// Evaluate returns Σ c[i]·xⁱ using Horner's scheme.
func (p Polynomial) Evaluate(x float64) float64 {
	acc := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}

	return acc
}

// DerivativeEvaluate returns Σ i·c[i]·x^(i−1) for i ≥ 1; the constant term
// contributes nothing. No intermediate polynomial is allocated.
func (p Polynomial) DerivativeEvaluate(x float64) float64 {
	acc := 0.0
	for i := len(p.coeffs) - 1; i >= 1; i-- {
		acc = acc*x + float64(i)*p.coeffs[i]
	}

	return acc
}

// Derivative returns p' as a new polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Constant(0)
	}
	d := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		d[i-1] = float64(i) * p.coeffs[i]
	}

	return Polynomial{coeffs: d}
}

// Trim drops trailing zero coefficients, keeping at least c[0].
func (p Polynomial) Trim() Polynomial {
	n := p.Degree() + 1
	if len(p.coeffs) == 0 {
		return Constant(0)
	}

	return Polynomial{coeffs: append([]float64(nil), p.coeffs[:n]...)}
}

// Equal reports whether p and q agree coefficient-wise within eps.
// Missing coefficients are treated as zero, so trailing zeros never matter.
func (p Polynomial) Equal(q Polynomial, eps float64) bool {
	n := max(len(p.coeffs), len(q.coeffs))
	for i := 0; i < n; i++ {
		if math.Abs(p.Coefficient(i)-q.Coefficient(i)) > eps {
			return false
		}
	}

	return true
}

// String renders p in descending powers, e.g. "4x^2 + 2x - 1".
func (p Polynomial) String() string {
	var sb strings.Builder
	for i := p.Degree(); i >= 0; i-- {
		c := p.Coefficient(i)
		if c == 0 && !(i == 0 && sb.Len() == 0) {
			continue
		}
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		a := math.Abs(c)
		if a != 1 || i == 0 {
			sb.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}
