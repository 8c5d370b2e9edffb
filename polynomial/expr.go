package polynomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Indeterminate is the only free symbol FromExpr accepts.
const Indeterminate = "x"

// Expr is a node of a small expression tree that FromExpr can normalize
// into coefficient form. Any value may satisfy Expr (a Polynomial does, and
// is taken as-is); FromExpr rejects node kinds it does not know with
// ErrNotPolynomial.
type Expr interface {
	String() string
}

type (
	// Const is a numeric literal.
	Const float64

	// Sym is a named symbol. Only Sym(Indeterminate) is polynomial.
	Sym string

	// Sum is e₁ + e₂ + … (an empty Sum is 0).
	Sum []Expr

	// Product is e₁ · e₂ · … (an empty Product is 1).
	Product []Expr

	// Power is Base^Exp; Exp must be a non-negative integer.
	Power struct {
		Base Expr
		Exp  float64
	}

	// Quotient is Num / Den; Den must normalize to a non-zero constant.
	Quotient struct {
		Num, Den Expr
	}

	// Call is a named function application, e.g. sin(x). Never polynomial
	// unless its argument is constant and Name is one of the elementary
	// functions below.
	Call struct {
		Name string
		Arg  Expr
	}
)

// X is the indeterminate as an expression node.
var X = Sym(Indeterminate)

// Linear returns the node (x − r), the building block of product forms.
func Linear(r float64) Expr {
	return Sum{X, Const(-r)}
}

func (c Const) String() string { return strconv.FormatFloat(float64(c), 'g', -1, 64) }
func (s Sym) String() string   { return string(s) }
func (s Sum) String() string   { return joinExpr([]Expr(s), " + ", "0") }
func (p Product) String() string {
	return joinExpr([]Expr(p), "*", "1")
}
func (p Power) String() string {
	return fmt.Sprintf("(%v)^%s", p.Base, strconv.FormatFloat(p.Exp, 'g', -1, 64))
}
func (q Quotient) String() string { return fmt.Sprintf("(%v)/(%v)", q.Num, q.Den) }
func (c Call) String() string     { return fmt.Sprintf("%s(%v)", c.Name, c.Arg) }

func joinExpr(es []Expr, sep, empty string) string {
	if len(es) == 0 {
		return empty
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = "(" + fmt.Sprint(e) + ")"
	}

	return strings.Join(parts, sep)
}

// constant-argument functions that Call may fold.
var elementary = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// FromExpr expands e into coefficient form: products are multiplied out,
// like powers collected, constant quotients folded.
//
// Errors (all wrap ErrNotPolynomial):
//   - nil expression or unknown node type;
//   - a symbol other than Indeterminate;
//   - Power with a negative, fractional or non-finite exponent;
//   - Quotient whose denominator depends on x or is zero;
//   - Call on an argument that depends on x, or with an unknown name.
//
// Complexity: O(size(e) · d²) where d is the resulting degree.
func FromExpr(e Expr) (Polynomial, error) {
	p, err := normalize(e)
	if err != nil {
		return Polynomial{}, err
	}
	for i, c := range p.coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Polynomial{}, fmt.Errorf("%v: c[%d]=%v: %w", e, i, c, ErrNonFinite)
		}
	}

	return p.Trim(), nil
}

// normalize is the recursive expansion behind FromExpr.
func normalize(e Expr) (Polynomial, error) {
	switch v := e.(type) {
	case nil:
		return Polynomial{}, fmt.Errorf("nil expression: %w", ErrNotPolynomial)

	case Const:
		return Constant(float64(v)), nil

	case Polynomial:
		return v, nil

	case Sym:
		if v != Indeterminate {
			return Polynomial{}, fmt.Errorf("free symbol %q: %w", string(v), ErrNotPolynomial)
		}
		return Identity(), nil

	case Sum:
		acc := Constant(0)
		for _, t := range v {
			q, err := normalize(t)
			if err != nil {
				return Polynomial{}, err
			}
			acc = acc.Add(q)
		}
		return acc, nil

	case Product:
		acc := Constant(1)
		for _, f := range v {
			q, err := normalize(f)
			if err != nil {
				return Polynomial{}, err
			}
			acc = acc.Mul(q).Trim()
		}
		return acc, nil

	case Power:
		if v.Exp < 0 || v.Exp != math.Trunc(v.Exp) || math.IsInf(v.Exp, 0) {
			return Polynomial{}, fmt.Errorf("exponent %v: %w", v.Exp, ErrNotPolynomial)
		}
		base, err := normalize(v.Base)
		if err != nil {
			return Polynomial{}, err
		}
		acc := Constant(1)
		for k := 0; k < int(v.Exp); k++ {
			acc = acc.Mul(base).Trim()
		}
		return acc, nil

	case Quotient:
		num, err := normalize(v.Num)
		if err != nil {
			return Polynomial{}, err
		}
		den, err := normalize(v.Den)
		if err != nil {
			return Polynomial{}, err
		}
		if den.Degree() > 0 {
			return Polynomial{}, fmt.Errorf("denominator %v depends on x: %w", v.Den, ErrNotPolynomial)
		}
		d := den.Coefficient(0)
		if d == 0 {
			return Polynomial{}, fmt.Errorf("division by zero in %v: %w", v, ErrNotPolynomial)
		}
		return num.Scale(1 / d), nil

	case Call:
		fn, ok := elementary[v.Name]
		if !ok {
			return Polynomial{}, fmt.Errorf("unknown function %q: %w", v.Name, ErrNotPolynomial)
		}
		arg, err := normalize(v.Arg)
		if err != nil {
			return Polynomial{}, err
		}
		if arg.Degree() > 0 {
			return Polynomial{}, fmt.Errorf("%s of non-constant argument: %w", v.Name, ErrNotPolynomial)
		}
		return Constant(fn(arg.Coefficient(0))), nil
	}

	return Polynomial{}, fmt.Errorf("unsupported node %T: %w", e, ErrNotPolynomial)
}
