package polynomial

// Closed coefficient algebra. These routines replace symbolic expansion:
// a Lagrange basis is a chain of MulLinear + Scale, a Legendre step is
// MulLinear(0) + Scale + Sub.

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return combine(p, q, 1)
}

// Sub returns p − q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return combine(p, q, -1)
}

// combine computes p + sign·q on a fresh slice sized to the longer operand.
func combine(p, q Polynomial, sign float64) Polynomial {
	n := max(p.Len(), q.Len())
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i) + sign*q.Coefficient(i)
	}

	return Polynomial{coeffs: out}
}

// Scale returns α·p.
func (p Polynomial) Scale(alpha float64) Polynomial {
	out := p.Coefficients()
	for i := range out {
		out[i] *= alpha
	}

	return Polynomial{coeffs: out}
}

// Mul returns the product p·q by direct convolution of coefficients.
// Complexity: O(len(p)·len(q)).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	a, b := p.Coefficients(), q.Coefficients()
	out := make([]float64, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j] += ai * bj
		}
	}

	return Polynomial{coeffs: out}
}

// MulLinear returns p·(x − r). It is the single-factor step used to build
// products over root sets in O(n) per factor.
func (p Polynomial) MulLinear(r float64) Polynomial {
	a := p.Coefficients()
	out := make([]float64, len(a)+1)
	for i, ai := range a {
		out[i+1] += ai   // ai·x^(i+1)
		out[i] -= r * ai // −r·ai·x^i
	}

	return Polynomial{coeffs: out}
}

// FromRoots returns Π (x − rᵢ). With no roots it returns the constant 1.
func FromRoots(roots ...float64) Polynomial {
	p := Constant(1)
	for _, r := range roots {
		p = p.MulLinear(r)
	}

	return p
}
