package legendre

import "github.com/katalvlaran/numanalysis/polynomial"

// recurrence evaluates Pₙ and Pₙ' directly from Bonnet's three-term
// recurrence instead of the expanded monomial coefficients, whose
// alternating terms cancel for large n.
type recurrence int

var _ polynomial.Evaluator = recurrence(0)

// pair returns (Pₙ(x), Pₙ₋₁(x)).
func (n recurrence) pair(x float64) (float64, float64) {
	prev, cur := 1.0, x
	if n == 0 {
		return prev, 0
	}
	for k := 2; k <= int(n); k++ {
		prev, cur = cur, (float64(2*k-1)*x*cur-float64(k-1)*prev)/float64(k)
	}

	return cur, prev
}

// Evaluate returns Pₙ(x).
func (n recurrence) Evaluate(x float64) float64 {
	p, _ := n.pair(x)
	return p
}

// DerivativeEvaluate returns Pₙ'(x) = n·(x·Pₙ − Pₙ₋₁)/(x² − 1).
// At x = ±1 the closed form (±1)ⁿ⁻¹·n(n+1)/2 is used.
func (n recurrence) DerivativeEvaluate(x float64) float64 {
	if n == 0 {
		return 0
	}
	k := float64(n)
	if x == 1 || x == -1 {
		d := k * (k + 1) / 2
		if x < 0 && n%2 == 0 {
			d = -d
		}
		return d
	}
	p, q := n.pair(x)

	return k * (x*p - q) / (x*x - 1)
}

// Coefficients returns the expanded coefficients of Pₙ.
func (n recurrence) Coefficients() []float64 {
	return Polynomial(int(n)).Coefficients()
}
