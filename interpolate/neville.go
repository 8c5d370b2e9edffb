package interpolate

import "github.com/katalvlaran/numanalysis/polynomial"

// Neville evaluates the interpolant by Neville's iterated table:
//
//	Q[j][0] = yⱼ
//	Q[j][i] = ((x − x_{j−i})·Q[j][i−1] − (x − xⱼ)·Q[j−1][i−1]) / (xⱼ − x_{j−i})
//
// and returns Q[n−1][n−1].
type Neville struct {
	table
}

// NewNeville validates and copies the data.
func NewNeville(xs, ys []float64) (*Neville, error) {
	t, err := newTable(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Neville{table: t}, nil
}

// At runs the table in place on one column, O(n²) time and O(n) space.
func (nv *Neville) At(x float64) float64 {
	q := append([]float64(nil), nv.ys...)
	n := len(q)
	for i := 1; i < n; i++ {
		// walk downward so q[j-1] still holds column i−1
		for j := n - 1; j >= i; j-- {
			q[j] = ((x-nv.xs[j-i])*q[j] - (x-nv.xs[j])*q[j-1]) / (nv.xs[j] - nv.xs[j-i])
		}
	}
	return q[n-1]
}

// Polynomial runs the same table with polynomial entries.
func (nv *Neville) Polynomial() polynomial.Polynomial {
	n := len(nv.ys)
	q := make([]polynomial.Polynomial, n)
	for j, y := range nv.ys {
		q[j] = polynomial.Constant(y)
	}
	for i := 1; i < n; i++ {
		for j := n - 1; j >= i; j-- {
			lo, hi := nv.xs[j-i], nv.xs[j]
			q[j] = q[j].MulLinear(lo).Sub(q[j-1].MulLinear(hi)).Scale(1 / (hi - lo))
		}
	}
	return q[n-1].Trim()
}
