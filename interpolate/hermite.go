package interpolate

import (
	"fmt"

	"github.com/katalvlaran/numanalysis/polynomial"
)

// Hermite interpolates values and first derivatives: the result H of degree
// ≤ 2n − 1 satisfies H(xᵢ) = yᵢ and H'(xᵢ) = y'ᵢ.
//
// It is the divided-difference scheme on the doubled nodes
// z = (x₀, x₀, x₁, x₁, …), where the undefined f[xᵢ, xᵢ] is taken as y'ᵢ.
type Hermite struct {
	table
	dys  []float64
	z    []float64
	coef []float64
}

// NewHermite validates the data and builds the doubled-node table.
func NewHermite(xs, ys, dys []float64) (*Hermite, error) {
	t, err := newTable(xs, ys)
	if err != nil {
		return nil, err
	}
	if len(dys) != len(xs) {
		return nil, fmt.Errorf("len(x)=%d, len(y')=%d: %w", len(xs), len(dys), ErrLengthMismatch)
	}
	if err := finite("y'", dys); err != nil {
		return nil, err
	}

	h := &Hermite{table: t, dys: append([]float64(nil), dys...)}
	h.build()
	return h, nil
}

// build fills z and the diagonal of the 2n×2n divided-difference table.
func (h *Hermite) build() {
	n := len(h.xs)
	m := 2 * n
	h.z = make([]float64, m)
	q := make([][]float64, m)
	for i := range q {
		q[i] = make([]float64, m)
	}

	for i := 0; i < n; i++ {
		h.z[2*i], h.z[2*i+1] = h.xs[i], h.xs[i]
		q[2*i][0], q[2*i+1][0] = h.ys[i], h.ys[i]
		q[2*i+1][1] = h.dys[i]
		if i > 0 {
			q[2*i][1] = (q[2*i][0] - q[2*i-1][0]) / (h.z[2*i] - h.z[2*i-1])
		}
	}
	for i := 2; i < m; i++ {
		for j := 2; j <= i; j++ {
			q[i][j] = (q[i][j-1] - q[i-1][j-1]) / (h.z[i] - h.z[i-j])
		}
	}

	h.coef = make([]float64, m)
	for i := range h.coef {
		h.coef[i] = q[i][i]
	}
}

// At evaluates the nested form over the doubled nodes.
func (h *Hermite) At(x float64) float64 {
	n := len(h.coef) - 1
	p := h.coef[n]
	for k := n - 1; k >= 0; k-- {
		p = h.coef[k] + (x-h.z[k])*p
	}
	return p
}

// Polynomial expands the nested form.
func (h *Hermite) Polynomial() polynomial.Polynomial {
	return nested(h.coef, h.z)
}
