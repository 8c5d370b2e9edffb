package interpolate

import "github.com/katalvlaran/numanalysis/polynomial"

// Lagrange interpolates through the cardinal basis
//
//	P(x) = Σ yᵢ · Π_{j≠i} (x − xⱼ)/(xᵢ − xⱼ)
type Lagrange struct {
	table
}

// NewLagrange validates and copies the data.
func NewLagrange(xs, ys []float64) (*Lagrange, error) {
	t, err := newTable(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Lagrange{table: t}, nil
}

// At evaluates P(x) term by term.
func (l *Lagrange) At(x float64) float64 {
	sum := 0.0
	for i, xi := range l.xs {
		term := l.ys[i]
		for j, xj := range l.xs {
			if j != i {
				term *= (x - xj) / (xi - xj)
			}
		}
		sum += term
	}
	return sum
}

// Polynomial expands every basis with MulLinear and sums them.
func (l *Lagrange) Polynomial() polynomial.Polynomial {
	p := polynomial.Constant(0)
	for i, xi := range l.xs {
		basis := polynomial.Constant(1)
		denom := 1.0
		for j, xj := range l.xs {
			if j == i {
				continue
			}
			basis = basis.MulLinear(xj)
			denom *= xi - xj
		}
		p = p.Add(basis.Scale(l.ys[i] / denom))
	}
	return p.Trim()
}
