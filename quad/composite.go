package quad

import "fmt"

// Integrator is a fixed-step composite rule: it approximates ∫ₐᵇ f(x) dx
// using n equal subintervals. Trapezoid and Simpson satisfy it.
type Integrator func(f func(float64) float64, a, b float64, n int) (float64, error)

var (
	_ Integrator = Trapezoid
	_ Integrator = Simpson
)

// Trapezoid is the composite trapezoid rule with n subintervals:
//
//	h = (b − a)/n
//	∫ₐᵇ f ≈ h/2 · (f(a) + f(b) + 2·Σ_{i=1}^{n−1} f(a + i·h))
//
// It is exact for polynomials of degree ≤ 1. a == b yields 0.
//
// Errors: ErrNilFunction, ErrInvalidPartition (n ≤ 0).
func Trapezoid(f func(float64) float64, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}
	if n <= 0 {
		return 0, fmt.Errorf("Trapezoid: n=%d: %w", n, ErrInvalidPartition)
	}

	h := (b - a) / float64(n)
	ends := f(a) + f(b)
	inner := 0.0
	for i := 1; i < n; i++ {
		inner += f(a + float64(i)*h)
	}

	return h / 2 * (ends + 2*inner), nil
}

// Simpson is the composite Simpson rule with an even number n of subintervals:
//
//	∫ₐᵇ f ≈ h/3 · (f(a) + f(b) + 4·Σ_odd f(xᵢ) + 2·Σ_even f(xᵢ))
//
// It is exact for polynomials of degree ≤ 3. a == b yields 0.
//
// Errors: ErrNilFunction, ErrInvalidPartition (n ≤ 0 or n odd).
func Simpson(f func(float64) float64, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}
	if n <= 0 || n%2 != 0 {
		return 0, fmt.Errorf("Simpson: n=%d must be positive and even: %w", n, ErrInvalidPartition)
	}

	h := (b - a) / float64(n)
	ends := f(a) + f(b)
	odd, even := 0.0, 0.0
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			even += f(x)
		} else {
			odd += f(x)
		}
	}

	return h / 3 * (ends + 2*even + 4*odd), nil
}
