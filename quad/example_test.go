// Package quad_test contains runnable examples for the quad package.
package quad_test

import (
	"fmt"

	"github.com/katalvlaran/numanalysis/quad"
)

// ExampleSimpson integrates x² on [0, 3]; Simpson is exact for it.
func ExampleSimpson() {
	v, err := quad.Simpson(func(x float64) float64 { return x * x }, 0, 3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", v)
	// Output:
	// 9.000000
}

// ExampleTrapezoid shows the O(h²) error of the trapezoid rule on x².
func ExampleTrapezoid() {
	v, err := quad.Trapezoid(func(x float64) float64 { return x * x }, 0, 3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", v)
	// Output:
	// 9.50
}

// ExampleNewRule builds the two-point Gauss-Legendre rule by hand.
func ExampleNewRule() {
	r, err := quad.NewRule([]float64{-0.5773502691896257, 0.5773502691896257}, []float64{1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range r.Pairs() {
		fmt.Printf("%+.4f %.1f\n", n.X, n.W)
	}
	// Output:
	// -0.5774 1.0
	// +0.5774 1.0
}
