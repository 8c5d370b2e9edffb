// Package root_test contains runnable examples for the root package.
package root_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numanalysis/polynomial"
	"github.com/katalvlaran/numanalysis/root"
)

// ExampleNewton finds √2 as the positive root of x² − 2.
func ExampleNewton() {
	p := polynomial.Must(-2, 0, 1)
	r, err := root.Newton(p, 1, root.WithTolerance(1e-12))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.10f\n", r)
	// Output:
	// 1.4142135624
}

// ExampleNewton_singular shows the dedicated failure for a zero derivative.
func ExampleNewton_singular() {
	p := polynomial.Must(-4, 0, 1)
	_, err := root.Newton(p, 0)
	fmt.Println(errors.Is(err, root.ErrSingularDerivative))
	// Output:
	// true
}

// ExampleBisection brackets the root of x³ − x − 2 on [1, 2].
func ExampleBisection() {
	p := polynomial.Must(-2, -1, 0, 1)
	r, err := root.Bisection(p, 1, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", r)
	// Output:
	// 1.521380
}
