// Package legendre_test contains runnable examples for the legendre package.
package legendre_test

import (
	"fmt"

	"github.com/katalvlaran/numanalysis/legendre"
)

// ExamplePolynomial prints P₃ = 2.5x³ − 1.5x.
func ExamplePolynomial() {
	fmt.Println(legendre.Polynomial(3))
	// Output:
	// 2.5x^3 - 1.5x
}

// ExampleNew lists the three-point rule.
func ExampleNew() {
	l, err := legendre.New(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range l.RootsAndWeights() {
		fmt.Printf("% .4f  %.3f\n", n.X, n.W)
	}
	// Output:
	// -0.7746  0.556
	//  0.0000  0.889
	//  0.7746  0.556
}
