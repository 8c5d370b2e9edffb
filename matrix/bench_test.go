// SPDX-License-Identifier: MIT
// Package matrix_test contains benchmarks for the dense kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numanalysis/matrix"
)

func BenchmarkMul_64(b *testing.B) {
	x, _ := randomDense(b, 64, 64, 1)
	y, _ := randomDense(b, 64, 64, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Mul(x, y)
	}
}

func BenchmarkSolve_32(b *testing.B) {
	a, _ := spd(b, 32, 3)
	rhs := make([]float64, 32)
	for i := range rhs {
		rhs[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Solve(a, rhs)
	}
}
