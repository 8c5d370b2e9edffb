// Package quad_test contains benchmarks for the composite rules and fingerprints.
package quad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numanalysis/quad"
)

func BenchmarkTrapezoid_1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = quad.Trapezoid(math.Sin, 0, math.Pi, 1000)
	}
}

func BenchmarkSimpson_1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = quad.Simpson(math.Sin, 0, math.Pi, 1000)
	}
}

func BenchmarkFingerprint_64(b *testing.B) {
	nodes := make([]float64, 64)
	weights := make([]float64, 64)
	for i := range nodes {
		nodes[i] = -1 + float64(i)/32
		weights[i] = 1.0 / 32
	}
	r, err := quad.NewRule(nodes, weights)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Fingerprint()
	}
}
