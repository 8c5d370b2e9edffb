// Package gauss_test contains benchmarks for cached and uncached quadrature.
package gauss_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numanalysis/gauss"
	"github.com/katalvlaran/numanalysis/legendre"
)

// BenchmarkIntegrate_Cached measures the weighted sum with a warm rule.
func BenchmarkIntegrate_Cached(b *testing.B) {
	q, err := gauss.New(math.Exp, 0, 1, 16)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Integrate()
	}
}

// BenchmarkLegendreNew_16 measures a cold rule construction.
func BenchmarkLegendreNew_16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := legendre.New(16); err != nil {
			b.Fatal(err)
		}
	}
}
