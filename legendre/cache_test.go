// Package legendre_test contains unit tests for the rule cache: compute-once
// under concurrency, error handling, seeding and logging.
package legendre_test

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/numanalysis/legendre"
	"github.com/katalvlaran/numanalysis/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestCache_ComputesOnce hammers one degree from many goroutines and counts
// weight integrations: one construction of degree n integrates n bases.
func TestCache_ComputesOnce(t *testing.T) {
	const (
		degree  = 8
		callers = 32
	)
	var calls atomic.Int64
	counting := func(f func(float64) float64, a, b float64, n int) (float64, error) {
		calls.Add(1)
		return quad.Trapezoid(f, a, b, n)
	}
	c := legendre.NewCache(
		legendre.WithLogger(quietLogger()),
		legendre.WithRuleOptions(legendre.WithIntegrator(counting)),
	)

	var (
		wg  sync.WaitGroup
		got = make([]*legendre.Legendre, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l, err := c.Get(degree)
			assert.NoError(t, err)
			got[i] = l
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(degree), calls.Load())
	for _, l := range got {
		assert.Same(t, got[0], l)
	}
	assert.Equal(t, 1, c.Len())
}

// TestCache_ErrorsNotStored: a failed degree is retried, not memoized.
func TestCache_ErrorsNotStored(t *testing.T) {
	c := legendre.NewCache(legendre.WithLogger(quietLogger()))
	_, err := c.Get(1)
	assert.ErrorIs(t, err, legendre.ErrInvalidDegree)
	assert.Zero(t, c.Len())
}

// TestCache_PutReset seeds and clears the cache.
func TestCache_PutReset(t *testing.T) {
	c := legendre.NewCache(legendre.WithLogger(quietLogger()))
	l, err := legendre.New(3)
	require.NoError(t, err)

	c.Put(l)
	c.Put(nil)
	got, err := c.Get(3)
	require.NoError(t, err)
	assert.Same(t, l, got)

	c.Reset()
	assert.Zero(t, c.Len())
}

// TestCache_LogsComputation checks the debug record of a fresh degree.
func TestCache_LogsComputation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := legendre.NewCache(legendre.WithLogger(logger))

	_, err := c.Get(4)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "rule computed")
	assert.Contains(t, out, "component=legendre.cache")
	assert.Contains(t, out, "degree=4")
}

// TestShared returns one process-wide instance.
func TestShared(t *testing.T) {
	assert.Same(t, legendre.Shared(), legendre.Shared())
}
