// Package legendre_test contains unit tests for YAML persistence of rules.
package legendre_test

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/katalvlaran/numanalysis/legendre"
	"github.com/katalvlaran/numanalysis/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryLine = regexp.MustCompile(`^"[-+0-9.e]+": "[-+0-9.e]+"$`)

// TestSave_Format writes one quoted "root": "weight" pair per line in
// ascending root order.
func TestSave_Format(t *testing.T) {
	l, err := legendre.New(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, legendre.Save(&buf, l.Rule()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Regexp(t, entryLine, line)
	}
	assert.True(t, strings.HasPrefix(lines[0], `"-`), "first root is negative")
}

// TestSaveLoad_BitExact: shortest float formatting survives a reload.
func TestSaveLoad_BitExact(t *testing.T) {
	l, err := legendre.New(6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, legendre.Save(&buf, l.Rule()))
	got, err := legendre.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, l.Rule().Fingerprint(), got.Fingerprint())
}

// TestLoad_Unordered accepts entries in any order.
func TestLoad_Unordered(t *testing.T) {
	rule, err := legendre.Load(strings.NewReader("\"0.5\": \"1\"\n\"-0.5\": \"1\"\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, 0.5}, rule.Nodes())
}

// TestLoad_Malformed covers every rejected table shape.
func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"sequence":  "- 1\n- 2\n",
		"scalar":    "hello\n",
		"bad root":  "\"abc\": \"1\"\n",
		"bad value": "\"0.5\": \"x\"\n",
		"duplicate": "\"0.5\": \"1\"\n\"5e-1\": \"1\"\n",
		"syntax":    "\"0.5\": [\n",
	}
	for name, in := range cases {
		_, err := legendre.Load(strings.NewReader(in))
		assert.ErrorIs(t, err, legendre.ErrMalformedTable, name)
	}
}

// TestSaveFile_LoadFile round-trips through disk and back into a cache.
func TestSaveFile_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legendre4.yaml")
	l, err := legendre.New(4)
	require.NoError(t, err)

	require.NoError(t, legendre.SaveFile(path, l.Rule()))
	rule, err := legendre.LoadFile(path)
	require.NoError(t, err)

	restored, err := legendre.FromRule(rule)
	require.NoError(t, err)
	assert.Equal(t, 4, restored.Degree())
	assert.True(t, restored.Polynomial().Equal(l.Polynomial(), 0))

	c := legendre.NewCache(legendre.WithLogger(quietLogger()))
	c.Put(restored)
	got, err := c.Get(4)
	require.NoError(t, err)
	assert.Equal(t, l.Rule().Fingerprint(), got.Rule().Fingerprint())

	_, err = legendre.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestFromRule_TooSmall rejects a one-node rule.
func TestFromRule_TooSmall(t *testing.T) {
	r, err := quad.NewRule([]float64{0}, []float64{2})
	require.NoError(t, err)
	_, err = legendre.FromRule(r)
	assert.ErrorIs(t, err, legendre.ErrInvalidDegree)
}
