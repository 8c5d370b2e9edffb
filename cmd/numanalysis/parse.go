package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numanalysis/polynomial"
)

// errUsage marks a bad command line; run maps it to exit code 2.
var errUsage = errors.New("invalid usage")

// newFlagSet returns a ContinueOnError set writing diagnostics to w.
func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// parseArgs parses args into fs and folds flag errors into errUsage.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}
	return nil
}

// parseFloats splits "1, 2.5,-3" into numbers. Empty input is an error.
func parseFloats(name, s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: -%s is required", errUsage, name)
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: -%s[%d]: %w", errUsage, name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// parsePolynomial reads ascending coefficients from the -coef flag value.
func parsePolynomial(s string) (polynomial.Polynomial, error) {
	cs, err := parseFloats("coef", s)
	if err != nil {
		return polynomial.Polynomial{}, err
	}
	p, err := polynomial.New(cs...)
	if err != nil {
		return polynomial.Polynomial{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	return p, nil
}

// chop zeroes coefficients below 1e-12 of the largest one, hiding
// round-off left by interpolation.
func chop(cs []float64) []float64 {
	maxAbs := 0.0
	for _, c := range cs {
		maxAbs = math.Max(maxAbs, math.Abs(c))
	}
	out := make([]float64, len(cs))
	for i, c := range cs {
		if math.Abs(c) > 1e-12*maxAbs {
			out[i] = c
		}
	}
	return out
}

// formatFloats renders vs as "[v0 v1 ...]" with 10 significant digits.
func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', 10, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// isSet reports whether the flag was given explicitly.
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
