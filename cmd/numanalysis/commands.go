package main

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/numanalysis/gauss"
	"github.com/katalvlaran/numanalysis/interpolate"
	"github.com/katalvlaran/numanalysis/legendre"
	"github.com/katalvlaran/numanalysis/lsq"
	"github.com/katalvlaran/numanalysis/polynomial"
	"github.com/katalvlaran/numanalysis/quad"
	"github.com/katalvlaran/numanalysis/root"
)

// runRule prints (and optionally saves) the degree-n rule, or verifies and
// prints a rule loaded from -in.
func runRule(e env, args []string) error {
	fs := newFlagSet("rule", e.errOut)
	n := fs.Int("n", 0, "degree (>= 2)")
	out := fs.String("o", "", "save the rule as YAML to this file")
	in := fs.String("in", "", "load a YAML rule instead of computing one")
	tol := fs.Float64("tol", legendre.DefaultTolerance, "Newton tolerance for the roots")
	weights := fs.String("weights", "trapezoid", "composite rule for the weights: trapezoid|simpson")
	panels := fs.Int("panels", legendre.DefaultSubintervals, "subintervals per weight integral (raise for n > 33)")
	if err := parseArgs(fs, args); err != nil {
		return err
	}

	var (
		l   *legendre.Legendre
		err error
	)
	switch {
	case *in != "":
		rule, lerr := legendre.LoadFile(*in)
		if lerr != nil {
			return lerr
		}
		if l, err = legendre.FromRule(rule); err != nil {
			return err
		}
		e.cache.Put(l)
		e.log.Debug("rule loaded", slog.String("path", *in), slog.Int("degree", l.Degree()))
	case *n != 0:
		integrator, ierr := composite(*weights)
		if ierr != nil {
			return ierr
		}
		if !(*tol > 0) || math.IsInf(*tol, 0) || *panels <= 0 {
			return fmt.Errorf("%w: -tol and -panels must be positive", errUsage)
		}
		start := time.Now()
		l, err = legendre.New(*n,
			legendre.WithTolerance(*tol),
			legendre.WithIntegrator(integrator),
			legendre.WithSubintervals(*panels),
		)
		if err != nil {
			return err
		}
		e.log.Debug("rule computed", slog.Int("degree", *n), slog.Duration("took", time.Since(start)))
	default:
		return fmt.Errorf("%w: one of -n or -in is required", errUsage)
	}

	rule := l.Rule()
	fmt.Fprintf(e.out, "# degree %d, weight sum %.12f, fingerprint %s\n", l.Degree(), rule.WeightSum(), rule.Fingerprint())
	for _, node := range rule.Pairs() {
		fmt.Fprintf(e.out, "%+.15f  %.15f\n", node.X, node.W)
	}

	if *out != "" {
		if err = legendre.SaveFile(*out, rule); err != nil {
			return err
		}
		e.log.Info("rule saved", slog.String("path", *out))
	}
	return nil
}

// composite maps a method name to a composite integrator.
func composite(name string) (quad.Integrator, error) {
	switch name {
	case "trapezoid":
		return quad.Trapezoid, nil
	case "simpson":
		return quad.Simpson, nil
	}
	return nil, fmt.Errorf("%w: unknown composite rule %q", errUsage, name)
}

// runIntegrate integrates the -coef polynomial over [a, b].
func runIntegrate(e env, args []string) error {
	fs := newFlagSet("integrate", e.errOut)
	coef := fs.String("coef", "", "ascending polynomial coefficients, e.g. 0,2,4")
	a := fs.Float64("a", 0, "lower bound")
	b := fs.Float64("b", 1, "upper bound")
	n := fs.Int("n", 5, "gauss degree, or number of subintervals for composite rules")
	method := fs.String("method", "gauss", "gauss|trapezoid|simpson")
	table := fs.String("table", "", "gauss only: use the YAML rule in this file")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	p, err := parsePolynomial(*coef)
	if err != nil {
		return err
	}

	var v float64
	switch *method {
	case "gauss":
		opts := []gauss.Option{gauss.WithCache(e.cache)}
		if *table != "" {
			rule, lerr := legendre.LoadFile(*table)
			if lerr != nil {
				return lerr
			}
			opts = append(opts, gauss.WithRule(rule))
		}
		q, qerr := gauss.New(p.Evaluate, *a, *b, *n, opts...)
		if qerr != nil {
			return qerr
		}
		v = q.Integrate()
		e.log.Debug("gauss", slog.Int("nodes", q.Rule().Len()), slog.String("fingerprint", q.Rule().Fingerprint()))
	case "trapezoid", "simpson":
		integrator, _ := composite(*method)
		if v, err = integrator(p.Evaluate, *a, *b, *n); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown method %q", errUsage, *method)
	}

	fmt.Fprintf(e.out, "%.10g\n", v)
	return nil
}

// runRoots finds one zero of the -coef polynomial.
func runRoots(e env, args []string) error {
	fs := newFlagSet("roots", e.errOut)
	coef := fs.String("coef", "", "ascending polynomial coefficients, e.g. -4,0,1")
	method := fs.String("method", "newton", "newton|secant|bisection")
	guess := fs.Float64("guess", 1, "newton start, or first secant iterate")
	guess2 := fs.Float64("guess2", 0, "second secant iterate (default guess+1)")
	lo := fs.Float64("a", 0, "bisection bracket start")
	hi := fs.Float64("b", 0, "bisection bracket end")
	tol := fs.Float64("tol", 0, "stopping tolerance (0: method default)")
	maxIter := fs.Int("max-iter", root.DefaultMaxIterations, "iteration budget")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	p, err := parsePolynomial(*coef)
	if err != nil {
		return err
	}
	if *maxIter <= 0 {
		return fmt.Errorf("%w: -max-iter must be > 0", errUsage)
	}
	opts := []root.Option{root.WithMaxIterations(*maxIter)}
	if *tol > 0 {
		opts = append(opts, root.WithTolerance(*tol))
	}

	var x float64
	switch *method {
	case "newton":
		x, err = root.Newton(p, *guess, opts...)
	case "secant":
		p1 := *guess2
		if !isSet(fs, "guess2") {
			p1 = *guess + 1
		}
		x, err = root.Secant(p, *guess, p1, opts...)
	case "bisection":
		x, err = root.Bisection(p, *lo, *hi, opts...)
	default:
		return fmt.Errorf("%w: unknown method %q", errUsage, *method)
	}
	if err != nil {
		return err
	}

	e.log.Debug("root found", slog.String("method", *method), slog.Float64("residual", p.Evaluate(x)))
	fmt.Fprintf(e.out, "%.10g\n", x)
	return nil
}

// runFit interpolates or fits (-x, -y) and reports the model.
func runFit(e env, args []string) error {
	fs := newFlagSet("fit", e.errOut)
	xsFlag := fs.String("x", "", "abscissae, comma separated")
	ysFlag := fs.String("y", "", "ordinates, comma separated")
	dysFlag := fs.String("dy", "", "hermite only: derivatives at x")
	method := fs.String("method", "ols", "lagrange|neville|newton|hermite|ols|poly")
	model := fs.String("model", "linear", "ols only: linear|exp|power")
	degree := fs.Int("degree", 1, "poly only: polynomial degree")
	ridge := fs.Float64("ridge", 0, "ols/poly only: ridge penalty λ >= 0")
	at := fs.String("at", "", "evaluate the result at these points")
	plotPath := fs.String("plot", "", "render data and curve to this image (png, svg, pdf)")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	xs, err := parseFloats("x", *xsFlag)
	if err != nil {
		return err
	}
	ys, err := parseFloats("y", *ysFlag)
	if err != nil {
		return err
	}

	var (
		curve func(float64) float64
		label string
	)
	switch *method {
	case "lagrange", "neville", "newton", "hermite":
		in, ierr := interpolator(*method, xs, ys, *dysFlag)
		if ierr != nil {
			return ierr
		}
		p, perr := polynomial.New(chop(in.Polynomial().Coefficients())...)
		if perr != nil {
			return perr
		}
		label = *method
		curve = in.At
		fmt.Fprintf(e.out, "%s: p(x) = %s\n", label, p.Trim())
	case "ols", "poly":
		if *ridge < 0 || math.IsNaN(*ridge) || math.IsInf(*ridge, 0) {
			return fmt.Errorf("%w: -ridge must be finite and >= 0", errUsage)
		}
		var fit *lsq.Fit
		if *method == "ols" {
			m, merr := lsq.ParseModel(*model)
			if merr != nil {
				return fmt.Errorf("%w: %w", errUsage, merr)
			}
			fit, err = lsq.OLS(xs, ys, m, lsq.WithRidge(*ridge))
		} else {
			fit, err = lsq.PolyRegression(xs, ys, *degree, lsq.WithRidge(*ridge))
		}
		if err != nil {
			return err
		}
		label = fit.Model()
		curve = fit.Predict
		fmt.Fprintf(e.out, "%s: %s\n", label, fit)
		fmt.Fprintf(e.out, "coefficients %s\n", formatFloats(fit.Coefficients()))
		if se, serr := fit.StdErrors(); serr == nil {
			fmt.Fprintf(e.out, "std errors %s\n", formatFloats(se))
		} else {
			e.log.Debug("no standard errors", slog.String("reason", serr.Error()))
		}
		fmt.Fprintf(e.out, "MSE %.6g  RMSE %.6g  R² %.6f\n", fit.MSE(), fit.RMSE(), fit.RSquared())
	default:
		return fmt.Errorf("%w: unknown method %q", errUsage, *method)
	}

	if *at != "" {
		points, perr := parseFloats("at", *at)
		if perr != nil {
			return perr
		}
		for _, x := range points {
			fmt.Fprintf(e.out, "f(%g) = %.10g\n", x, curve(x))
		}
	}

	if *plotPath != "" {
		if err = savePlot(*plotPath, label, xs, ys, curve); err != nil {
			return err
		}
		e.log.Info("plot saved", slog.String("path", *plotPath))
	}
	return nil
}

func interpolator(method string, xs, ys []float64, dys string) (interpolate.Interpolator, error) {
	switch method {
	case "lagrange":
		return interpolate.NewLagrange(xs, ys)
	case "neville":
		return interpolate.NewNeville(xs, ys)
	case "newton":
		return interpolate.NewNewtonDivided(xs, ys)
	}
	d, err := parseFloats("dy", dys)
	if err != nil {
		return nil, err
	}
	return interpolate.NewHermite(xs, ys, d)
}
