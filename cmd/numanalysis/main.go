// Command numanalysis runs the library's numerical methods from the shell.
//
// Usage:
//
//	numanalysis [-v] <command> [flags]
//
// Commands:
//
//	rule       Gauss-Legendre roots and weights of degree n (optionally saved as YAML)
//	integrate  integrate a polynomial by gauss, trapezoid or simpson
//	roots      find a zero of a polynomial by newton, secant or bisection
//	fit        interpolate or least-squares fit tabulated data, optionally plotted
//
// Polynomials are given as comma-separated coefficients in ascending power
// order: "-4,0,1" is x² − 4. Logs go to stderr; -v enables debug output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/katalvlaran/numanalysis/legendre"
)

// env carries what every command needs.
type env struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	cache  *legendre.Cache
}

type command struct {
	summary string
	run     func(e env, args []string) error
}

var commands = map[string]command{
	"rule":      {"Gauss-Legendre roots and weights", runRule},
	"integrate": {"integrate a polynomial over [a, b]", runIntegrate},
	"roots":     {"find a zero of a polynomial", runRoots},
	"fit":       {"interpolate or least-squares fit data", runFit},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code:
// 0 success, 1 command failure, 2 usage error.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numanalysis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}
	name := rest[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "numanalysis: unknown command %q\n", name)
		fs.Usage()
		return 2
	}

	e := env{
		out:    stdout,
		errOut: stderr,
		log:    logger.With(slog.String("command", name)),
		cache:  legendre.NewCache(legendre.WithLogger(logger)),
	}
	if err := cmd.run(e, rest[1:]); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			fmt.Fprintf(stderr, "numanalysis %s: %v\n", name, err)
			return 2
		}
		e.log.Error("command failed", slog.Any("err", err))
		return 1
	}

	return 0
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: numanalysis [-v] <command> [flags]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}
