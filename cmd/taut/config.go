package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/DjordjeVuckovic/taut-hunter/internal/check"
	"github.com/mattn/go-isatty"
)

type cliConfig struct {
	SuitePath   string
	JSONOut     string
	Workers     int
	Concurrency int
	Runs        int
	MaxVars     int
	Tree        bool
	Color       string
	Store       bool
	Verbose     bool
	Formulas    []string
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("taut", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: taut [flags] [FORMULA...]\n\n")
		fmt.Fprintf(fs.Output(), "Checks each FORMULA, or the bundled classic suite when none is given.\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.SuitePath, "suite", "", "Path to a suite YAML file")
	fs.StringVar(&cfg.JSONOut, "json", "", "Write a JSON report of the suite run to this path")
	fs.IntVar(&cfg.Workers, "workers", check.DefaultWorkers, "Goroutines per truth table (1 evaluates sequentially)")
	fs.IntVar(&cfg.Concurrency, "concurrency", runtime.NumCPU(), "Suite formulas checked at once")
	fs.IntVar(&cfg.Runs, "runs", 1, "Timed checks per suite formula")
	fs.IntVar(&cfg.MaxVars, "max-vars", check.DefaultMaxVars, "Maximum number of variables per formula (at most 26)")
	fs.BoolVar(&cfg.Tree, "tree", false, "Print the syntax tree of each formula")
	fs.StringVar(&cfg.Color, "color", "auto", "Colour output: auto, always or never")
	fs.BoolVar(&cfg.Store, "store", false, "Persist checks to the backend selected by STORAGE_TYPE")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Formulas = fs.Args()

	if cfg.SuitePath != "" && len(cfg.Formulas) > 0 {
		return cfg, fmt.Errorf("-suite cannot be combined with formula arguments")
	}
	if cfg.JSONOut != "" && len(cfg.Formulas) > 0 {
		return cfg, fmt.Errorf("-json is only supported for suite runs")
	}
	if cfg.MaxVars < 1 || cfg.MaxVars > 26 {
		return cfg, fmt.Errorf("-max-vars must be between 1 and 26, got %d", cfg.MaxVars)
	}
	if cfg.Workers < 1 {
		return cfg, fmt.Errorf("-workers must be positive, got %d", cfg.Workers)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("-color must be auto, always or never, got %q", cfg.Color)
	}

	return cfg, nil
}

func (c cliConfig) checkConfig() check.Config {
	return check.Config{MaxVars: c.MaxVars, Workers: c.Workers}
}

// colored resolves -color against w. auto colours terminals unless NO_COLOR is set.
func (c cliConfig) colored(w io.Writer) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
