package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/DjordjeVuckovic/taut-hunter/configs/suites"
	"github.com/DjordjeVuckovic/taut-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/taut-hunter/internal/check"
	"github.com/DjordjeVuckovic/taut-hunter/internal/formula"
	"github.com/DjordjeVuckovic/taut-hunter/internal/report"
	"github.com/DjordjeVuckovic/taut-hunter/internal/runner"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/taut-hunter/internal/suite"
	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	var store storage.Store
	if cfg.Store {
		store, err = openStore(ctx)
		if err != nil {
			slog.Error("Failed to open storage", "error", err)
			return 1
		}
		defer store.Close()
	}

	if len(cfg.Formulas) > 0 {
		return checkFormulas(ctx, cfg, store, stdout)
	}
	return runSuite(ctx, cfg, store, stdout)
}

func openStore(ctx context.Context) (storage.Store, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}
	backend, err := factory.NewBackend(ctx, storageCfg)
	if err != nil {
		return nil, err
	}
	return backend.Store, nil
}

func checkFormulas(ctx context.Context, cfg cliConfig, store storage.Store, w io.Writer) int {
	var opts []check.Option
	if store != nil {
		opts = append(opts, check.WithStorer(store))
	}
	checker := check.New(cfg.checkConfig(), opts...)

	var (
		colored = cfg.colored(w)
		green   = color.New(color.FgGreen, color.Bold)
		red     = color.New(color.FgRed, color.Bold)
		yellow  = color.New(color.FgYellow)
	)
	for _, c := range []*color.Color{green, red, yellow} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	code := 0
	for _, input := range cfg.Formulas {
		result, err := checker.Check(ctx, input)
		if err != nil {
			fmt.Fprintf(w, "%s %s\n", yellow.Sprint("error"), err)
			var ve *apperr.ValidationError
			if errors.As(err, &ve) && ve.Pos >= 0 {
				fmt.Fprintf(w, "  %s\n  %s^\n", input, strings.Repeat(" ", ve.Pos))
			}
			code = 1
			continue
		}

		if result.IsTautology() {
			fmt.Fprintf(w, "%s %s\n", green.Sprint(result.Verdict), result.Canonical)
		} else {
			fmt.Fprintf(w, "%s %s\n  counterexample: %s\n",
				red.Sprint(result.Verdict), result.Canonical, report.FormatWitness(result.Witness))
		}

		if cfg.Tree {
			e, err := checker.Parse(input)
			if err == nil {
				fmt.Fprint(w, indent(formula.Tree(e), "  "))
			}
		}
	}
	return code
}

func runSuite(ctx context.Context, cfg cliConfig, store storage.Store, w io.Writer) int {
	var (
		s   *suite.Suite
		err error
	)
	if cfg.SuitePath != "" {
		s, err = suite.LoadFromFile(cfg.SuitePath)
	} else {
		s, err = suite.Parse(suites.Classic)
	}
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 1
	}

	var opts []runner.Option
	if store != nil {
		opts = append(opts, runner.WithStorer(store))
	}
	r := runner.New(runner.Config{
		Concurrency: cfg.Concurrency,
		Runs:        cfg.Runs,
		Check:       cfg.checkConfig(),
	}, opts...)

	res, err := r.Run(ctx, s)
	if err != nil {
		slog.Error("Suite run failed", "suite", s.Name, "error", err)
		if res == nil {
			return 1
		}
	}

	rep := report.Build(res)
	report.WriteTable(rep, w, cfg.colored(w))

	if cfg.JSONOut != "" {
		if err := writeJSONReport(rep, cfg.JSONOut); err != nil {
			slog.Error("Failed to write JSON report", "path", cfg.JSONOut, "error", err)
			return 1
		}
		slog.Info("JSON report written", "path", cfg.JSONOut)
	}

	if err != nil || !res.OK() {
		return 1
	}
	return 0
}

func writeJSONReport(rep *report.Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report file: %w", cerr)
		}
	}()
	return report.WriteJSON(rep, f)
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(l)
	}
	return sb.String()
}
