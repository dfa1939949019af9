package runner

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/check"
	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/internal/suite"
	"golang.org/x/sync/errgroup"
)

type Runner struct {
	config  Config
	checker *check.Checker
	storer  storage.Storer
}

type Option func(*Runner)

// WithStorer saves the checks of a run in one SaveBulk call.
func WithStorer(s storage.Storer) Option {
	return func(r *Runner) {
		r.storer = s
	}
}

func New(cfg Config, opts ...Option) *Runner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	r := &Runner{config: cfg, checker: check.New(cfg.Check)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run checks every formula of s. Cases run concurrently but the result keeps
// suite order. Per-formula failures are recorded on the case; the returned
// error is reserved for cancellation and storage failures.
func (r *Runner) Run(ctx context.Context, s *suite.Suite) (*Result, error) {
	res := &Result{
		Suite:   s.Name,
		Cases:   make([]CaseResult, len(s.Formulas)),
		Config:  r.config,
		Started: time.Now(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Concurrency)

	for i, c := range s.Formulas {
		g.Go(func() error {
			res.Cases[i] = r.runCase(gctx, c)
			return nil
		})
	}
	_ = g.Wait()
	res.Elapsed = time.Since(res.Started)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run suite %q: %w", s.Name, err)
	}

	slog.Info("Suite completed",
		"suite", s.Name,
		"formulas", len(res.Cases),
		"passed", res.Passed(),
		"failed", res.Failed(),
		"elapsed", res.Elapsed)

	if r.storer != nil {
		if err := r.saveChecks(ctx, res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (r *Runner) runCase(ctx context.Context, c suite.Case) CaseResult {
	cr := CaseResult{ID: c.ID, Formula: c.Formula, Expect: c.Expect}

	durations := make([]time.Duration, 0, r.config.Runs)
	for run := 0; run < r.config.Runs; run++ {
		got, err := r.checker.Check(ctx, c.Formula)
		if err != nil {
			cr.Err = err
			cr.Mismatch = "error"
			slog.Warn("Check failed", "id", c.ID, "formula", c.Formula, "error", err)
			return cr
		}
		if cr.Check == nil {
			cr.Check = got
		}
		durations = append(durations, got.Duration)
	}
	cr.Latency = ComputeLatencyStats(durations)

	cr.Match, cr.Mismatch = compare(c, cr.Check)
	return cr
}

func compare(c suite.Case, got *domain.Check) (bool, string) {
	if got.Verdict != c.Expect {
		return false, fmt.Sprintf("expected %s, got %s", c.Expect, got.Verdict)
	}
	if len(c.Witness) > 0 && !maps.Equal(c.Witness, got.Witness) {
		return false, "witness differs"
	}
	return true, ""
}

func (r *Runner) saveChecks(ctx context.Context, res *Result) error {
	checks := make([]domain.Check, 0, len(res.Cases))
	for _, c := range res.Cases {
		if c.Check != nil {
			checks = append(checks, *c.Check)
		}
	}
	if len(checks) == 0 {
		return nil
	}
	if err := r.storer.SaveBulk(ctx, checks); err != nil {
		return fmt.Errorf("save suite checks: %w", err)
	}
	return nil
}
