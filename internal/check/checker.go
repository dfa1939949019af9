package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/DjordjeVuckovic/taut-hunter/internal/eval"
	"github.com/DjordjeVuckovic/taut-hunter/internal/formula"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage"
	"github.com/DjordjeVuckovic/taut-hunter/internal/token"
	"github.com/google/uuid"
)

// Validation error kinds.
const (
	KindInvalidCharacter = "invalid_character"
	KindUnexpectedToken  = "unexpected_token"
	KindNoTokensLeft     = "no_tokens_left"
	KindRedundantToken   = "redundant_token"
	KindTooManyVariables = "too_many_variables"
)

type Checker struct {
	cfg    Config
	storer storage.Storer
}

type Option func(*Checker)

// WithStorer persists every successful check.
func WithStorer(s storage.Storer) Option {
	return func(c *Checker) {
		c.storer = s
	}
}

func New(cfg Config, opts ...Option) *Checker {
	c := &Checker{cfg: cfg.normalized()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) Config() Config {
	return c.cfg
}

// Parse turns input into a formula. Syntax errors are returned as
// *apperr.ValidationError with the offending rune position.
func (c *Checker) Parse(input string) (formula.Expr, error) {
	e, err := formula.Generate(input)
	if err != nil {
		return nil, classify(input, err)
	}
	return e, nil
}

// Check decides whether input is a tautology and returns the resulting record.
func (c *Checker) Check(ctx context.Context, input string) (*domain.Check, error) {
	e, err := c.Parse(input)
	if err != nil {
		return nil, err
	}

	vars := formula.Vars(e)
	if len(vars) > c.cfg.MaxVars {
		return nil, apperr.NewValidation(
			fmt.Sprintf("formula has %d variables, at most %d are allowed", len(vars), c.cfg.MaxVars),
		).WithKind(KindTooManyVariables, -1)
	}

	start := time.Now()
	res, err := c.evaluate(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("evaluation aborted: %w", err)
	}
	elapsed := time.Since(start)

	record := &domain.Check{
		ID:        uuid.New(),
		Formula:   input,
		Canonical: e.String(),
		Verdict:   res.Verdict.String(),
		Vars:      names(res.Vars),
		Checked:   res.Checked,
		Duration:  elapsed,
		CreatedAt: start.UTC(),
	}
	if !res.IsTautology() {
		record.Witness = res.Witness.Named()
	}

	slog.Debug("Check completed",
		"formula", record.Canonical,
		"verdict", record.Verdict,
		"vars", len(vars),
		"checked", record.Checked,
		"duration", elapsed)

	if c.storer != nil {
		id, err := c.storer.Save(ctx, *record)
		if err != nil {
			slog.Error("Failed to save check", "error", err, "formula", record.Canonical)
			return nil, fmt.Errorf("failed to save check: %w", err)
		}
		record.ID = id
	}

	return record, nil
}

func (c *Checker) evaluate(ctx context.Context, e formula.Expr) (eval.Result, error) {
	if c.cfg.Workers <= 1 {
		if err := ctx.Err(); err != nil {
			return eval.Result{}, err
		}
		return eval.Eval(e), nil
	}
	return eval.EvalParallel(ctx, e, c.cfg.Workers)
}

func classify(input string, err error) error {
	ve := apperr.NewValidationWrap("invalid formula", err)

	var (
		invalidChar *token.InvalidCharacterError
		unexpected  *formula.UnexpectedTokenError
		redundant   *formula.RedundantTokenError
	)
	switch {
	case errors.As(err, &invalidChar):
		return ve.WithKind(KindInvalidCharacter, invalidChar.Pos)
	case errors.As(err, &unexpected):
		return ve.WithKind(KindUnexpectedToken, unexpected.Found.Pos)
	case errors.As(err, &redundant):
		return ve.WithKind(KindRedundantToken, redundant.Token.Pos)
	case errors.Is(err, formula.ErrNoTokensLeft):
		return ve.WithKind(KindNoTokensLeft, len([]rune(input)))
	default:
		return err
	}
}

func names(vars []rune) []string {
	out := make([]string, len(vars))
	for i, c := range vars {
		out[i] = string(c)
	}
	return out
}
