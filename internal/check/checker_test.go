package check

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/taut-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/taut-hunter/internal/domain"
	"github.com/DjordjeVuckovic/taut-hunter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/taut-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Check(t *testing.T) {
	c := New(DefaultConfig())
	ctx := context.Background()

	t.Run("tautology", func(t *testing.T) {
		got, err := c.Check(ctx, "((p→q)∨(q→p))")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictTautology, got.Verdict)
		assert.True(t, got.IsTautology())
		assert.Nil(t, got.Witness)
		assert.Equal(t, []string{"p", "q"}, got.Vars)
		assert.Equal(t, uint64(4), got.Checked)
		assert.Equal(t, "((p → q) ∨ (q → p))", got.Canonical)
		assert.Equal(t, "((p→q)∨(q→p))", got.Formula)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("not a tautology", func(t *testing.T) {
		got, err := c.Check(ctx, "(p→q)")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictNotTautology, got.Verdict)
		assert.Equal(t, map[string]bool{"p": true, "q": false}, got.Witness)
		assert.Equal(t, uint64(2), got.Checked)
	})

	t.Run("closed formula", func(t *testing.T) {
		got, err := c.Check(ctx, "⊥")
		require.NoError(t, err)
		assert.Equal(t, domain.VerdictNotTautology, got.Verdict)
		assert.Empty(t, got.Witness)
		assert.Empty(t, got.Vars)
		assert.Equal(t, uint64(1), got.Checked)
	})
}

func TestChecker_ValidationErrors(t *testing.T) {
	c := New(DefaultConfig())

	tests := []struct {
		name  string
		input string
		kind  string
		pos   int
	}{
		{name: "invalid character", input: "p & q", kind: KindInvalidCharacter, pos: 2},
		{name: "unexpected token", input: "(p q)", kind: KindUnexpectedToken, pos: 3},
		{name: "unclosed", input: "(p ∧ q", kind: KindNoTokensLeft, pos: 6},
		{name: "empty", input: "", kind: KindNoTokensLeft, pos: 0},
		{name: "redundant", input: "p → q", kind: KindRedundantToken, pos: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Check(context.Background(), tt.input)
			require.Error(t, err)

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.kind, ve.Kind)
			assert.Equal(t, tt.pos, ve.Pos)
			assert.Contains(t, ve.Error(), "invalid formula: ")
		})
	}
}

func TestChecker_TooManyVariables(t *testing.T) {
	c := New(Config{MaxVars: 2})

	_, err := c.Check(context.Background(), "((p∧q)∨r)")
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, KindTooManyVariables, ve.Kind)
	assert.Equal(t, -1, ve.Pos)

	_, err = c.Check(context.Background(), "(p∨¬q)")
	assert.NoError(t, err)
}

func TestChecker_ParallelMatchesSequential(t *testing.T) {
	const input = "(((a∧b)∧(c∧d))→((e∨f)∨((g∨h)∨((i∨j)∨((k∨l)∨m)))))"

	seq, err := New(Config{Workers: 1}).Check(context.Background(), input)
	require.NoError(t, err)
	par, err := New(Config{Workers: 4}).Check(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictNotTautology, seq.Verdict)
	assert.Equal(t, seq.Verdict, par.Verdict)
	assert.Equal(t, seq.Witness, par.Witness)
}

func TestChecker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultConfig()).Check(ctx, "(p∨¬p)")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChecker_WithStorer(t *testing.T) {
	store := in_mem.NewStore()
	c := New(DefaultConfig(), WithStorer(store))
	ctx := context.Background()

	got, err := c.Check(ctx, "(p∨¬p)")
	require.NoError(t, err)

	saved, err := store.Get(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Canonical, saved.Canonical)

	_, err = c.Check(ctx, "(p")
	require.Error(t, err)
	page, err := store.List(ctx, pagination.OffsetRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total, "invalid input is not persisted")
}

type failingStorer struct{}

func (failingStorer) Save(context.Context, domain.Check) (uuid.UUID, error) {
	return uuid.Nil, errors.New("disk full")
}

func (failingStorer) SaveBulk(context.Context, []domain.Check) error {
	return errors.New("disk full")
}

func TestChecker_StorerFailure(t *testing.T) {
	c := New(DefaultConfig(), WithStorer(failingStorer{}))

	_, err := c.Check(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestConfig(t *testing.T) {
	t.Run("normalized", func(t *testing.T) {
		cfg := New(Config{MaxVars: 99, Workers: -3}).Config()
		assert.Equal(t, 26, cfg.MaxVars)
		assert.Equal(t, DefaultWorkers, cfg.Workers)

		assert.Equal(t, DefaultMaxVars, New(Config{}).Config().MaxVars)
	})

	t.Run("load env", func(t *testing.T) {
		t.Setenv("MAX_VARS", "")
		t.Setenv("EVAL_WORKERS", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), *cfg)

		t.Setenv("MAX_VARS", "12")
		t.Setenv("EVAL_WORKERS", "8")
		cfg, err = LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, Config{MaxVars: 12, Workers: 8}, *cfg)
	})

	t.Run("load env rejects bad values", func(t *testing.T) {
		for _, kv := range [][2]string{
			{"MAX_VARS", "x"},
			{"MAX_VARS", "27"},
			{"MAX_VARS", "0"},
			{"EVAL_WORKERS", "0"},
			{"EVAL_WORKERS", "many"},
		} {
			t.Setenv("MAX_VARS", "")
			t.Setenv("EVAL_WORKERS", "")
			t.Setenv(kv[0], kv[1])
			_, err := LoadConfig()
			assert.Error(t, err, "%s=%s", kv[0], kv[1])
		}
	})
}
