package eval

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/DjordjeVuckovic/taut-hunter/internal/formula"
	"github.com/crillab/gophersat/bf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGenerate(t *testing.T, input string) formula.Expr {
	t.Helper()
	e, err := formula.Generate(input)
	require.NoError(t, err, input)
	return e
}

func TestEval_KnownTautologies(t *testing.T) {
	for _, input := range []string{
		"(¬(p → q) → (p → ¬q))",
		"((p → (q ∧ r)) → ((p → q) ∨ (q → r)))",
		"(⊥ → p)",
		"(p ∨ (p → (q ∧ ¬q)))",
		"(((p → q) → p) → p)",
		"(p ↔ ¬¬p)",
		"((p ∧ q) ↔ (q ∧ p))",
		"(p ∨ ¬p)",
	} {
		t.Run(input, func(t *testing.T) {
			res := Eval(mustGenerate(t, input))
			assert.True(t, res.IsTautology())
			assert.Nil(t, res.Witness)
			assert.Equal(t, uint64(1)<<uint(len(res.Vars)), res.Checked, "every assignment must be examined")
		})
	}
}

func TestEval_KnownNonTautologies(t *testing.T) {
	cases := []struct {
		input      string
		witness    Witness
		assignment Assignment
	}{
		{"((p → ¬q) → ¬(p → q))", Witness{'p': false, 'q': false}, 0},
		{"(((p → q) ∨ (q → r)) → (p → (q ∨ r)))", Witness{'p': true, 'q': false, 'r': false}, 1},
		{"((((p → q) → p) → q) → ¬p)", Witness{'p': true, 'q': true}, 3},
		{"(T → p)", Witness{'p': false}, 0},
		{"(p ∧ q)", Witness{'p': false, 'q': false}, 0},
		{"(p ∨ q)", Witness{'p': false, 'q': false}, 0},
		{"¬(p ∧ q)", Witness{'p': true, 'q': true}, 3},
		{"(p ↔ q)", Witness{'p': true, 'q': false}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			res := Eval(mustGenerate(t, tc.input))
			assert.Equal(t, NotTautology, res.Verdict)
			assert.Equal(t, tc.witness, res.Witness)
			assert.Equal(t, tc.assignment, res.Assignment)
			assert.Equal(t, uint64(tc.assignment)+1, res.Checked, "search stops at the first falsifier")
		})
	}
}

func TestEval_ZeroVariables(t *testing.T) {
	t.Run("true constant", func(t *testing.T) {
		res := Eval(mustGenerate(t, "T"))
		assert.True(t, res.IsTautology())
		assert.Equal(t, uint64(1), res.Checked)
		assert.Empty(t, res.Vars)
	})

	t.Run("vacuous implication", func(t *testing.T) {
		res := Eval(mustGenerate(t, "(⊥ → ⊥)"))
		assert.True(t, res.IsTautology())
		assert.Equal(t, uint64(1), res.Checked)
	})

	t.Run("false constant", func(t *testing.T) {
		res := Eval(mustGenerate(t, "⊥"))
		assert.Equal(t, NotTautology, res.Verdict)
		assert.Empty(t, res.Witness)
		assert.NotNil(t, res.Witness)
		assert.Equal(t, uint64(1), res.Checked)
	})
}

func TestEval_Deterministic(t *testing.T) {
	e := mustGenerate(t, "((p ∨ q) → (r ∧ s))")
	first := Eval(e)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Eval(e))
	}
}

func TestEval_FirstCounterexampleIsLowest(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		e := randomExpr(rng, 4, []rune("pqrs"), true)
		env := NewEnv(e)
		res := Eval(e)

		var lowest *Assignment
		for a := uint64(0); a < env.Size(); a++ {
			if !Holds(e, env.View(Assignment(a))) {
				found := Assignment(a)
				lowest = &found
				break
			}
		}

		if lowest == nil {
			assert.True(t, res.IsTautology(), e.String())
			continue
		}
		require.Equal(t, NotTautology, res.Verdict, e.String())
		assert.Equal(t, *lowest, res.Assignment, e.String())
		assert.Equal(t, env.View(*lowest).Witness(), res.Witness, e.String())
	}
}

func TestEval_AgreesWithSATOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		e := randomExpr(rng, 4, []rune("abc"), false)
		f := toBF(e)
		env := NewEnv(e)
		res := Eval(e)

		var lowest *Assignment
		for a := uint64(0); a < env.Size(); a++ {
			if !f.Eval(env.View(Assignment(a)).Witness().Named()) {
				found := Assignment(a)
				lowest = &found
				break
			}
		}

		if lowest == nil {
			assert.True(t, res.IsTautology(), e.String())
		} else {
			require.Equal(t, NotTautology, res.Verdict, e.String())
			assert.Equal(t, *lowest, res.Assignment, e.String())
			assert.False(t, f.Eval(res.Witness.Named()), "witness must falsify %s", e)
		}

		// A model of the negation is always genuine; the solver's CNF
		// encoding may over-constrain nested disjunctions, so its nil answer
		// is not relied on.
		if model := bf.Solve(bf.Not(f)); model != nil {
			assert.False(t, res.IsTautology(), e.String())
			assert.False(t, f.Eval(model), "solver model must falsify %s", e)
		}
	}
}

func TestEvalParallel_MatchesSequential(t *testing.T) {
	ctx := context.Background()

	inputs := []string{
		// falsified only when every variable is true: the last assignment
		"¬(a ∧ (b ∧ (c ∧ (d ∧ (e ∧ (f ∧ (g ∧ (h ∧ (i ∧ (j ∧ (k ∧ (l ∧ m))))))))))))",
		// tautology over 13 variables
		"((a ∧ (b ∧ (c ∧ (d ∧ (e ∧ (f ∧ (g ∧ (h ∧ (i ∧ (j ∧ (k ∧ (l ∧ m)))))))))))) → a)",
		// falsified in the middle of the table
		"(¬(m ∧ (¬l ∧ (k ∧ (j ∧ ¬a)))) ∨ (b ∧ (c ∧ (d ∧ (e ∧ (f ∧ (g ∧ (h ∧ i))))))))",
		"(p → q)",
	}

	for _, input := range inputs {
		e := mustGenerate(t, input)
		want := Eval(e)

		for _, workers := range []int{0, 1, 2, 3, 8} {
			got, err := EvalParallel(ctx, e, workers)
			require.NoError(t, err)
			assert.Equal(t, want.Verdict, got.Verdict, "%s workers=%d", input, workers)
			assert.Equal(t, want.Witness, got.Witness, "%s workers=%d", input, workers)
			assert.Equal(t, want.Assignment, got.Assignment, "%s workers=%d", input, workers)
			assert.Equal(t, want.Vars, got.Vars)
		}
	}
}

func TestEvalParallel_ClampsWorkers(t *testing.T) {
	ctx := context.Background()
	e := mustGenerate(t, "¬(a ∧ (b ∧ (c ∧ (d ∧ (e ∧ (f ∧ (g ∧ (h ∧ (i ∧ (j ∧ (k ∧ (l ∧ m))))))))))))")
	want := Eval(e)

	for _, workers := range []int{1 << 50, math.MaxInt} {
		got, err := EvalParallel(ctx, e, workers)
		require.NoError(t, err)
		assert.Equal(t, want.Verdict, got.Verdict)
		assert.Equal(t, want.Assignment, got.Assignment)
		assert.Equal(t, want.Witness, got.Witness)
	}

	taut := mustGenerate(t, "((a ∧ (b ∧ (c ∧ (d ∧ (e ∧ (f ∧ (g ∧ (h ∧ (i ∧ (j ∧ (k ∧ (l ∧ m)))))))))))) → a)")
	res, err := EvalParallel(ctx, taut, math.MaxInt)
	require.NoError(t, err)
	assert.True(t, res.IsTautology())
	assert.Equal(t, uint64(1)<<13, res.Checked)
}

func TestEvalParallel_TautologyChecksEverything(t *testing.T) {
	e := mustGenerate(t, "((a ∧ (b ∧ (c ∧ (d ∧ (e ∧ (f ∧ (g ∧ (h ∧ (i ∧ (j ∧ (k ∧ (l ∧ m)))))))))))) → a)")
	res, err := EvalParallel(context.Background(), e, 4)
	require.NoError(t, err)
	assert.True(t, res.IsTautology())
	assert.Equal(t, uint64(1)<<13, res.Checked)
}

func TestEvalParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := mustGenerate(t, "((a ∧ (b ∧ (c ∧ (d ∧ (e ∧ (f ∧ (g ∧ (h ∧ (i ∧ (j ∧ (k ∧ (l ∧ m)))))))))))) → a)")
	_, err := EvalParallel(ctx, e, 4)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = EvalParallel(ctx, mustGenerate(t, "p"), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWitness_String(t *testing.T) {
	w := Witness{'q': true, 'p': false}
	assert.Equal(t, "p=false, q=true", w.String())
	assert.Equal(t, map[string]bool{"p": false, "q": true}, w.Named())
	assert.Equal(t, "", Witness{}.String())
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "tautology", Tautology.String())
	assert.Equal(t, "not_tautology", NotTautology.String())
}

// randomExpr builds a random formula over vars. Oracle tests leave constants
// out: bf folds them into empty and/or nodes with the wrong value.
func randomExpr(rng *rand.Rand, depth int, vars []rune, consts bool) formula.Expr {
	if depth == 0 || rng.IntN(4) == 0 {
		if consts && rng.IntN(10) == 0 {
			return formula.Const{Value: rng.IntN(2) == 0}
		}
		return formula.Var{Name: vars[rng.IntN(len(vars))]}
	}
	if rng.IntN(4) == 0 {
		return formula.Not{X: randomExpr(rng, depth-1, vars, consts)}
	}
	return formula.Binary{
		Op:  formula.BinOp(rng.IntN(4)),
		LHS: randomExpr(rng, depth-1, vars, consts),
		RHS: randomExpr(rng, depth-1, vars, consts),
	}
}

func toBF(e formula.Expr) bf.Formula {
	switch e := e.(type) {
	case formula.Var:
		return bf.Var(string(e.Name))
	case formula.Const:
		if e.Value {
			return bf.True
		}
		return bf.False
	case formula.Not:
		return bf.Not(toBF(e.X))
	case formula.Binary:
		l, r := toBF(e.LHS), toBF(e.RHS)
		switch e.Op {
		case formula.And:
			return bf.And(l, r)
		case formula.Or:
			return bf.Or(l, r)
		case formula.Imp:
			return bf.Implies(l, r)
		case formula.Iff:
			return bf.Eq(l, r)
		}
	}
	panic("unknown expression")
}
