package eval

import (
	"sort"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/taut-hunter/internal/formula"
)

type Verdict int

const (
	Tautology Verdict = iota
	NotTautology
)

func (v Verdict) String() string {
	switch v {
	case Tautology:
		return "tautology"
	case NotTautology:
		return "not_tautology"
	default:
		return "unknown"
	}
}

// Witness maps each free variable to its value in a falsifying assignment.
type Witness map[rune]bool

// String renders the witness sorted by variable, e.g. "p=true, q=false".
func (w Witness) String() string {
	vars := make([]rune, 0, len(w))
	for c := range w {
		vars = append(vars, c)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	parts := make([]string, len(vars))
	for i, c := range vars {
		parts[i] = string(c) + "=" + strconv.FormatBool(w[c])
	}
	return strings.Join(parts, ", ")
}

// Named returns the witness keyed by variable name.
func (w Witness) Named() map[string]bool {
	out := make(map[string]bool, len(w))
	for c, b := range w {
		out[string(c)] = b
	}
	return out
}

// Result is the outcome of an exhaustive evaluation.
type Result struct {
	Verdict Verdict
	// Witness is nil for tautologies.
	Witness Witness
	// Assignment is the first falsifying truth-table row; zero for tautologies.
	Assignment Assignment
	// Checked counts the assignments evaluated before the search stopped.
	Checked uint64
	Vars    []rune
}

func (r Result) IsTautology() bool {
	return r.Verdict == Tautology
}

// Eval decides whether e is a tautology by evaluating it under every
// assignment in ascending numeric order. The first falsifying assignment
// stops the search and is reported as the witness.
func Eval(e formula.Expr) Result {
	env := NewEnv(e)
	return scan(e, env, 0, env.Size(), nil)
}

// scan evaluates assignments [from, to) of env in ascending order. stop, when
// non-nil, is polled before each assignment and ends the scan early.
func scan(e formula.Expr, env *Env, from, to uint64, stop func(i uint64) bool) Result {
	var checked uint64
	for i := from; i < to; i++ {
		if stop != nil && stop(i) {
			break
		}
		view := env.View(Assignment(i))
		checked++
		if !evaluate(e, view) {
			return Result{
				Verdict:    NotTautology,
				Witness:    view.Witness(),
				Assignment: Assignment(i),
				Checked:    checked,
				Vars:       env.Vars(),
			}
		}
	}
	return Result{Verdict: Tautology, Checked: checked, Vars: env.Vars()}
}

// evaluate computes e under v. Both operands of a binary connective are
// always evaluated.
func evaluate(e formula.Expr, v View) bool {
	switch e := e.(type) {
	case formula.Var:
		return v.Value(e.Name)
	case formula.Const:
		return e.Value
	case formula.Not:
		return !evaluate(e.X, v)
	case formula.Binary:
		l := evaluate(e.LHS, v)
		r := evaluate(e.RHS, v)
		switch e.Op {
		case formula.And:
			return l && r
		case formula.Or:
			return l || r
		case formula.Imp:
			return imp(l, r)
		case formula.Iff:
			return l == r
		}
	}
	panic("eval: unknown expression type")
}

func imp(lhs, rhs bool) bool {
	return !lhs || rhs
}

// Holds evaluates e under a single row of its truth table; v must come from NewEnv(e).
func Holds(e formula.Expr, v View) bool {
	return evaluate(e, v)
}
