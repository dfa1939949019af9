package eval

import (
	"github.com/DjordjeVuckovic/taut-hunter/internal/formula"
)

// MaxVars is the largest number of distinct variables a formula can hold,
// one per lowercase letter. Exhaustive evaluation is impractical well before
// this ceiling; callers should bound the variable count (24 is a sane limit).
const MaxVars = 26

const noPosition = -1

// Env maps the free variables of a formula onto bit positions [0, n).
// Positions follow ascending letter order, so 'a' < 'b' < ... always holds
// among the variables present.
type Env struct {
	vars  []rune
	assoc [MaxVars]int
}

// NewEnv builds the variable environment of e.
func NewEnv(e formula.Expr) *Env {
	env := &Env{vars: formula.Vars(e)}
	for i := range env.assoc {
		env.assoc[i] = noPosition
	}
	for i, v := range env.vars {
		env.assoc[v-'a'] = i
	}
	return env
}

// Len returns the number of free variables.
func (e *Env) Len() int {
	return len(e.vars)
}

// Vars returns the free variables ordered by bit position.
func (e *Env) Vars() []rune {
	out := make([]rune, len(e.vars))
	copy(out, e.vars)
	return out
}

// Position returns the bit assigned to c, or false when c is not free in
// the formula.
func (e *Env) Position(c rune) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	pos := e.assoc[c-'a']
	return pos, pos != noPosition
}

// Size returns the number of assignments, 2^n.
func (e *Env) Size() uint64 {
	return uint64(1) << uint(len(e.vars))
}

// Assignment is a truth-table row: bit i holds the value of the variable at
// position i.
type Assignment uint64

// View binds every free variable of an Env to its value under one assignment.
type View struct {
	env  *Env
	bits Assignment
}

func (e *Env) View(a Assignment) View {
	return View{env: e, bits: a}
}

// Value returns the truth value of c. Letters without a position are false.
func (v View) Value(c rune) bool {
	pos, ok := v.env.Position(c)
	if !ok {
		return false
	}
	return v.bits>>uint(pos)&1 == 1
}

// Witness returns the binding of every free variable under this view.
func (v View) Witness() Witness {
	w := make(Witness, len(v.env.vars))
	for _, c := range v.env.vars {
		w[c] = v.Value(c)
	}
	return w
}
