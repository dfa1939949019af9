package formula

import (
	"sort"
	"strings"
)

// Expr is a node of a propositional formula tree. Trees are built once by
// the parser and never mutated afterwards.
type Expr interface {
	String() string
	expr()
}

// Var is an atomic proposition named by a single lowercase letter.
type Var struct {
	Name rune
}

// Const is one of the constants ⊥ (false) or T (true).
type Const struct {
	Value bool
}

// Not negates its operand.
type Not struct {
	X Expr
}

// Binary applies a binary connective to two operands.
type Binary struct {
	Op  BinOp
	LHS Expr
	RHS Expr
}

type BinOp int

const (
	And BinOp = iota
	Or
	Imp
	Iff
)

func (op BinOp) String() string {
	switch op {
	case And:
		return "∧"
	case Or:
		return "∨"
	case Imp:
		return "→"
	case Iff:
		return "↔"
	default:
		return "?"
	}
}

func (Var) expr()    {}
func (Const) expr()  {}
func (Not) expr()    {}
func (Binary) expr() {}

func (v Var) String() string { return string(v.Name) }

func (c Const) String() string {
	if c.Value {
		return "T"
	}
	return "⊥"
}

func (n Not) String() string { return "¬" + n.X.String() }

func (b Binary) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.LHS.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Op.String())
	sb.WriteByte(' ')
	sb.WriteString(b.RHS.String())
	sb.WriteByte(')')
	return sb.String()
}

// Vars returns the distinct variable letters of e in ascending order.
func Vars(e Expr) []rune {
	seen := make(map[rune]struct{})
	collectVars(e, seen)

	vars := make([]rune, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}

func collectVars(e Expr, seen map[rune]struct{}) {
	switch e := e.(type) {
	case Var:
		seen[e.Name] = struct{}{}
	case Not:
		collectVars(e.X, seen)
	case Binary:
		collectVars(e.LHS, seen)
		collectVars(e.RHS, seen)
	}
}

// Size returns the number of nodes in e.
func Size(e Expr) int {
	switch e := e.(type) {
	case Not:
		return 1 + Size(e.X)
	case Binary:
		return 1 + Size(e.LHS) + Size(e.RHS)
	default:
		return 1
	}
}

// Depth returns the height of e; a leaf has depth 1.
func Depth(e Expr) int {
	switch e := e.(type) {
	case Not:
		return 1 + Depth(e.X)
	case Binary:
		return 1 + max(Depth(e.LHS), Depth(e.RHS))
	default:
		return 1
	}
}
