package formula

import "strings"

// Tree renders e as an indented tree, one node per line.
//
//	→
//	├── ¬
//	│   └── p
//	└── q
func Tree(e Expr) string {
	var sb strings.Builder
	sb.WriteString(label(e))
	sb.WriteByte('\n')
	writeChildren(&sb, e, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, e Expr, prefix string) {
	kids := children(e)
	for i, kid := range kids {
		branch, next := "├── ", "│   "
		if i == len(kids)-1 {
			branch, next = "└── ", "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(label(kid))
		sb.WriteByte('\n')
		writeChildren(sb, kid, prefix+next)
	}
}

func label(e Expr) string {
	switch e := e.(type) {
	case Not:
		return "¬"
	case Binary:
		return e.Op.String()
	default:
		return e.String()
	}
}

func children(e Expr) []Expr {
	switch e := e.(type) {
	case Not:
		return []Expr{e.X}
	case Binary:
		return []Expr{e.LHS, e.RHS}
	default:
		return nil
	}
}
