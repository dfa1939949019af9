package token

type Type int

const (
	VAR Type = iota
	BOTTOM
	TOP
	NOT
	LPAREN
	RPAREN
	ARROW
	IFF
	AND
	OR
)

func (t Type) String() string {
	switch t {
	case VAR:
		return "VAR"
	case BOTTOM:
		return "BOTTOM"
	case TOP:
		return "TOP"
	case NOT:
		return "NOT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case ARROW:
		return "ARROW"
	case IFF:
		return "IFF"
	case AND:
		return "AND"
	case OR:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the source character a token of this type is scanned from.
// VAR has no fixed symbol and yields 0.
func (t Type) Symbol() rune {
	switch t {
	case BOTTOM:
		return '⊥'
	case TOP:
		return 'T'
	case NOT:
		return '¬'
	case LPAREN:
		return '('
	case RPAREN:
		return ')'
	case ARROW:
		return '→'
	case IFF:
		return '↔'
	case AND:
		return '∧'
	case OR:
		return '∨'
	default:
		return 0
	}
}

// Token represents a lexical token with its type, source character and
// rune offset in the scanned input.
type Token struct {
	Type  Type
	Value rune
	Pos   int
}

func (t Token) String() string {
	if t.Type == VAR {
		return "VAR(" + string(t.Value) + ")"
	}
	return t.Type.String()
}
