package formula

import (
	"github.com/DjordjeVuckovic/taut-hunter/internal/token"
)

var (
	exprStart = []token.Type{token.VAR, token.BOTTOM, token.TOP, token.NOT, token.LPAREN}
	binOps    = []token.Type{token.AND, token.OR, token.ARROW, token.IFF}
)

// Generate scans and parses input into a formula tree. The whole input must
// form exactly one formula; trailing tokens are a *RedundantTokenError.
func Generate(input string) (Expr, error) {
	s, err := token.NewLexer().Tokenize(input)
	if err != nil {
		return nil, err
	}

	e, err := Parse(s)
	if err != nil {
		return nil, err
	}

	if tok, ok := s.Next(); ok {
		return nil, &RedundantTokenError{Token: tok}
	}
	return e, nil
}

// Parse consumes exactly one formula from s:
//
//	Expr  ::= Var | '⊥' | 'T' | '¬' Expr | '(' Expr BinOp Expr ')'
//	BinOp ::= '∧' | '∨' | '→' | '↔'
//
// There is no operator precedence; every binary application is parenthesized.
func Parse(s *token.Stream) (Expr, error) {
	tok, ok := s.Next()
	if !ok {
		return nil, ErrNoTokensLeft
	}

	switch tok.Type {
	case token.VAR:
		return Var{Name: tok.Value}, nil
	case token.BOTTOM:
		return Const{Value: false}, nil
	case token.TOP:
		return Const{Value: true}, nil
	case token.NOT:
		x, err := Parse(s)
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	case token.LPAREN:
		return parseBinary(s)
	default:
		return nil, &UnexpectedTokenError{Found: tok, Expected: exprStart}
	}
}

// parseBinary parses the remainder of a parenthesized binary application;
// the opening parenthesis is already consumed.
func parseBinary(s *token.Stream) (Expr, error) {
	lhs, err := Parse(s)
	if err != nil {
		return nil, err
	}

	op, err := parseBinOp(s)
	if err != nil {
		return nil, err
	}

	rhs, err := Parse(s)
	if err != nil {
		return nil, err
	}

	if err := expect(s, token.RPAREN); err != nil {
		return nil, err
	}

	return Binary{Op: op, LHS: lhs, RHS: rhs}, nil
}

func parseBinOp(s *token.Stream) (BinOp, error) {
	tok, ok := s.Next()
	if !ok {
		return 0, ErrNoTokensLeft
	}

	switch tok.Type {
	case token.AND:
		return And, nil
	case token.OR:
		return Or, nil
	case token.ARROW:
		return Imp, nil
	case token.IFF:
		return Iff, nil
	default:
		return 0, &UnexpectedTokenError{Found: tok, Expected: binOps}
	}
}

func expect(s *token.Stream, want token.Type) error {
	tok, ok := s.Next()
	if !ok {
		return ErrNoTokensLeft
	}
	if tok.Type != want {
		return &UnexpectedTokenError{Found: tok, Expected: []token.Type{want}}
	}
	return nil
}
