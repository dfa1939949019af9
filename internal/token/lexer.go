package token

import (
	"fmt"
)

// InvalidCharacterError is returned when the input holds a character outside
// the formula alphabet.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

type Lexer struct {
	input []rune
	pos   int
}

func NewLexer() *Lexer {
	return &Lexer{}
}

// Tokenize converts the input string into a token stream.
// Example: `(¬(p → q) → (p → ¬q))`
func (l *Lexer) Tokenize(input string) (*Stream, error) {
	l.input = []rune(input)
	l.pos = 0

	tokens := make([]Token, 0, len(l.input))

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == ' ' {
			l.pos++
			continue
		}

		typ, ok := classify(ch)
		if !ok {
			return nil, &InvalidCharacterError{Char: ch, Pos: l.pos}
		}
		tokens = append(tokens, Token{Type: typ, Value: ch, Pos: l.pos})
		l.pos++
	}

	return NewStream(tokens), nil
}

func classify(ch rune) (Type, bool) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return VAR, true
	case ch == '¬':
		return NOT, true
	case ch == '∧':
		return AND, true
	case ch == '∨':
		return OR, true
	case ch == '(':
		return LPAREN, true
	case ch == ')':
		return RPAREN, true
	case ch == '→':
		return ARROW, true
	case ch == '↔':
		return IFF, true
	case ch == '⊥':
		return BOTTOM, true
	case ch == 'T':
		return TOP, true
	default:
		return 0, false
	}
}
