package formula

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/taut-hunter/internal/token"
)

// ErrNoTokensLeft is returned when the input ends while the grammar still
// requires a token.
var ErrNoTokensLeft = errors.New("no tokens left")

// UnexpectedTokenError reports a token the grammar does not permit at its
// position. Expected lists the token types that would have been accepted.
type UnexpectedTokenError struct {
	Found    token.Token
	Expected []token.Type
}

func (e *UnexpectedTokenError) Error() string {
	msg := fmt.Sprintf("unexpected token %s at position %d", e.Found, e.Found.Pos)
	if len(e.Expected) == 0 {
		return msg
	}
	names := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		names[i] = t.String()
	}
	return msg + ", expected " + strings.Join(names, " or ")
}

// RedundantTokenError reports input left over after a complete formula.
type RedundantTokenError struct {
	Token token.Token
}

func (e *RedundantTokenError) Error() string {
	return fmt.Sprintf("redundant token %s at position %d", e.Token, e.Token.Pos)
}
