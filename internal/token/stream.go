package token

// Stream is an ordered, destructively consumed sequence of tokens.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (Token, bool) {
	if s.Empty() {
		return Token{}, false
	}
	return s.tokens[s.pos], true
}

// Next consumes and returns the next token.
func (s *Stream) Next() (Token, bool) {
	tok, ok := s.Peek()
	if ok {
		s.pos++
	}
	return tok, ok
}

func (s *Stream) Empty() bool {
	return s.pos >= len(s.tokens)
}

// Len reports the number of tokens not yet consumed.
func (s *Stream) Len() int {
	return len(s.tokens) - s.pos
}
