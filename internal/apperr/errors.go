package apperr

import "errors"

// ErrNotFound marks lookups of records that do not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports input the caller must fix. Kind is a stable,
// machine-readable category; Pos is the rune offset of the offending input,
// or -1 when the error has no position.
type ValidationError struct {
	Message string
	Kind    string
	Pos     int
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg, Pos: -1}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Pos: -1, Err: err}
}

// WithKind sets the category and position of e and returns it.
func (e *ValidationError) WithKind(kind string, pos int) *ValidationError {
	e.Kind = kind
	e.Pos = pos
	return e
}
