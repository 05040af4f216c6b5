package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("invalid path")
	ErrUnexpected   = errors.New("unexpected symbol")
	ErrUnterminated = errors.New("unterminated")
	ErrEmptyKey     = errors.New("empty key")
	ErrBadUTF8      = errors.New("bad utf8")
	ErrNumber       = errors.New("index out of range")
)

// SyntaxError reports a malformed path. Pos is the 1-based position of
// the first offending symbol, counted in code points.
type SyntaxError struct {
	Pos int
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s near position %d: %v", ErrSyntax, e.Pos, e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

// Pos returns the error position of err if it is a [*SyntaxError] and 0
// otherwise.
func Pos(err error) int {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Pos
	}
	return 0
}

func syntaxErr(pos int, err error) error {
	return &SyntaxError{Pos: pos, Err: err}
}
