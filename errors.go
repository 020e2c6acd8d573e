package maaray

import (
	"errors"
	"fmt"

	"github.com/kolkov/maaray/internal/token"
)

// ErrorKind classifies a ParseError.
type ErrorKind = token.ErrorKind

// Error kinds reported in ParseError.Kind.
const (
	UnterminatedString    = token.UnterminatedString
	InvalidEscapeSequence = token.InvalidEscapeSequence
	UnsupportedCharacter  = token.UnsupportedCharacter
	InvalidNumber         = token.InvalidNumber
	UnexpectedToken       = token.UnexpectedToken
	UnexpectedEOF         = token.UnexpectedEOF
)

// ParseError represents a tokenizer, lexer or syntax error in maaray source.
type ParseError struct {
	Kind     ErrorKind
	Filename string // Empty unless Config.Filename was set
	Line     int    // 1-based line number
	Column   int    // 1-based column number, in characters
	Message  string // Error description

	err error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("parse error: %s", e.Message)
	case e.Filename != "":
		return fmt.Sprintf("parse error at %s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	default:
		return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
	}
}

// Unwrap returns the underlying front-end error.
func (e *ParseError) Unwrap() error {
	return e.err
}

// Is reports whether target is a *ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// IsParseError reports whether err is, or wraps, a ParseError and returns it.
func IsParseError(err error) (*ParseError, bool) {
	var e *ParseError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
