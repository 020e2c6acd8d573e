package token

import "fmt"

// ErrorKind classifies front-end errors.
type ErrorKind uint8

const (
	_ ErrorKind = iota

	// Tokenizer
	UnterminatedString
	InvalidEscapeSequence

	// Lexer
	UnsupportedCharacter
	InvalidNumber

	// Parser
	UnexpectedToken
	UnexpectedEOF
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "unterminated string"
	case InvalidEscapeSequence:
		return "invalid escape sequence"
	case UnsupportedCharacter:
		return "unsupported character"
	case InvalidNumber:
		return "invalid number"
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEOF:
		return "unexpected end of input"
	default:
		return fmt.Sprintf("error(%d)", uint8(k))
	}
}

// Error is a positioned error raised by the tokenizer, lexer or parser.
type Error struct {
	Kind    ErrorKind
	Pos     Position // Position where the error occurred
	Message string   // Human-readable error message
	Got     string   // Token/value that was found (optional)
	Want    string   // Token/value that was expected (optional)
}

// Error returns a formatted error message with position information.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, &token.Error{Kind: token.UnexpectedEOF}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Errorf creates an Error of the given kind at pos with a formatted message.
func Errorf(kind ErrorKind, pos Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
