// Package tokenizer splits maaray source text into positioned raw tokens:
// identifiers, digit runs, string literals and single-character symbols.
//
// Source is UTF-8. An invalid byte inside a string literal is an
// UnsupportedCharacter error; outside one it becomes a U+FFFD symbol, which
// the lexer rejects the same way.
package tokenizer

import (
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kolkov/maaray/internal/token"
)

// eof is the sentinel held in ch once the source is exhausted.
const eof = -1

// Kind is the raw classification of a Token.
type Kind uint8

const (
	Ident  Kind = iota + 1 // identifier
	Number                 // number
	String                 // string
	Symbol                 // symbol
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case Symbol:
		return "symbol"
	default:
		return "invalid"
	}
}

// Token is one raw token.
//
// Text holds the identifier, the undecoded digit run (apostrophes included),
// the decoded string literal, or the symbol character. Symbol is set only
// for Kind == Symbol.
type Token struct {
	Pos    token.Position
	Kind   Kind
	Text   string
	Symbol rune
}

// Tokenizer scans maaray source code.
// It is lazy and single-pass; a Tokenizer cannot be rewound.
type Tokenizer struct {
	src     []byte
	ch      rune           // Current character (eof at end)
	offset  int            // Byte offset of the next character
	pos     token.Position // Position of ch
	nextPos token.Position // Position of the next character
}

// New creates a new Tokenizer for the given source code.
func New(src []byte) *Tokenizer {
	return NewFile("", src)
}

// NewFromString creates a new Tokenizer from a string.
func NewFromString(src string) *Tokenizer {
	return New([]byte(src))
}

// NewFile creates a Tokenizer whose positions carry filename.
func NewFile(filename string, src []byte) *Tokenizer {
	t := &Tokenizer{
		src: src,
		nextPos: token.Position{
			Filename: filename,
			Line:     1,
			Column:   1,
		},
	}
	t.next() // Initialize first character
	return t
}

// Next scans and returns the next token. It returns io.EOF once the source
// is exhausted. A string-literal error consumes the rest of that literal, so
// scanning may continue after it.
func (t *Tokenizer) Next() (Token, error) {
	t.skipWhitespace()

	pos := t.pos

	switch {
	case t.ch == eof:
		return Token{}, io.EOF
	case unicode.IsLetter(t.ch):
		return t.scanIdent(pos), nil
	case isDigit(t.ch):
		return t.scanNumber(pos), nil
	case t.ch == '"':
		return t.scanString(pos)
	default:
		ch := t.ch
		t.next()
		return Token{Pos: pos, Kind: Symbol, Text: string(ch), Symbol: ch}, nil
	}
}

// Pos returns the position of the next unread character. Once Next has
// returned io.EOF this is the end-of-input position.
func (t *Tokenizer) Pos() token.Position {
	return t.pos
}

// All returns the remaining tokens as a lazy sequence. Errors are yielded in
// place; iteration ends at the end of the source or when the consumer stops.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

func (t *Tokenizer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(t.ch) {
		t.next()
	}
	return Token{Pos: pos, Kind: Ident, Text: string(t.src[start:t.pos.Offset])}
}

// scanNumber scans digits and ' group separators. The text is left unparsed.
func (t *Tokenizer) scanNumber(pos token.Position) Token {
	start := pos.Offset
	for isDigit(t.ch) || t.ch == '\'' {
		t.next()
	}
	return Token{Pos: pos, Kind: Number, Text: string(t.src[start:t.pos.Offset])}
}

func (t *Tokenizer) scanString(pos token.Position) (Token, error) {
	t.next() // consume opening quote

	var sb strings.Builder
	for {
		switch t.ch {
		case eof:
			return Token{}, unterminated(t.pos)

		case '"':
			t.next() // consume closing quote
			return Token{Pos: pos, Kind: String, Text: sb.String()}, nil

		case '\\':
			t.next()
			switch t.ch {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case eof:
				return Token{}, unterminated(t.pos)
			default:
				errPos, bad := t.pos, t.ch
				t.next()
				t.skipString()
				return Token{}, &token.Error{
					Kind:    token.InvalidEscapeSequence,
					Pos:     errPos,
					Message: "invalid escape sequence \\" + string(bad),
					Got:     string(bad),
				}
			}
			t.next()

		default:
			if t.invalidByte() {
				errPos, b := t.pos, t.src[t.pos.Offset]
				t.next()
				t.skipString()
				return Token{}, token.Errorf(token.UnsupportedCharacter, errPos,
					"invalid UTF-8 byte 0x%02x in string literal", b)
			}
			sb.WriteRune(t.ch)
			t.next()
		}
	}
}

// invalidByte reports whether ch is a byte that does not start valid UTF-8,
// as opposed to an encoded U+FFFD in the source.
func (t *Tokenizer) invalidByte() bool {
	return t.ch == utf8.RuneError && t.offset-t.pos.Offset == 1
}

// skipString discards the remainder of a string literal, including the
// closing quote when there is one.
func (t *Tokenizer) skipString() {
	for t.ch != eof {
		switch t.ch {
		case '"':
			t.next()
			return
		case '\\':
			t.next()
			if t.ch == eof {
				return
			}
		}
		t.next()
	}
}

func unterminated(pos token.Position) *token.Error {
	return &token.Error{
		Kind:    token.UnterminatedString,
		Pos:     pos,
		Message: "unterminated string literal",
	}
}

// skipWhitespace skips blanks within a line. Newlines are kept: they are
// returned as Symbol tokens and dropped by the lexer.
func (t *Tokenizer) skipWhitespace() {
	for t.ch == ' ' || t.ch == '\t' || t.ch == '\r' {
		t.next()
	}
}

func (t *Tokenizer) next() {
	t.pos = t.nextPos

	if t.offset >= len(t.src) {
		t.ch = eof
		return
	}

	r, size := utf8.DecodeRune(t.src[t.offset:])
	t.offset += size
	t.nextPos.Offset = t.offset

	if r == '\n' {
		t.nextPos.Line++
		t.nextPos.Column = 1
	} else {
		t.nextPos.Column++
	}
	t.ch = r
}

// Helper functions

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentContinue(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}
