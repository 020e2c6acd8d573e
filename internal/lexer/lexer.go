// Package lexer reduces raw tokens to the closed lexeme vocabulary used by
// the parser: punctuation kinds, parsed numbers, identifiers and strings.
// Whitespace and newlines are dropped here; layout carries no meaning.
package lexer

import (
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/kolkov/maaray/internal/token"
	"github.com/kolkov/maaray/internal/tokenizer"
)

// Lexem is a classified lexical item.
//
// Text is set for IDENT and STRING, and holds the source spelling of
// NUMBER. Value is set for NUMBER only.
type Lexem struct {
	Pos   token.Position
	Kind  token.Token
	Text  string
	Value float64
}

// String returns the lexeme's source-like spelling, used in diagnostics.
func (l Lexem) String() string {
	switch l.Kind {
	case token.IDENT, token.NUMBER:
		return l.Text
	case token.STRING:
		return strconv.Quote(l.Text)
	default:
		return l.Kind.String()
	}
}

// Is reports whether the lexeme is the identifier word.
func (l Lexem) Is(word string) bool {
	return l.Kind == token.IDENT && l.Text == word
}

// TokenSource is the upstream token stream. *tokenizer.Tokenizer
// implements it.
type TokenSource interface {
	Next() (tokenizer.Token, error)
}

// Lexer converts tokens from a TokenSource into lexemes.
type Lexer struct {
	src TokenSource
}

// New creates a Lexer reading from src.
func New(src TokenSource) *Lexer {
	return &Lexer{src: src}
}

// NewFromString creates a Lexer over maaray source text.
func NewFromString(src string) *Lexer {
	return New(tokenizer.NewFromString(src))
}

// Next returns the next lexeme, or io.EOF at the end of input. Tokenizer
// errors are passed through unchanged.
func (l *Lexer) Next() (Lexem, error) {
	for {
		tok, err := l.src.Next()
		if err != nil {
			return Lexem{}, err
		}

		switch tok.Kind {
		case tokenizer.Ident:
			return Lexem{Pos: tok.Pos, Kind: token.IDENT, Text: tok.Text}, nil

		case tokenizer.String:
			return Lexem{Pos: tok.Pos, Kind: token.STRING, Text: tok.Text}, nil

		case tokenizer.Number:
			return lexNumber(tok)

		case tokenizer.Symbol:
			if isBlank(tok.Symbol) {
				continue
			}
			kind := token.LookupSymbol(tok.Symbol)
			if kind == token.ILLEGAL {
				return Lexem{}, &token.Error{
					Kind:    token.UnsupportedCharacter,
					Pos:     tok.Pos,
					Message: "unsupported character " + strconv.QuoteRune(tok.Symbol),
					Got:     string(tok.Symbol),
				}
			}
			return Lexem{Pos: tok.Pos, Kind: kind}, nil

		default:
			return Lexem{}, token.Errorf(token.UnsupportedCharacter, tok.Pos, "unknown token kind %d", tok.Kind)
		}
	}
}

// All returns the remaining lexemes as a lazy sequence.
func (l *Lexer) All() iter.Seq2[Lexem, error] {
	return func(yield func(Lexem, error) bool) {
		for {
			lx, err := l.Next()
			if err == io.EOF {
				return
			}
			if !yield(lx, err) {
				return
			}
		}
	}
}

// Collect materializes the whole lexeme stream. It stops at the first error,
// which is returned together with the lexemes read before it.
func (l *Lexer) Collect() ([]Lexem, error) {
	var out []Lexem
	for lx, err := range l.All() {
		if err != nil {
			return out, err
		}
		out = append(out, lx)
	}
	return out, nil
}

// Collect tokenizes and lexes src in one step.
func Collect(src string) ([]Lexem, error) {
	return NewFromString(src).Collect()
}

// lexNumber parses a digit run with ' group separators as a decimal float.
func lexNumber(tok tokenizer.Token) (Lexem, error) {
	digits := strings.ReplaceAll(tok.Text, "'", "")
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		msg := "malformed number " + strconv.Quote(tok.Text)
		if errors.Is(err, strconv.ErrRange) {
			msg = "number " + tok.Text + " is out of range"
		}
		return Lexem{}, &token.Error{
			Kind:    token.InvalidNumber,
			Pos:     tok.Pos,
			Message: msg,
			Got:     tok.Text,
		}
	}
	return Lexem{Pos: tok.Pos, Kind: token.NUMBER, Text: tok.Text, Value: v}, nil
}

func isBlank(ch rune) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r'
}
