// Package token defines the lexical vocabulary of maaray: the closed set of
// lexeme kinds the parser consumes, source positions, and the structured
// error type shared by every stage of the front end.
package token

import "strconv"

// Token represents a lexeme kind.
type Token uint8

const (
	ILLEGAL Token = iota // <illegal>

	// Literals
	IDENT  // ident
	NUMBER // number
	STRING // string

	// Punctuation and operators
	punctStart
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	DOT       // .
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;
	EQUALS    // =
	OR        // |
	AND       // &
	LESS      // <
	GREATER   // >
	SLASH     // /
	ASTERISK  // *
	MINUS     // -
	PLUS      // +
	punctEnd
)

var names = [...]string{
	ILLEGAL:   "<illegal>",
	IDENT:     "ident",
	NUMBER:    "number",
	STRING:    "string",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	DOT:       ".",
	COMMA:     ",",
	COLON:     ":",
	SEMICOLON: ";",
	EQUALS:    "=",
	OR:        "|",
	AND:       "&",
	LESS:      "<",
	GREATER:   ">",
	SLASH:     "/",
	ASTERISK:  "*",
	MINUS:     "-",
	PLUS:      "+",
}

// String returns the source spelling of punctuation and a short name for
// literal kinds.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsPunct returns true if the token is one of the punctuation kinds.
func (t Token) IsPunct() bool {
	return t > punctStart && t < punctEnd
}

// IsLiteral returns true if the token carries a payload (ident, number, string).
func (t Token) IsLiteral() bool {
	return t == IDENT || t == NUMBER || t == STRING
}

// symbols maps single source characters to their punctuation kinds.
var symbols = map[rune]Token{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	'.': DOT,
	',': COMMA,
	':': COLON,
	';': SEMICOLON,
	'=': EQUALS,
	'|': OR,
	'&': AND,
	'<': LESS,
	'>': GREATER,
	'/': SLASH,
	'*': ASTERISK,
	'-': MINUS,
	'+': PLUS,
}

// LookupSymbol returns the punctuation kind for ch, or ILLEGAL if ch is not
// part of the vocabulary.
func LookupSymbol(ch rune) Token {
	if tok, ok := symbols[ch]; ok {
		return tok
	}
	return ILLEGAL
}

// Keywords recognized by the parser. The lexer emits them as IDENT; the
// grammar matches them by text.
const (
	KeywordFunc   = "func"
	KeywordIf     = "if"
	KeywordLet    = "let"
	KeywordReturn = "return"
)
