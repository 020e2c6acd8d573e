package parser

import (
	"fmt"
	"strconv"

	"github.com/kolkov/maaray/internal/lexer"
	"github.com/kolkov/maaray/internal/token"
)

// describe returns a human-readable description of a lexeme for error
// messages.
func describe(lx lexer.Lexem) string {
	if !lx.Kind.IsLiteral() {
		return "'" + lx.Kind.String() + "'"
	}
	switch lx.Kind {
	case token.NUMBER:
		return "number " + lx.Text
	case token.STRING:
		return "string " + strconv.Quote(lx.Text)
	default:
		return "identifier " + lx.Text
	}
}

// unexpected builds the error for a committed construct that cannot
// continue: UnexpectedEOF when input is exhausted, UnexpectedToken otherwise.
func (p *Parser) unexpected(want string) *token.Error {
	lx, ok := p.cur.Peek()
	if !ok {
		return &token.Error{
			Kind:    token.UnexpectedEOF,
			Pos:     p.endPos(),
			Message: "unexpected end of input, expected " + want,
			Got:     "end of input",
			Want:    want,
		}
	}
	return unexpectedLexem(lx, want)
}

// unexpectedLexem creates an UnexpectedToken error at lx.
func unexpectedLexem(lx lexer.Lexem, want string) *token.Error {
	return &token.Error{
		Kind:    token.UnexpectedToken,
		Pos:     lx.Pos,
		Message: fmt.Sprintf("expected %s, got %s", want, describe(lx)),
		Got:     describe(lx),
		Want:    want,
	}
}

// endPos returns the position used for end-of-input errors.
func (p *Parser) endPos() token.Position {
	if p.end.IsValid() {
		return p.end
	}
	if last, ok := p.cur.Last(); ok {
		return last.Pos
	}
	return token.NoPos
}
