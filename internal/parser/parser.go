// Package parser provides an ordered-choice recursive descent parser for
// maaray.
//
// Every grammar rule either matches and returns a node, or returns a nil
// node with the cursor rewound to where the rule started, so the caller can
// try its next alternative on the same input. Once a construct has committed
// (for example after the func keyword) a missing continuation is a hard
// error and parsing stops.
package parser

import (
	"github.com/rs/zerolog"

	"github.com/kolkov/maaray/internal/ast"
	"github.com/kolkov/maaray/internal/cursor"
	"github.com/kolkov/maaray/internal/lexer"
	"github.com/kolkov/maaray/internal/token"
	"github.com/kolkov/maaray/internal/tokenizer"
)

// DefaultMaxDepth bounds statement and expression nesting.
const DefaultMaxDepth = 10000

// Options configures a parse. The zero value is ready to use.
type Options struct {
	// Filename is recorded in positions when parsing source text.
	Filename string

	// Logger receives Trace events for backtracking and a Debug event for
	// the error that stops a parse. Nil disables logging.
	Logger *zerolog.Logger

	// MaxDepth limits nesting; 0 means DefaultMaxDepth.
	MaxDepth int

	// End is the end-of-input position reported by UnexpectedEOF errors.
	// Set automatically when parsing source text; when zero, the position
	// of the last lexeme is used.
	End token.Position
}

// Parser holds the state of a single parse.
type Parser struct {
	cur      *cursor.Cursor[lexer.Lexem]
	log      zerolog.Logger
	end      token.Position
	depth    int
	maxDepth int
}

// rule is one grammar production. A nil node with a nil error is a soft
// failure; the rule may leave the cursor anywhere, try restores it.
type rule struct {
	name  string
	parse func() (ast.Node, error)
}

// Parse parses maaray source code into a single root node.
func Parse(src string) (ast.Node, error) {
	return ParseFile([]byte(src), Options{})
}

// ParseFile tokenizes, lexes and parses src. Tokenizer and lexer errors stop
// the pipeline before parsing starts.
func ParseFile(src []byte, opts Options) (ast.Node, error) {
	tz := tokenizer.NewFile(opts.Filename, src)
	lexems, err := lexer.New(tz).Collect()
	if err != nil {
		return nil, err
	}
	if !opts.End.IsValid() {
		opts.End = tz.Pos()
	}
	return ParseLexems(lexems, opts)
}

// ParseLexems parses an already materialized lexeme sequence.
//
// The result is the single statement of a one-statement program, or an
// *ast.Program otherwise.
func ParseLexems(lexems []lexer.Lexem, opts Options) (ast.Node, error) {
	p := newParser(lexems, opts)
	node, err := p.parseProgram()
	if err != nil {
		p.log.Debug().Err(err).Msg("parse failed")
		return nil, err
	}
	return node, nil
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (ast.Node, error) {
	tz := tokenizer.NewFromString(src)
	lexems, err := lexer.New(tz).Collect()
	if err != nil {
		return nil, err
	}
	p := newParser(lexems, Options{End: tz.Pos()})

	expr, err := p.try(rule{"expression", p.parseExpression})
	if err != nil {
		return nil, err
	}
	if expr == nil || !p.cur.AtEnd() {
		return nil, p.unexpected("expression")
	}
	return expr, nil
}

func newParser(lexems []lexer.Lexem, opts Options) *Parser {
	p := &Parser{
		cur:      cursor.New(lexems),
		log:      zerolog.Nop(),
		end:      opts.End,
		maxDepth: opts.MaxDepth,
	}
	if opts.Logger != nil {
		p.log = *opts.Logger
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}

// -----------------------------------------------------------------------------
// Combinators
// -----------------------------------------------------------------------------

// try runs r and rewinds the cursor if r does not match.
func (p *Parser) try(r rule) (ast.Node, error) {
	mark := p.cur.Position()
	node, err := r.parse()
	if err != nil {
		return nil, err
	}
	if node == nil {
		if p.cur.Position() != mark {
			p.log.Trace().
				Str("rule", r.name).
				Int("from", p.cur.Position()).
				Int("to", mark).
				Msg("backtrack")
		}
		p.cur.SetPosition(mark)
	}
	return node, nil
}

// firstOf tries each rule in order and returns the first match.
func (p *Parser) firstOf(rules ...rule) (ast.Node, error) {
	for _, r := range rules {
		node, err := p.try(r)
		if err != nil || node != nil {
			return node, err
		}
	}
	return nil, nil
}

// commaList parses item (',' item)*. It stops without error at the first
// item that does not match or the first missing comma, so a trailing comma
// is accepted.
func (p *Parser) commaList(item rule) ([]ast.Node, error) {
	var items []ast.Node
	for {
		node, err := p.try(item)
		if err != nil {
			return nil, err
		}
		if node == nil {
			return items, nil
		}
		items = append(items, node)
		if _, ok := p.accept(token.COMMA); !ok {
			return items, nil
		}
	}
}

// nest guards recursive rules against unbounded nesting.
func (p *Parser) nest() error {
	p.depth++
	if p.depth > p.maxDepth {
		lx, ok := p.cur.Peek()
		pos := p.endPos()
		if ok {
			pos = lx.Pos
		}
		return token.Errorf(token.UnexpectedToken, pos, "nesting exceeds %d levels", p.maxDepth)
	}
	return nil
}

func (p *Parser) unnest() {
	p.depth--
}

// -----------------------------------------------------------------------------
// Lexeme handling
// -----------------------------------------------------------------------------

// accept consumes the next lexeme if it has the given kind.
func (p *Parser) accept(kind token.Token) (lexer.Lexem, bool) {
	lx, ok := p.cur.Peek()
	if !ok || lx.Kind != kind {
		return lexer.Lexem{}, false
	}
	p.cur.Advance()
	return lx, true
}

// acceptWord consumes the next lexeme if it is the identifier word.
func (p *Parser) acceptWord(word string) (lexer.Lexem, bool) {
	lx, ok := p.cur.Peek()
	if !ok || !lx.Is(word) {
		return lexer.Lexem{}, false
	}
	p.cur.Advance()
	return lx, true
}

// acceptPair consumes two consecutive lexemes of the given kind, as in
// "==" and "||". Nothing is consumed unless both are present.
func (p *Parser) acceptPair(kind token.Token) (lexer.Lexem, bool) {
	mark := p.cur.Position()
	first, ok := p.accept(kind)
	if !ok {
		return lexer.Lexem{}, false
	}
	if _, ok := p.accept(kind); !ok {
		p.cur.SetPosition(mark)
		return lexer.Lexem{}, false
	}
	return first, true
}

// expect consumes a lexeme of the given kind or fails hard.
func (p *Parser) expect(kind token.Token, want string) (lexer.Lexem, error) {
	lx, ok := p.accept(kind)
	if !ok {
		return lexer.Lexem{}, p.unexpected(want)
	}
	return lx, nil
}

// require runs r and turns a soft failure into a hard one.
func (p *Parser) require(r rule, want string) (ast.Node, error) {
	node, err := p.try(r)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, p.unexpected(want)
	}
	return node, nil
}

// -----------------------------------------------------------------------------
// Program and statements
// -----------------------------------------------------------------------------

// parseProgram parses statements until input is exhausted or a statement
// fails to match. Anything left after that (a stray '}') is not parsed.
func (p *Parser) parseProgram() (ast.Node, error) {
	pos := token.NoPos
	if first, ok := p.cur.Peek(); ok {
		pos = first.Pos
	}

	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if lx, ok := p.cur.Peek(); ok {
		p.log.Debug().Stringer("pos", lx.Pos).Msg("statements end before input")
	}

	if len(stmts) == 1 {
		return stmts[0], nil
	}
	return &ast.Program{BaseNode: ast.MakeBaseNode(pos), Stmts: stmts}, nil
}

// parseStatements collects statements until one fails to match.
func (p *Parser) parseStatements() ([]ast.Node, error) {
	stmts := []ast.Node{}
	for !p.cur.AtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			break
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStatement parses any statement. A closing brace ends the sequence;
// any other lexeme that starts no statement is an error.
func (p *Parser) parseStatement() (ast.Node, error) {
	if err := p.nest(); err != nil {
		return nil, err
	}
	defer p.unnest()

	stmt, err := p.firstOf(
		rule{"block", p.parseBlock},
		rule{"if", p.parseIf},
		rule{"function", p.parseFunction},
		rule{"declaration", p.parseDeclaration},
		rule{"return", p.parseReturn},
		rule{"expression statement", p.parseExprStatement},
	)
	if err != nil || stmt != nil {
		return stmt, err
	}

	lx, ok := p.cur.Peek()
	if !ok || lx.Kind == token.RBRACE {
		return nil, nil
	}
	return nil, unexpectedLexem(lx, "statement")
}

// parseBlock parses { statement* }. A missing closing brace ends the block
// where its statements end.
func (p *Parser) parseBlock() (ast.Node, error) {
	open, ok := p.accept(token.LBRACE)
	if !ok {
		return nil, nil
	}

	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(token.RBRACE); !ok {
		p.log.Debug().Stringer("open", open.Pos).Msg("block not closed")
	}

	if len(stmts) == 1 {
		return stmts[0], nil
	}
	return &ast.Block{BaseNode: ast.MakeBaseNode(open.Pos), Stmts: stmts}, nil
}

// parseFunction parses func NAME ( args ) block.
func (p *Parser) parseFunction() (ast.Node, error) {
	kw, ok := p.acceptWord(token.KeywordFunc)
	if !ok {
		return nil, nil
	}

	name, err := p.expect(token.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "'(' after function name"); err != nil {
		return nil, err
	}
	args, err := p.commaList(rule{"argument", p.parseExpression})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "')' to close argument list"); err != nil {
		return nil, err
	}
	body, err := p.require(rule{"block", p.parseBlock}, "'{' to open function body")
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		BaseNode: ast.MakeBaseNode(kw.Pos),
		Name:     name.Text,
		Args:     args,
		Body:     body,
	}, nil
}

// parseIf parses if expression block. There is no else clause yet, so the
// alternative is always an empty program.
func (p *Parser) parseIf() (ast.Node, error) {
	kw, ok := p.acceptWord(token.KeywordIf)
	if !ok {
		return nil, nil
	}

	cond, err := p.require(rule{"expression", p.parseExpression}, "condition after if")
	if err != nil {
		return nil, err
	}
	body, err := p.require(rule{"block", p.parseBlock}, "'{' to open if body")
	if err != nil {
		return nil, err
	}

	return &ast.If{
		BaseNode:    ast.MakeBaseNode(kw.Pos),
		Cond:        cond,
		Alternative: &ast.Program{BaseNode: ast.MakeBaseNode(kw.Pos), Stmts: []ast.Node{}},
		Body:        body,
	}, nil
}

// parseReturn parses return expression ;? .
func (p *Parser) parseReturn() (ast.Node, error) {
	kw, ok := p.acceptWord(token.KeywordReturn)
	if !ok {
		return nil, nil
	}

	value, err := p.require(rule{"expression", p.parseExpression}, "value after return")
	if err != nil {
		return nil, err
	}
	p.accept(token.SEMICOLON)

	return &ast.Return{BaseNode: ast.MakeBaseNode(kw.Pos), Value: value}, nil
}

// parseDeclaration parses let NAME (= expression)? ;? . The '=' is
// optional but a value is always required.
func (p *Parser) parseDeclaration() (ast.Node, error) {
	kw, ok := p.acceptWord(token.KeywordLet)
	if !ok {
		return nil, nil
	}

	name, err := p.expect(token.IDENT, "name after let")
	if err != nil {
		return nil, err
	}
	p.accept(token.EQUALS)

	value, err := p.require(rule{"expression", p.parseExpression}, "value for "+name.Text)
	if err != nil {
		return nil, err
	}
	p.accept(token.SEMICOLON)

	return &ast.Assignment{
		BaseNode: ast.MakeBaseNode(kw.Pos),
		Name:     name.Text,
		Value:    value,
	}, nil
}

// parseExprStatement parses expression ;? .
func (p *Parser) parseExprStatement() (ast.Node, error) {
	expr, err := p.try(rule{"expression", p.parseExpression})
	if err != nil || expr == nil {
		return nil, err
	}
	p.accept(token.SEMICOLON)
	return expr, nil
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// parseExpression parses expr1 followed by at most one of || + - and a
// right-hand expr1. Operators do not chain: a + b + c stops after a + b.
func (p *Parser) parseExpression() (ast.Node, error) {
	lhs, err := p.try(rule{"expr1", p.parseExpr1})
	if err != nil || lhs == nil {
		return nil, err
	}

	var op ast.Op
	var opLx lexer.Lexem
	if lx, ok := p.acceptPair(token.OR); ok {
		op, opLx = ast.Or, lx
	} else if lx, ok := p.accept(token.PLUS); ok {
		op, opLx = ast.Add, lx
	} else if lx, ok := p.accept(token.MINUS); ok {
		op, opLx = ast.Subtract, lx
	} else {
		return lhs, nil
	}

	rhs, err := p.require(rule{"expr1", p.parseExpr1}, "operand after '"+op.String()+"' at "+opLx.Pos.String())
	if err != nil {
		return nil, err
	}
	return &ast.Binary{BaseNode: ast.MakeBaseNode(lhs.Pos()), Op: op, Left: lhs, Right: rhs}, nil
}

// parseExpr1 parses chained ('==' expr1)?. A lone '=' here is an error:
// assignment only exists as a let declaration.
func (p *Parser) parseExpr1() (ast.Node, error) {
	if err := p.nest(); err != nil {
		return nil, err
	}
	defer p.unnest()

	lhs, err := p.try(rule{"chained", p.parseChained})
	if err != nil || lhs == nil {
		return nil, err
	}

	if _, ok := p.acceptPair(token.EQUALS); ok {
		rhs, err := p.require(rule{"expr1", p.parseExpr1}, "operand after '=='")
		if err != nil {
			return nil, err
		}
		return &ast.Binary{BaseNode: ast.MakeBaseNode(lhs.Pos()), Op: ast.Equals, Left: lhs, Right: rhs}, nil
	}

	if lx, ok := p.cur.Peek(); ok && lx.Kind == token.EQUALS {
		return nil, &token.Error{
			Kind:    token.UnexpectedToken,
			Pos:     lx.Pos,
			Message: "unexpected '=' in expression; bindings use let",
			Got:     describe(lx),
			Want:    "'=='",
		}
	}
	return lhs, nil
}

// parseChained parses an attribute chain, or a plain atom.
func (p *Parser) parseChained() (ast.Node, error) {
	if err := p.nest(); err != nil {
		return nil, err
	}
	defer p.unnest()

	return p.firstOf(
		rule{"attr-resolve", p.parseAttrResolve},
		rule{"atom", p.parseAtom},
	)
}

// parseAttrResolve parses atom ('.' chained)?. Chains nest to the right.
func (p *Parser) parseAttrResolve() (ast.Node, error) {
	parent, err := p.try(rule{"atom", p.parseAtom})
	if err != nil || parent == nil {
		return nil, err
	}
	if _, ok := p.accept(token.DOT); !ok {
		return parent, nil
	}

	member, err := p.require(rule{"chained", p.parseChained}, "member name after '.'")
	if err != nil {
		return nil, err
	}
	return &ast.AttributeResolve{
		BaseNode: ast.MakeBaseNode(parent.Pos()),
		Parent:   parent,
		Member:   member,
	}, nil
}

// parseAtom parses a call, identifier, string or number.
func (p *Parser) parseAtom() (ast.Node, error) {
	return p.firstOf(
		rule{"call", p.parseCall},
		rule{"ident", p.parseIdent},
		rule{"string", p.parseString},
		rule{"number", p.parseNumber},
	)
}

// parseCall parses ident ( args ). Without '(' it is a soft failure; once
// '(' is seen, the closing ')' is required.
func (p *Parser) parseCall() (ast.Node, error) {
	callee, err := p.parseIdent()
	if err != nil || callee == nil {
		return nil, err
	}
	open, ok := p.accept(token.LPAREN)
	if !ok {
		return nil, nil
	}

	args, err := p.commaList(rule{"argument", p.parseExpression})
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "')' to close call opened at "+open.Pos.String()); err != nil {
		return nil, err
	}

	return &ast.Call{BaseNode: ast.MakeBaseNode(callee.Pos()), Callee: callee, Args: args}, nil
}

func (p *Parser) parseIdent() (ast.Node, error) {
	lx, ok := p.accept(token.IDENT)
	if !ok {
		return nil, nil
	}
	return &ast.Ident{BaseNode: ast.MakeBaseNode(lx.Pos), Name: lx.Text}, nil
}

func (p *Parser) parseString() (ast.Node, error) {
	lx, ok := p.accept(token.STRING)
	if !ok {
		return nil, nil
	}
	return &ast.String{BaseNode: ast.MakeBaseNode(lx.Pos), Value: lx.Text}, nil
}

func (p *Parser) parseNumber() (ast.Node, error) {
	lx, ok := p.accept(token.NUMBER)
	if !ok {
		return nil, nil
	}
	return &ast.Number{BaseNode: ast.MakeBaseNode(lx.Pos), Value: lx.Value, Raw: lx.Text}, nil
}
