package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer renders an AST back to maaray source.
//
// For any tree produced by the parser, parsing the printed text yields a
// tree that is Equal to the original.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes node as source. A *Program prints as its statements, one per
// line; any other node prints as a single statement.
func (p *Printer) Print(node Node) error {
	stmts := []Node{node}
	if prog, ok := node.(*Program); ok {
		stmts = prog.Stmts
	}
	for _, stmt := range stmts {
		p.printStmt(stmt)
		p.printf("\n")
	}
	return p.err
}

// Print renders node to a string. Errors are reported inline as <...>.
func Print(node Node) string {
	var sb strings.Builder
	if err := NewPrinter(&sb).Print(node); err != nil {
		return sb.String() + "<" + err.Error() + ">"
	}
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printStmt(n Node) {
	if prog, ok := n.(*Program); ok {
		for i, stmt := range prog.Stmts {
			if i > 0 {
				p.printf("\n")
			}
			p.printStmt(stmt)
		}
		return
	}

	p.writeIndent()

	switch s := n.(type) {
	case *Block:
		p.printBlock(s.Stmts)

	case *Function:
		p.printf("func %s(", s.Name)
		p.printList(s.Args)
		p.printf(") ")
		p.printBody(s.Body)

	case *If:
		p.printf("if ")
		p.printExpr(s.Cond)
		p.printf(" ")
		p.printBody(s.Body)
		if len(Statements(s.Alternative)) > 0 {
			p.fail("if at %s: else branch has no source form", s.Pos())
		}

	case *Assignment:
		p.printf("let %s = ", s.Name)
		p.printExpr(s.Value)
		p.printf(";")

	case *Return:
		p.printf("return ")
		p.printExpr(s.Value)
		p.printf(";")

	default:
		p.printExpr(n)
		p.printf(";")
	}
}

// printBody prints a function or if body, bracing a bare statement.
func (p *Printer) printBody(n Node) {
	if b, ok := n.(*Block); ok {
		p.printBlock(b.Stmts)
		return
	}
	p.printBlock([]Node{n})
}

func (p *Printer) printBlock(stmts []Node) {
	if len(stmts) == 0 {
		p.printf("{}")
		return
	}
	p.printf("{\n")
	p.indent++
	for _, stmt := range stmts {
		p.printStmt(stmt)
		p.printf("\n")
	}
	p.indent--
	p.writeIndent()
	p.printf("}")
}

func (p *Printer) printList(nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			p.printf(", ")
		}
		p.printExpr(n)
	}
}

func (p *Printer) printExpr(n Node) {
	switch e := n.(type) {
	case nil:
		p.fail("missing expression")

	case *Ident:
		p.printf("%s", e.Name)

	case *Number:
		if e.Raw != "" {
			p.printf("%s", e.Raw)
		} else {
			p.printf("%s", strconv.FormatFloat(e.Value, 'f', -1, 64))
		}

	case *String:
		p.printf("%s", quote(e.Value))

	case *Binary:
		p.printExpr(e.Left)
		p.printf(" %s ", e.Op)
		p.printExpr(e.Right)

	case *Unary:
		p.printf("%s", e.Op)
		p.printExpr(e.Operand)

	case *Call:
		p.printExpr(e.Callee)
		p.printf("(")
		p.printList(e.Args)
		p.printf(")")

	case *AttributeResolve:
		p.printExpr(e.Parent)
		p.printf(".")
		p.printExpr(e.Member)

	default:
		p.fail("%T at %s is not an expression", n, n.Pos())
	}
}

// quote produces a string literal using the escapes the tokenizer accepts.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
