// Package ast defines the abstract syntax tree for maaray programs.
//
// The node set is closed:
//
//	Node (interface)
//	├── Ident, Number, String           - leaves
//	├── Binary, Unary                   - operators
//	├── Call, AttributeResolve          - postfix forms
//	├── Assignment, Function, Return, If - statements
//	└── Program, Block                  - statement sequences
//
// A statement sequence holding exactly one statement is collapsed by the
// parser to that statement, so consumers must accept both a bare node and a
// *Program / *Block wherever a sequence may appear.
package ast

import "github.com/kolkov/maaray/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first lexeme belonging to this node.
	Pos() token.Position

	node() // marker method to prevent external implementations
}

// BaseNode provides the position shared by every node.
type BaseNode struct {
	StartPos token.Position
}

func (b *BaseNode) Pos() token.Position { return b.StartPos }
func (b *BaseNode) node()               {}

// MakeBaseNode creates a BaseNode at pos.
func MakeBaseNode(pos token.Position) BaseNode {
	return BaseNode{StartPos: pos}
}

// Op identifies the operator of a Binary or Unary node.
type Op uint8

const (
	Add Op = iota + 1
	Subtract
	Multiply
	Divide
	BinOr
	BinAnd
	Or
	And
	Equals
	NotEquals
	Not
)

var opNames = [...]string{
	Add:       "+",
	Subtract:  "-",
	Multiply:  "*",
	Divide:    "/",
	BinOr:     "|",
	BinAnd:    "&",
	Or:        "||",
	And:       "&&",
	Equals:    "==",
	NotEquals: "!=",
	Not:       "!",
}

// String returns the operator's source spelling.
func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "?"
}

// Name returns the operator's variant name, e.g. "Add".
func (o Op) Name() string {
	switch o {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case BinOr:
		return "BinOr"
	case BinAnd:
		return "BinAnd"
	case Or:
		return "Or"
	case And:
		return "And"
	case Equals:
		return "Equals"
	case NotEquals:
		return "NotEquals"
	case Not:
		return "Not"
	default:
		return "Op"
	}
}
