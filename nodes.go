package maaray

import (
	"github.com/kolkov/maaray/internal/ast"
	"github.com/kolkov/maaray/internal/lexer"
	"github.com/kolkov/maaray/internal/query"
	"github.com/kolkov/maaray/internal/token"
)

// Position is a location in source: filename, 1-based line and column, and
// byte offset.
type Position = token.Position

// Lexem is a classified token produced by Lex.
type Lexem = lexer.Lexem

// Match is one name found by Script.Find.
type Match = query.Match

// Node is implemented by every syntax tree node.
type Node = ast.Node

// Syntax tree node types.
type (
	Ident            = ast.Ident
	Number           = ast.Number
	String           = ast.String
	Binary           = ast.Binary
	Unary            = ast.Unary
	Call             = ast.Call
	AttributeResolve = ast.AttributeResolve
	Assignment       = ast.Assignment
	Function         = ast.Function
	Return           = ast.Return
	If               = ast.If
	Program          = ast.Program
	Block            = ast.Block
)

// Op identifies the operator of a Binary or Unary node.
type Op = ast.Op

// Operators.
const (
	Add       = ast.Add
	Subtract  = ast.Subtract
	Multiply  = ast.Multiply
	Divide    = ast.Divide
	BinOr     = ast.BinOr
	BinAnd    = ast.BinAnd
	Or        = ast.Or
	And       = ast.And
	Equals    = ast.Equals
	NotEquals = ast.NotEquals
	Not       = ast.Not
)
