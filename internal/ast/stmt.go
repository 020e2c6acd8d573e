package ast

// Assignment is a let binding.
// Example: let x = 5;
type Assignment struct {
	BaseNode
	Name  string
	Value Node
}

// Function is a function definition.
// Example: func add(a, b) { return a + b; }
type Function struct {
	BaseNode
	Name string
	Args []Node // Parameter expressions, usually *Ident
	Body Node   // *Block, or the single statement of a one-statement body
}

// Return is a return statement.
type Return struct {
	BaseNode
	Value Node
}

// If is a conditional. Alternative is always an empty *Program until the
// grammar grows an else clause.
type If struct {
	BaseNode
	Cond        Node
	Alternative Node
	Body        Node
}

// Program is a top-level statement sequence.
type Program struct {
	BaseNode
	Stmts []Node
}

// Block is a braced statement sequence.
type Block struct {
	BaseNode
	Stmts []Node
}

var (
	_ Node = (*Assignment)(nil)
	_ Node = (*Function)(nil)
	_ Node = (*Return)(nil)
	_ Node = (*If)(nil)
	_ Node = (*Program)(nil)
	_ Node = (*Block)(nil)
)

// Statements returns the statements of a sequence node. Any other node is
// treated as a one-statement sequence; nil yields no statements.
func Statements(n Node) []Node {
	switch s := n.(type) {
	case nil:
		return nil
	case *Program:
		return s.Stmts
	case *Block:
		return s.Stmts
	default:
		return []Node{n}
	}
}
