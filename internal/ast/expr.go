package ast

// -----------------------------------------------------------------------------
// Leaves
// -----------------------------------------------------------------------------

// Ident is a bare identifier reference.
type Ident struct {
	BaseNode
	Name string
}

// Number is a numeric literal.
// Examples: 5, 1'000
type Number struct {
	BaseNode
	Value float64 // Parsed value
	Raw   string  // Source spelling, apostrophes included
}

// String is a string literal with escapes decoded.
type String struct {
	BaseNode
	Value string
}

// -----------------------------------------------------------------------------
// Operators
// -----------------------------------------------------------------------------

// Binary is an arithmetic, bitwise, logical or comparison operation.
// The grammar currently builds Add, Subtract, Or and Equals; the other
// operators are representable but never produced by the parser.
type Binary struct {
	BaseNode
	Op    Op
	Left  Node
	Right Node
}

// Unary is a prefix operation. Only Not is defined.
type Unary struct {
	BaseNode
	Op      Op
	Operand Node
}

// -----------------------------------------------------------------------------
// Postfix forms
// -----------------------------------------------------------------------------

// Call is a function invocation.
// Example: add(1, 2)
type Call struct {
	BaseNode
	Callee Node   // Usually *Ident
	Args   []Node // Arguments (may be empty)
}

// AttributeResolve is dotted member access. Chains nest to the right:
// a.b.c is AttributeResolve{a, AttributeResolve{b, c}}.
type AttributeResolve struct {
	BaseNode
	Parent Node
	Member Node
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Node = (*Ident)(nil)
	_ Node = (*Number)(nil)
	_ Node = (*String)(nil)
	_ Node = (*Binary)(nil)
	_ Node = (*Unary)(nil)
	_ Node = (*Call)(nil)
	_ Node = (*AttributeResolve)(nil)
)
