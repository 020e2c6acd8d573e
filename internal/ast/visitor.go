package ast

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifiers
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Ident, *Number, *String:
		// no children

	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *Unary:
		Walk(n.Operand, fn)

	case *Call:
		Walk(n.Callee, fn)
		walkList(n.Args, fn)

	case *AttributeResolve:
		Walk(n.Parent, fn)
		Walk(n.Member, fn)

	case *Assignment:
		Walk(n.Value, fn)

	case *Function:
		walkList(n.Args, fn)
		Walk(n.Body, fn)

	case *Return:
		Walk(n.Value, fn)

	case *If:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)
		Walk(n.Alternative, fn)

	case *Program:
		walkList(n.Stmts, fn)

	case *Block:
		walkList(n.Stmts, fn)
	}
}

func walkList(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		Walk(n, fn)
	}
}

// Equal reports whether a and b have the same shape and payloads.
// Positions and Number.Raw are ignored.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Name == y.Name

	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value

	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value

	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)

	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.Operand, y.Operand)

	case *Call:
		y, ok := b.(*Call)
		return ok && Equal(x.Callee, y.Callee) && equalList(x.Args, y.Args)

	case *AttributeResolve:
		y, ok := b.(*AttributeResolve)
		return ok && Equal(x.Parent, y.Parent) && Equal(x.Member, y.Member)

	case *Assignment:
		y, ok := b.(*Assignment)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)

	case *Function:
		y, ok := b.(*Function)
		return ok && x.Name == y.Name && equalList(x.Args, y.Args) && Equal(x.Body, y.Body)

	case *Return:
		y, ok := b.(*Return)
		return ok && Equal(x.Value, y.Value)

	case *If:
		y, ok := b.(*If)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body) && Equal(x.Alternative, y.Alternative)

	case *Program:
		y, ok := b.(*Program)
		return ok && equalList(x.Stmts, y.Stmts)

	case *Block:
		y, ok := b.(*Block)
		return ok && equalList(x.Stmts, y.Stmts)
	}
	return false
}

func equalList(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
