package ast

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Encode writes node to w as a YAML document. Field order follows the
// node definitions; every mapping starts with its variant name and position.
func Encode(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToYAML(node)); err != nil {
		return err
	}
	return enc.Close()
}

// ToYAML converts node into a yaml.Node tree.
func ToYAML(node Node) *yaml.Node {
	switch n := node.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}

	case *Ident:
		return mapping("Ident", n, "name", str(n.Name))

	case *Number:
		return mapping("Number", n, "value", &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!float",
			Value: strconv.FormatFloat(n.Value, 'g', -1, 64),
		})

	case *String:
		return mapping("String", n, "value", str(n.Value))

	case *Binary:
		return mapping(n.Op.Name(), n, "lhs", ToYAML(n.Left), "rhs", ToYAML(n.Right))

	case *Unary:
		return mapping(n.Op.Name(), n, "operand", ToYAML(n.Operand))

	case *Call:
		return mapping("Call", n, "callee", ToYAML(n.Callee), "arguments", sequence(n.Args))

	case *AttributeResolve:
		return mapping("AttributeResolve", n, "parent", ToYAML(n.Parent), "member", ToYAML(n.Member))

	case *Assignment:
		return mapping("Assignment", n, "name", str(n.Name), "value", ToYAML(n.Value))

	case *Function:
		return mapping("Function", n,
			"name", str(n.Name),
			"arguments", sequence(n.Args),
			"body", ToYAML(n.Body))

	case *Return:
		return mapping("Return", n, "value", ToYAML(n.Value))

	case *If:
		return mapping("If", n,
			"condition", ToYAML(n.Cond),
			"alternative", ToYAML(n.Alternative),
			"body", ToYAML(n.Body))

	case *Program:
		return mapping("Program", n, "statements", sequence(n.Stmts))

	case *Block:
		return mapping("Block", n, "statements", sequence(n.Stmts))

	default:
		return str("<unknown>")
	}
}

// mapping builds {kind, pos, fields...}; fields alternate key string and
// *yaml.Node value.
func mapping(kind string, n Node, fields ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, str("kind"), str(kind), str("pos"), str(n.Pos().String()))
	for i := 0; i+1 < len(fields); i += 2 {
		m.Content = append(m.Content, str(fields[i].(string)), fields[i+1].(*yaml.Node))
	}
	return m
}

func sequence(nodes []Node) *yaml.Node {
	s := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		s.Content = append(s.Content, ToYAML(n))
	}
	return s
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
