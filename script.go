package maaray

import (
	"io"
	"strings"

	"github.com/kolkov/maaray/internal/ast"
	"github.com/kolkov/maaray/internal/query"
)

// Script is a parsed maaray source file. It is immutable and safe for
// concurrent use.
type Script struct {
	root     ast.Node
	source   string
	filename string
	search   *query.Searcher
}

// Root returns the root node: the single statement of a one-statement
// source, or a *Program.
func (s *Script) Root() Node {
	return s.root
}

// Source returns the text the script was parsed from.
func (s *Script) Source() string {
	return s.source
}

// Filename returns the name recorded in positions, if any.
func (s *Script) Filename() string {
	return s.filename
}

// Statements returns the top-level statements.
func (s *Script) Statements() []Node {
	return ast.Statements(s.root)
}

// Format returns the canonical source form of the script. Parsing the
// result yields an equal tree.
func (s *Script) Format() (string, error) {
	var sb strings.Builder
	if err := s.WriteSource(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteSource writes the canonical source form to w.
func (s *Script) WriteSource(w io.Writer) error {
	return ast.NewPrinter(w).Print(s.root)
}

// WriteYAML writes the tree to w as YAML.
func (s *Script) WriteYAML(w io.Writer) error {
	return ast.Encode(w, s.root)
}

// Walk traverses the tree depth-first; returning false from fn skips the
// children of that node.
func (s *Script) Walk(fn func(Node) bool) {
	ast.Walk(s.root, fn)
}

// Find returns the names (identifiers, calls, members, function and let
// names) matching the regular expression pattern, in source order.
func (s *Script) Find(pattern string) ([]Match, error) {
	return s.search.Search(s.root, pattern)
}

// Equal reports whether two scripts have the same tree, ignoring positions.
func (s *Script) Equal(other *Script) bool {
	return ast.Equal(s.root, other.root)
}
