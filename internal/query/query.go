package query

import (
	"slices"

	"github.com/kolkov/maaray/internal/ast"
	"github.com/kolkov/maaray/internal/token"
)

// Kind says where a matched name occurs.
type Kind uint8

const (
	Ident    Kind = iota + 1 // identifier in an expression or argument list
	Function                 // function definition name
	Binding                  // name declared by let
	Call                     // called function name
	Member                   // right-hand side of an attribute resolve
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "ident"
	case Function:
		return "func"
	case Binding:
		return "let"
	case Call:
		return "call"
	case Member:
		return "member"
	default:
		return "unknown"
	}
}

// Match is one name that matched a pattern.
type Match struct {
	Name  string
	Kind  Kind
	Pos   token.Position // position of the node that carries the name
	Start int            // byte offsets of the match within Name
	End   int
}

// Find returns every name in root that re matches, in source order.
func Find(root ast.Node, re *Regex) []Match {
	var matches []Match
	add := func(name string, kind Kind, pos token.Position) {
		if loc := re.FindStringIndex(name); loc != nil {
			matches = append(matches, Match{Name: name, Kind: kind, Pos: pos, Start: loc[0], End: loc[1]})
		}
	}

	// Identifiers already reported as a callee or member.
	claimed := map[*ast.Ident]bool{}

	ast.Walk(root, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Function:
			add(n.Name, Function, n.Pos())
		case *ast.Assignment:
			add(n.Name, Binding, n.Pos())
		case *ast.Call:
			if id, ok := n.Callee.(*ast.Ident); ok && !claimed[id] {
				claimed[id] = true
				add(id.Name, Call, id.Pos())
			}
		case *ast.AttributeResolve:
			if id, ok := n.Member.(*ast.Ident); ok {
				claimed[id] = true
				add(id.Name, Member, id.Pos())
			}
		case *ast.Ident:
			if !claimed[n] {
				add(n.Name, Ident, n.Pos())
			}
		}
		return true
	})

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Pos.Before(b.Pos):
			return -1
		case b.Pos.Before(a.Pos):
			return 1
		}
		return 0
	})
	return matches
}

// Searcher finds names using patterns compiled through a shared cache.
type Searcher struct {
	cache  *RegexCache
	config RegexConfig
}

// NewSearcher returns a Searcher backed by cache. A nil cache gets a fresh
// one of the default size.
func NewSearcher(cache *RegexCache, config RegexConfig) *Searcher {
	if cache == nil {
		cache = NewRegexCache(0)
	}
	return &Searcher{cache: cache, config: config}
}

// Search compiles pattern (or reuses the cached compilation) and runs Find.
func (s *Searcher) Search(root ast.Node, pattern string) ([]Match, error) {
	re, err := s.cache.Get(pattern, s.config)
	if err != nil {
		return nil, err
	}
	return Find(root, re), nil
}
