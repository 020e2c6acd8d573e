package parser_test

import (
	"errors"
	"testing"

	"github.com/kolkov/maaray/internal/ast"
	"github.com/kolkov/maaray/internal/parser"
	"github.com/kolkov/maaray/internal/token"
)

// FuzzParser checks that the parser never panics, that every failure is a
// positioned *token.Error, and that accepted programs survive a print and
// reparse.
func FuzzParser(f *testing.F) {
	seeds := []string{
		"",
		"x;",
		"func add(a, b) { return a + b; }",
		"let x = 5;",
		"if cond { foo(); }",
		"a.b.c(d) == e || f;",
		"{ { } }",
		"let s = \"a\\n\\\"b\\\"\";",
		"func f( {",
		"x = 1",
		"1'000'000 + 2",
		"}",
		"a; } b;",
		"func f() { return 1;",
		"\"unterminated",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		node, err := parser.ParseFile([]byte(src), parser.Options{MaxDepth: 200})
		if err != nil {
			var terr *token.Error
			if !errors.As(err, &terr) {
				t.Fatalf("error %v has type %T", err, err)
			}
			if node != nil {
				t.Fatalf("node %T returned with error", node)
			}
			return
		}

		printed := ast.Print(node)
		again, err := parser.ParseFile([]byte(printed), parser.Options{MaxDepth: 200})
		if err != nil {
			t.Fatalf("reparse of %q (printed from %q): %v", printed, src, err)
		}
		if !ast.Equal(node, again) {
			t.Fatalf("round trip changed tree:\nsource:  %q\nprinted: %q", src, printed)
		}
	})
}
