package maaray_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/maaray"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, root maaray.Node)
	}{
		{
			name: "function",
			src:  "func add(a, b) { return a + b; }",
			check: func(t *testing.T, root maaray.Node) {
				fn, ok := root.(*maaray.Function)
				require.True(t, ok, "root is %T", root)
				assert.Equal(t, "add", fn.Name)
				require.Len(t, fn.Args, 2)
				ret := fn.Body.(*maaray.Return)
				bin := ret.Value.(*maaray.Binary)
				assert.Equal(t, maaray.Add, bin.Op)
			},
		},
		{
			name: "declaration",
			src:  "let x = 5;",
			check: func(t *testing.T, root maaray.Node) {
				as, ok := root.(*maaray.Assignment)
				require.True(t, ok, "root is %T", root)
				assert.Equal(t, "x", as.Name)
				assert.Equal(t, 5.0, as.Value.(*maaray.Number).Value)
			},
		},
		{
			name: "if",
			src:  "if cond { foo(); }",
			check: func(t *testing.T, root maaray.Node) {
				stmt, ok := root.(*maaray.If)
				require.True(t, ok, "root is %T", root)
				assert.Equal(t, "cond", stmt.Cond.(*maaray.Ident).Name)
				assert.Empty(t, stmt.Alternative.(*maaray.Program).Stmts)
				call := stmt.Body.(*maaray.Call)
				assert.Equal(t, "foo", call.Callee.(*maaray.Ident).Name)
				assert.Empty(t, call.Args)
			},
		},
		{
			name: "program",
			src:  "let a = 1;\nio.print(a);\n",
			check: func(t *testing.T, root maaray.Node) {
				prog, ok := root.(*maaray.Program)
				require.True(t, ok, "root is %T", root)
				require.Len(t, prog.Stmts, 2)
				attr := prog.Stmts[1].(*maaray.AttributeResolve)
				assert.Equal(t, 2, attr.Pos().Line)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := maaray.Parse(tt.src, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.src, script.Source())
			tt.check(t, script.Root())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		kind    maaray.ErrorKind
		line    int
		column  int
		message string
	}{
		{"unterminated string", `let s = "abc`, maaray.UnterminatedString, 1, 13, "unterminated string literal"},
		{"invalid escape", `"a\tb"`, maaray.InvalidEscapeSequence, 1, 4, `invalid escape sequence \t`},
		{"unsupported character", "let x = 5 % 2;", maaray.UnsupportedCharacter, 1, 11, ""},
		{"unexpected token", "func (a) {}", maaray.UnexpectedToken, 1, 6, "expected function name, got '('"},
		{"unexpected eof", "if x {\n  f(\n", maaray.UnexpectedEOF, 3, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := maaray.Parse(tt.src, nil)
			require.Error(t, err)

			pe, ok := maaray.IsParseError(err)
			require.True(t, ok, "error type %T", err)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.column, pe.Column)
			if tt.message != "" {
				assert.Equal(t, tt.message, pe.Message)
			}
			assert.True(t, errors.Is(err, &maaray.ParseError{Kind: tt.kind}))
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestParseErrorString(t *testing.T) {
	_, err := maaray.Parse("let = 1;", &maaray.Config{Filename: "main.mry"})
	require.Error(t, err)
	assert.Equal(t, "parse error at main.mry:1:5: expected name after let, got '='", err.Error())

	_, err = maaray.Parse("let = 1;", nil)
	assert.Equal(t, "parse error at 1:5: expected name after let, got '='", err.Error())

	assert.Equal(t, "parse error: boom", (&maaray.ParseError{Message: "boom"}).Error())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fib.mry")
	src := "func fib(n) {\n    if n == 0 || n == 1 { return n; }\n    return fib(n - 1) + fib(n - 2);\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	script, err := maaray.ParseFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, script.Filename())
	assert.Equal(t, path, script.Root().Pos().Filename)

	_, err = maaray.ParseFile(filepath.Join(t.TempDir(), "missing.mry"), nil)
	require.Error(t, err)
	_, isParse := maaray.IsParseError(err)
	assert.False(t, isParse)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(t.TempDir(), "bad.mry")
	require.NoError(t, os.WriteFile(bad, []byte("f(1"), 0o644))
	_, err = maaray.ParseFile(bad, nil)
	pe, ok := maaray.IsParseError(err)
	require.True(t, ok)
	assert.Equal(t, bad, pe.Filename)
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { maaray.MustParse("x;") })
	assert.Panics(t, func() { maaray.MustParse("x = 1;") })
}

func TestLex(t *testing.T) {
	lexems, err := maaray.Lex("let x = 1'000;\n", nil)
	require.NoError(t, err)

	var got []string
	for _, lx := range lexems {
		got = append(got, lx.String())
	}
	assert.Equal(t, []string{"let", "x", "=", "1'000", ";"}, got)
	assert.Equal(t, 1000.0, lexems[3].Value)

	_, err = maaray.Lex("a @ b", nil)
	pe, ok := maaray.IsParseError(err)
	require.True(t, ok)
	assert.Equal(t, maaray.UnsupportedCharacter, pe.Kind)
	assert.Equal(t, 3, pe.Column)
}

func TestScriptFormat(t *testing.T) {
	script := maaray.MustParse("func   add(a,b){return a+b}\nlet   x=add(1,2)")
	out, err := script.Format()
	require.NoError(t, err)
	assert.Equal(t, "func add(a, b) {\n    return a + b;\n}\nlet x = add(1, 2);\n", out)

	again := maaray.MustParse(out)
	assert.True(t, script.Equal(again))
	assert.Len(t, again.Statements(), 2)
}

func TestScriptWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, maaray.MustParse("let x = 5;").WriteYAML(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "kind: Assignment\n"), out)
	assert.Contains(t, out, "name: x")
}

func TestScriptWalk(t *testing.T) {
	script := maaray.MustParse("f(a, g(b), c.d);")
	var idents []string
	script.Walk(func(n maaray.Node) bool {
		if id, ok := n.(*maaray.Ident); ok {
			idents = append(idents, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"f", "a", "g", "b", "c", "d"}, idents)
}

func TestScriptFind(t *testing.T) {
	src := "let Count = 0;\nfunc count() { return Count; }\n"

	matches, err := maaray.MustParse(src).Find("^count$")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "count", matches[0].Name)
	assert.Equal(t, "func", matches[0].Kind.String())

	script, err := maaray.Parse(src, &maaray.Config{IgnoreCase: true})
	require.NoError(t, err)
	matches, err = script.Find("^count$")
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	_, err = script.Find("(")
	require.Error(t, err)
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := maaray.Parse("let x", &maaray.Config{Logger: &logger})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "parse failed")
}

func TestConfigNotModified(t *testing.T) {
	cfg := &maaray.Config{Filename: "main.mry", MaxDepth: -1}

	_, err := maaray.Parse("let x = 1;", cfg)
	require.NoError(t, err)
	_, err = maaray.Lex("let x = 1;", cfg)
	require.NoError(t, err)

	assert.Equal(t, &maaray.Config{Filename: "main.mry", MaxDepth: -1}, cfg)
}

func TestIsParseErrorWrapped(t *testing.T) {
	_, err := maaray.Parse("f(", nil)
	require.Error(t, err)

	wrapped := fmt.Errorf("main.mry: %w", err)
	pe, ok := maaray.IsParseError(wrapped)
	require.True(t, ok)
	assert.Equal(t, maaray.UnexpectedEOF, pe.Kind)

	_, ok = maaray.IsParseError(errors.New("other"))
	assert.False(t, ok)
	_, ok = maaray.IsParseError(nil)
	assert.False(t, ok)
}

func TestConfigMaxDepth(t *testing.T) {
	src := strings.Repeat("{", 20) + strings.Repeat("}", 20)
	_, err := maaray.Parse(src, &maaray.Config{MaxDepth: 5})
	require.Error(t, err)

	_, err = maaray.Parse(src, nil)
	require.NoError(t, err)
}

func BenchmarkParse(b *testing.B) {
	src := strings.Repeat("func fib(n) { if n == 0 || n == 1 { return n; } return fib(n - 1) + fib(n - 2); }\n", 50)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = maaray.Parse(src, nil)
	}
}

// Example functions for documentation
func ExampleParse() {
	script, _ := maaray.Parse("func add(a, b) { return a + b; }", nil)
	fn := script.Root().(*maaray.Function)
	fmt.Println(fn.Name, len(fn.Args))
	// Output: add 2
}

func ExampleScript_Format() {
	script := maaray.MustParse("let   x=5")
	out, _ := script.Format()
	fmt.Print(out)
	// Output: let x = 5;
}
