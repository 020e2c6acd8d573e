package tokenizer_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/maaray/internal/token"
	"github.com/kolkov/maaray/internal/tokenizer"
)

// scanAll collects every token, failing the test on the first error.
func scanAll(t *testing.T, src string) []tokenizer.Token {
	t.Helper()
	var toks []tokenizer.Token
	for tok, err := range tokenizer.NewFromString(src).All() {
		require.NoError(t, err, "source %q", src)
		toks = append(toks, tok)
	}
	return toks
}

func TestLettersOnlyIsOneIdent(t *testing.T) {
	for _, src := range []string{"a", "abc", "Hello", "straße", "ÄÖÜäöü", "zZyYxX"} {
		t.Run(src, func(t *testing.T) {
			toks := scanAll(t, src)
			require.Len(t, toks, 1)
			assert.Equal(t, tokenizer.Ident, toks[0].Kind)
			assert.Equal(t, src, toks[0].Text)
			assert.Equal(t, 1, toks[0].Pos.Line)
			assert.Equal(t, 1, toks[0].Pos.Column)
		})
	}
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		input string
		kinds []tokenizer.Kind
		texts []string
	}{
		{"foo_bar1", []tokenizer.Kind{tokenizer.Ident}, []string{"foo_bar1"}},
		{"1'000'000", []tokenizer.Kind{tokenizer.Number}, []string{"1'000'000"}},
		{"42abc", []tokenizer.Kind{tokenizer.Number, tokenizer.Ident}, []string{"42", "abc"}},
		{"3.14", []tokenizer.Kind{tokenizer.Number, tokenizer.Symbol, tokenizer.Number}, []string{"3", ".", "14"}},
		{`"hi"`, []tokenizer.Kind{tokenizer.String}, []string{"hi"}},
		{"a\tb", []tokenizer.Kind{tokenizer.Ident, tokenizer.Ident}, []string{"a", "b"}},
		{"a\nb", []tokenizer.Kind{tokenizer.Ident, tokenizer.Symbol, tokenizer.Ident}, []string{"a", "\n", "b"}},
		{"_x", []tokenizer.Kind{tokenizer.Symbol, tokenizer.Ident}, []string{"_", "x"}},
		{"f(a, b);", []tokenizer.Kind{
			tokenizer.Ident, tokenizer.Symbol, tokenizer.Ident, tokenizer.Symbol,
			tokenizer.Ident, tokenizer.Symbol, tokenizer.Symbol,
		}, []string{"f", "(", "a", ",", "b", ")", ";"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := scanAll(t, tt.input)
			require.Len(t, toks, len(tt.kinds))
			for i, tok := range toks {
				assert.Equal(t, tt.kinds[i], tok.Kind, "token[%d]", i)
				assert.Equal(t, tt.texts[i], tok.Text, "token[%d]", i)
			}
		})
	}
}

func TestSymbolRune(t *testing.T) {
	toks := scanAll(t, "+")
	require.Len(t, toks, 1)
	assert.Equal(t, '+', toks[0].Symbol)
}

func TestPositions(t *testing.T) {
	src := "let x = 5;\n  if ü {\n}"
	toks := scanAll(t, src)

	type lc struct{ line, col int }
	want := []lc{
		{1, 1}, {1, 5}, {1, 7}, {1, 9}, {1, 10}, {1, 11}, // let x = 5 ; \n
		{2, 3}, {2, 6}, {2, 8}, {2, 9}, // if ü { \n
		{3, 1}, // }
	}
	require.Len(t, toks, len(want))
	for i, tok := range toks {
		assert.Equal(t, want[i].line, tok.Pos.Line, "token[%d] %q line", i, tok.Text)
		assert.Equal(t, want[i].col, tok.Pos.Column, "token[%d] %q column", i, tok.Text)
	}
}

func TestStringEscapes(t *testing.T) {
	toks := scanAll(t, `"say \"hi\"\\ \n done"`)
	require.Len(t, toks, 1)
	assert.Equal(t, "say \"hi\"\\ \n done", toks[0].Text)
}

func TestStringSpansLines(t *testing.T) {
	toks := scanAll(t, "\"a\nb\" c")
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb", toks[0].Text)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, 4, toks[1].Pos.Column)
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind token.ErrorKind
		line int
		col  int
	}{
		{"unterminated", `"abc`, token.UnterminatedString, 1, 5},
		{"unterminated after escape", `"abc\`, token.UnterminatedString, 1, 6},
		{"unterminated multiline", "\"a\nbc", token.UnterminatedString, 2, 3},
		{"unknown escape", `"a\qb"`, token.InvalidEscapeSequence, 1, 4},
		{"tab escape unsupported", `"\t"`, token.InvalidEscapeSequence, 1, 3},
		{"invalid utf-8", "\"ab\xffc\"", token.UnsupportedCharacter, 1, 4},
		{"truncated utf-8", "\"\xe6\x97\"", token.UnsupportedCharacter, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenizer.NewFromString(tt.src).Next()
			require.Error(t, err)

			var terr *token.Error
			require.True(t, errors.As(err, &terr), "error type %T", err)
			assert.Equal(t, tt.kind, terr.Kind)
			assert.Equal(t, tt.line, terr.Pos.Line)
			assert.Equal(t, tt.col, terr.Pos.Column)
		})
	}
}

func TestResumeAfterInvalidEscape(t *testing.T) {
	tz := tokenizer.NewFromString(`"bad \q escape" ok`)

	_, err := tz.Next()
	require.ErrorIs(t, err, &token.Error{Kind: token.InvalidEscapeSequence})

	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, tokenizer.Ident, tok.Kind)
	assert.Equal(t, "ok", tok.Text)

	_, err = tz.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStringKeepsEncodedReplacementChar(t *testing.T) {
	tok, err := tokenizer.NewFromString("\"a\uFFFDb\"").Next()
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", tok.Text)
}

func TestResumeAfterInvalidUTF8(t *testing.T) {
	tz := tokenizer.NewFromString("\"\xff\" ok")

	_, err := tz.Next()
	require.ErrorIs(t, err, &token.Error{Kind: token.UnsupportedCharacter})

	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, "ok", tok.Text)
}

func TestEOFIsSticky(t *testing.T) {
	tz := tokenizer.NewFromString("  ")
	for range 3 {
		_, err := tz.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestFilename(t *testing.T) {
	tok, err := tokenizer.NewFile("main.mry", []byte("x")).Next()
	require.NoError(t, err)
	assert.Equal(t, "main.mry:1:1", tok.Pos.String())
}

func TestAllStopsEarly(t *testing.T) {
	n := 0
	for range tokenizer.NewFromString("a b c d").All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

// FuzzTokenizer checks that scanning terminates without panics and that
// token offsets only move forward.
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"func add(a, b) { return a + b; }",
		`let s = "a\"b\\c\n";`,
		`"unterminated`,
		`"\x"`,
		"1'000 + 2",
		"ü ß 日本語",
		"\xff\xfe",
		"\"a\xffb\" c",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		tz := tokenizer.NewFromString(src)
		last := -1
		for i := 0; i <= len(src)+1; i++ {
			tok, err := tz.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				continue
			}
			if tok.Pos.Offset <= last {
				t.Fatalf("offset did not advance: %d after %d", tok.Pos.Offset, last)
			}
			last = tok.Pos.Offset
			if tok.Kind == tokenizer.Ident && !strings.Contains(src, tok.Text) {
				t.Fatalf("identifier %q not in source", tok.Text)
			}
		}
		t.Fatalf("tokenizer did not reach EOF for %q", src)
	})
}

func TestEndPosition(t *testing.T) {
	tz := tokenizer.NewFromString("ab\ncd")
	for _, err := range tz.All() {
		require.NoError(t, err)
	}
	assert.Equal(t, 2, tz.Pos().Line)
	assert.Equal(t, 3, tz.Pos().Column)
	assert.Equal(t, 5, tz.Pos().Offset)
}
