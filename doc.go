// Package maaray provides the front end of the maaray scripting language:
// tokenizer, lexer and an ordered-choice recursive descent parser that
// produces a syntax tree.
//
// # Quick Start
//
// Parse source and inspect the tree:
//
//	script, err := maaray.Parse(`func add(a, b) { return a + b; }`, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fn := script.Root().(*maaray.Function)
//	fmt.Println(fn.Name) // add
//
// A source with a single statement yields that statement as the root; any
// other source yields a [Program]. A block holding a single statement is
// likewise replaced by that statement.
//
// # Configuration
//
// The [Config] type allows customization of parsing:
//   - Filename recorded in positions and errors
//   - A zerolog logger for parser tracing
//   - Nesting limit
//   - Case and match mode for [Script.Find]
//
// # Error Handling
//
// All failures are returned as [*ParseError] carrying an [ErrorKind] and the
// 1-based line and column of the problem. Nothing panics on malformed input
// except [MustParse].
//
// # Thread Safety
//
// A [Script] is immutable after parsing and safe for concurrent use.
package maaray
