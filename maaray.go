package maaray

import (
	"errors"
	"fmt"
	"os"

	"github.com/kolkov/maaray/internal/lexer"
	"github.com/kolkov/maaray/internal/parser"
	"github.com/kolkov/maaray/internal/token"
	"github.com/kolkov/maaray/internal/tokenizer"
)

// Version is the maaray version string.
const Version = "0.1.0"

// Parse tokenizes, lexes and parses maaray source code.
//
// Parameters:
//   - src: maaray source code
//   - config: parse configuration (can be nil for defaults)
//
// Returns the parsed Script, or a *ParseError locating the first problem.
//
// Example:
//
//	script, err := maaray.Parse(`let x = 5;`, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%T\n", script.Root()) // *ast.Assignment
func Parse(src string, config *Config) (*Script, error) {
	return parseBytes([]byte(src), config)
}

// ParseFile reads and parses the file at path. Positions carry path as
// their filename unless config sets one.
func ParseFile(path string, config *Config) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	if cfg.Filename == "" {
		cfg.Filename = path
	}
	return parseBytes(src, &cfg)
}

// MustParse is like Parse but panics if the source cannot be parsed.
// It simplifies initialization of global scripts in tests and examples.
//
// Example:
//
//	var greet = maaray.MustParse(`func greet(name) { return "hi " + name; }`)
func MustParse(src string) *Script {
	script, err := Parse(src, nil)
	if err != nil {
		panic(err)
	}
	return script
}

// Lex returns the lexeme stream of src with layout removed.
func Lex(src string, config *Config) ([]Lexem, error) {
	config = withDefaults(config)

	tz := tokenizer.NewFile(config.Filename, []byte(src))
	lexems, err := lexer.New(tz).Collect()
	if err != nil {
		return nil, convertError(err)
	}
	return lexems, nil
}

func parseBytes(src []byte, config *Config) (*Script, error) {
	config = withDefaults(config)

	root, err := parser.ParseFile(src, parser.Options{
		Filename: config.Filename,
		Logger:   config.Logger,
		MaxDepth: config.MaxDepth,
	})
	if err != nil {
		return nil, convertError(err)
	}

	return &Script{
		root:     root,
		source:   string(src),
		filename: config.Filename,
		search:   config.search(),
	}, nil
}

// convertError turns an internal front-end error into the public type.
func convertError(err error) error {
	var te *token.Error
	if errors.As(err, &te) {
		return &ParseError{
			Kind:     te.Kind,
			Filename: te.Pos.Filename,
			Line:     te.Pos.Line,
			Column:   te.Pos.Column,
			Message:  messageOf(te),
			err:      te,
		}
	}
	return &ParseError{Message: err.Error(), err: err}
}

func messageOf(te *token.Error) string {
	if te.Message != "" {
		return te.Message
	}
	return te.Kind.String()
}
