package maaray

import (
	"github.com/rs/zerolog"

	"github.com/kolkov/maaray/internal/query"
)

// Config holds configuration options for parsing and searching.
type Config struct {
	// Filename is recorded in every position and error.
	// Empty for source that does not come from a file.
	Filename string

	// Logger receives parser diagnostics: backtracking at Trace level and
	// the failing error at Debug level.
	// If nil, logging is disabled.
	Logger *zerolog.Logger

	// MaxDepth limits block and expression nesting.
	// Zero means the parser default.
	MaxDepth int

	// IgnoreCase makes Script.Find patterns case-insensitive.
	IgnoreCase bool

	// LongestMatch enables leftmost-longest matching in Script.Find, which
	// affects the reported match spans.
	LongestMatch bool
}

// regexCache is shared by all scripts so repeated searches for the same
// pattern compile it once.
var regexCache = query.NewRegexCache(query.DefaultCacheSize)

// withDefaults returns a copy of config with defaults applied; the caller's
// Config is left unchanged.
func withDefaults(config *Config) *Config {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()
	return &cfg
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
}

func (c *Config) search() *query.Searcher {
	return query.NewSearcher(regexCache, query.RegexConfig{
		IgnoreCase: c.IgnoreCase,
		Longest:    c.LongestMatch,
	})
}
