// Package query searches parsed maaray trees for names matching a regular
// expression.
package query

import (
	"sync"

	"github.com/coregx/coregex"
)

// RegexConfig controls regex behavior.
type RegexConfig struct {
	// Longest enables leftmost-longest matching. When false, matching is
	// leftmost-first (Perl-like), which is faster.
	Longest bool

	// IgnoreCase makes the whole pattern case-insensitive.
	IgnoreCase bool
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() RegexConfig {
	return RegexConfig{}
}

// Regex is a compiled name pattern.
type Regex struct {
	pattern string
	re      *coregex.Regexp
	config  RegexConfig
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with config.
func CompileWithConfig(pattern string, config RegexConfig) (*Regex, error) {
	expr := pattern
	if config.IgnoreCase {
		expr = "(?i)" + expr
	}

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}
	if config.Longest {
		re.Longest()
	}

	return &Regex{pattern: pattern, re: re, config: config}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Pattern returns the pattern as given to Compile.
func (r *Regex) Pattern() string {
	return r.pattern
}

// Config returns the configuration the regex was compiled with.
func (r *Regex) Config() RegexConfig {
	return r.config
}

// MatchString reports whether s contains any match.
func (r *Regex) MatchString(s string) bool {
	return r.re.MatchString(s)
}

// FindStringIndex returns the start and end of the first match, or nil.
func (r *Regex) FindStringIndex(s string) []int {
	return r.re.FindStringIndex(s)
}

// RegexCache caches compiled patterns with FIFO eviction. It is safe for
// concurrent use; hits do not lock.
type RegexCache struct {
	cache   sync.Map // map[cacheKey]*Regex
	orderMu sync.Mutex
	order   []cacheKey
	maxSize int
}

type cacheKey struct {
	pattern string
	config  RegexConfig
}

// DefaultCacheSize is used when NewRegexCache is given a size <= 0.
const DefaultCacheSize = 64

// NewRegexCache creates a cache holding at most maxSize patterns.
func NewRegexCache(maxSize int) *RegexCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &RegexCache{
		order:   make([]cacheKey, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the compiled pattern, compiling and caching it on a miss.
func (c *RegexCache) Get(pattern string, config RegexConfig) (*Regex, error) {
	key := cacheKey{pattern, config}
	if re, ok := c.cache.Load(key); ok {
		return re.(*Regex), nil
	}

	re, err := CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	if existing, loaded := c.cache.LoadOrStore(key, re); loaded {
		return existing.(*Regex), nil
	}

	c.orderMu.Lock()
	c.order = append(c.order, key)
	for len(c.order) > c.maxSize {
		c.cache.Delete(c.order[0])
		c.order = c.order[1:]
	}
	c.orderMu.Unlock()

	return re, nil
}

// Len returns the number of cached patterns.
func (c *RegexCache) Len() int {
	c.orderMu.Lock()
	defer c.orderMu.Unlock()
	return len(c.order)
}

// Clear removes all cached patterns.
func (c *RegexCache) Clear() {
	c.orderMu.Lock()
	defer c.orderMu.Unlock()
	for _, k := range c.order {
		c.cache.Delete(k)
	}
	c.order = c.order[:0]
}
