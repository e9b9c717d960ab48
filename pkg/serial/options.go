package serial

import (
	"github.com/matzehuels/deckjson/pkg/attrs"
	"github.com/matzehuels/deckjson/pkg/casing"
)

// DefaultMaxDepth bounds how deeply nested a value may be before it is
// treated as cyclic.
const DefaultMaxDepth = 512

// Option configures [Serialize] and [SerializeDialect].
type Option func(*config)

type config struct {
	block    attrs.BlockList
	remap    casing.RemapFunc
	maxDepth int
	indent   string
}

func newConfig(opts []Option) *config {
	c := &config{
		block:    attrs.DefaultBlockList(),
		remap:    casing.LowerCamelCaseKeys,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBlockList replaces the default block-list. A nil list blocks nothing.
func WithBlockList(b attrs.BlockList) Option { return func(c *config) { c.block = b } }

// WithRemap sets the key remapper applied to every extracted attribute
// mapping. Pass nil to keep snake_case keys.
func WithRemap(fn casing.RemapFunc) Option { return func(c *config) { c.remap = fn } }

// WithMaxDepth sets the nesting limit. Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithIndent pretty-prints canonical JSON with the given indent string.
// The dialect ignores it.
func WithIndent(indent string) Option { return func(c *config) { c.indent = indent } }
