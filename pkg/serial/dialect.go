package serial

import (
	"github.com/matzehuels/deckjson/pkg/attrs"
	"github.com/matzehuels/deckjson/pkg/errors"
	"github.com/matzehuels/deckjson/pkg/normalize"
)

// SerializeDialect renders obj in the dialect accepted by the Julia PyCall
// JSON reader: a Python-literal rendering with double quotes and lower-case
// booleans. See the package documentation for the substitution caveat.
func SerializeDialect(obj any, opts ...Option) (string, error) {
	return newConfig(opts).dialect(obj, 0)
}

func (c *config) dialect(obj any, depth int) (string, error) {
	if depth > c.maxDepth {
		return "", errors.New(errors.ErrCodeDepthExceeded, "value nested deeper than %d levels (cyclic object graph?)", c.maxDepth)
	}

	m, err := attrs.Extract(obj, c.block)
	if err != nil {
		return "", err
	}
	for k, v := range m {
		n, err := normalize.ValueDepth(v, c.maxDepth-depth)
		if err != nil {
			return "", err
		}
		m[k] = n
	}
	c.remap.Apply(m)

	text, err := c.repr(m, depth+1)
	if err != nil {
		return "", err
	}
	return ReplaceTokens(text), nil
}
