package serial

import (
	"fmt"

	"github.com/matzehuels/deckjson/pkg/errors"
)

// Texter is implemented by values that render themselves in the dialect.
type Texter interface {
	ToText() (string, error)
}

// Mixin gives the embedding type a dialect text form. It must be bound to
// its owner with [NewMixin]; a zero Mixin reports an error.
type Mixin struct {
	owner any
	opts  []Option
}

// NewMixin binds a Mixin to owner, usually a pointer to the embedding
// struct. opts apply to every rendering.
func NewMixin(owner any, opts ...Option) Mixin {
	return Mixin{owner: owner, opts: opts}
}

// ToText renders the owner with [SerializeDialect].
func (m Mixin) ToText() (string, error) {
	if m.owner == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "mixin is not bound to an owner")
	}
	return SerializeDialect(m.owner, m.opts...)
}

// String returns the same text as ToText, or a marker describing the
// failure.
func (m Mixin) String() string {
	text, err := m.ToText()
	if err != nil {
		return fmt.Sprintf("%%!(serial error: %s)", errors.UserMessage(err))
	}
	return text
}

// GoString makes %#v print the dialect text as well.
func (m Mixin) GoString() string {
	return m.String()
}

var _ Texter = Mixin{}
