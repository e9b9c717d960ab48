package attrs

import (
	"slices"

	"github.com/samber/lo"
)

// BlockList is a set of attribute names withheld from serialized output.
// A nil BlockList blocks nothing.
type BlockList map[string]struct{}

// defaultBlocked lists the internal fields that never belong in output.
var defaultBlocked = []string{
	"mapbox_key",
	"google_maps_key",
	"deck_widget",
	"binary_data_sets",
	"_binary_data",
	"_kwargs",
}

// NewBlockList builds a BlockList from names.
func NewBlockList(names ...string) BlockList {
	b := make(BlockList, len(names))
	for _, n := range names {
		b[n] = struct{}{}
	}
	return b
}

// DefaultBlockList returns a fresh copy of the built-in block-list.
func DefaultBlockList() BlockList {
	return NewBlockList(defaultBlocked...)
}

// Contains reports whether name is blocked.
func (b BlockList) Contains(name string) bool {
	_, ok := b[name]
	return ok
}

// With returns a copy of b extended with names.
func (b BlockList) With(names ...string) BlockList {
	out := NewBlockList(lo.Keys(b)...)
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// Names returns the blocked names in sorted order.
func (b BlockList) Names() []string {
	names := lo.Keys(b)
	slices.Sort(names)
	return names
}
