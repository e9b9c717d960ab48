package casing

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// RemapFunc rewrites the keys of attrs in place.
type RemapFunc func(attrs map[string]any)

// LowerCamelCaseKeys renames every key of attrs that contains an underscore
// to its [CamelAndLower] form. Keys without underscores are left untouched.
func LowerCamelCaseKeys(attrs map[string]any) {
	keys := lo.Keys(attrs)
	slices.Sort(keys)

	for _, snake := range keys {
		if !strings.Contains(snake, "_") {
			continue
		}
		value := attrs[snake]
		delete(attrs, snake)
		attrs[CamelAndLower(snake)] = value
	}
}

// NoRemap leaves attrs unchanged.
func NoRemap(map[string]any) {}

// Apply runs fn on attrs unless fn is nil.
func (fn RemapFunc) Apply(attrs map[string]any) {
	if fn != nil {
		fn(attrs)
	}
}
