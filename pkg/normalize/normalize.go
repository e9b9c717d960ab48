package normalize

import (
	"reflect"

	"github.com/matzehuels/deckjson/pkg/errors"
)

// ArrayLike is implemented by sequence types that are not Go slices, such as
// numeric buffers. At must accept every index in [0, Len()).
type ArrayLike interface {
	Len() int
	At(i int) any
}

var byteType = reflect.TypeOf(byte(0))

// IsArrayLike reports whether v is a slice, an array or an [ArrayLike].
// Strings and byte slices are text, not sequences.
func IsArrayLike(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(ArrayLike); ok {
		return true
	}
	rt := reflect.TypeOf(v)
	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		return rt.Elem() != byteType
	}
	return false
}

// IsMapping reports whether v is a Go map.
func IsMapping(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

// Value returns v with every nested array-like value replaced by []any.
// Maps with string keys come back as map[string]any, other maps as
// map[any]any. v must be acyclic; use [ValueDepth] for values that may
// refer to themselves.
func Value(v any) any {
	out, _ := walk(v, 0, -1)
	return out
}

// ValueDepth is [Value] with a nesting limit. It fails with
// DEPTH_EXCEEDED when v nests deeper than maxDepth levels, which is how a
// cyclic map or slice shows up.
func ValueDepth(v any, maxDepth int) (any, error) {
	return walk(v, 0, maxDepth)
}

// walk normalizes v at the given depth. A negative limit disables the check.
func walk(v any, depth, limit int) (any, error) {
	if limit >= 0 && depth > limit {
		return nil, errors.New(errors.ErrCodeDepthExceeded, "value nested deeper than %d levels (cyclic value?)", limit)
	}
	if IsMapping(v) {
		m, err := mapping(v, depth, limit)
		if err != nil {
			return nil, err
		}
		v = m
	}
	if IsArrayLike(v) {
		return list(v, depth, limit)
	}
	return v, nil
}

func mapping(v any, depth, limit int) (any, error) {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, val := range m {
			n, err := walk(val, depth+1, limit)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Type().Key().Kind() == reflect.String {
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			n, err := walk(iter.Value().Interface(), depth+1, limit)
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = n
		}
		return out, nil
	}

	out := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		n, err := walk(iter.Value().Interface(), depth+1, limit)
		if err != nil {
			return nil, err
		}
		out[iter.Key().Interface()] = n
	}
	return out, nil
}

func list(v any, depth, limit int) ([]any, error) {
	items := Items(v)
	for i, item := range items {
		if IsArrayLike(item) || IsMapping(item) {
			n, err := walk(item, depth+1, limit)
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
	}
	return items, nil
}

// Items copies the elements of an array-like value into a fresh slice
// without normalizing them. It returns nil when v is not array-like.
func Items(v any) []any {
	if al, ok := v.(ArrayLike); ok {
		items := make([]any, al.Len())
		for i := range items {
			items[i] = al.At(i)
		}
		return items
	}
	if !IsArrayLike(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}
