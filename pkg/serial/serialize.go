package serial

import (
	"encoding"
	"math"
	"reflect"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/matzehuels/deckjson/pkg/attrs"
	"github.com/matzehuels/deckjson/pkg/errors"
	"github.com/matzehuels/deckjson/pkg/normalize"
)

// canonical encodes reduced trees. Map keys are sorted at every level.
var canonical = jsoniter.Config{
	SortMapKeys: true,
	EscapeHTML:  false,
}.Froze()

// Serialize encodes obj as canonical JSON: sorted keys and compact
// separators unless [WithIndent] is given.
func Serialize(obj any, opts ...Option) (string, error) {
	c := newConfig(opts)
	tree, err := c.reduce(obj, 0)
	if err != nil {
		return "", err
	}

	var data []byte
	if c.indent != "" {
		data, err = canonical.MarshalIndent(tree, "", c.indent)
	} else {
		data, err = canonical.Marshal(tree)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncoding, err, "encode %T", obj)
	}
	return string(data), nil
}

// Reduce converts v into a tree of nil, bool, string, numbers, []any and
// map[string]any, applying the attribute fallback to every object it meets.
func Reduce(v any, opts ...Option) (any, error) {
	return newConfig(opts).reduce(v, 0)
}

func (c *config) reduce(v any, depth int) (any, error) {
	if depth > c.maxDepth {
		return nil, errors.New(errors.ErrCodeDepthExceeded, "value nested deeper than %d levels (cyclic object graph?)", c.maxDepth)
	}

	switch x := v.(type) {
	case nil:
		return nil, nil
	case attrs.Mapper:
		return c.fallback(v, depth)
	case encoding.TextMarshaler:
		if attrs.IsNull(v) {
			return nil, nil
		}
		text, err := x.MarshalText()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncoding, err, "marshal %T", v)
		}
		return string(text), nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return x, nil
	case float32:
		return x, checkFinite(float64(x))
	case float64:
		return x, checkFinite(x)
	case []byte:
		return string(x), nil
	case normalize.ArrayLike:
		if attrs.IsNull(v) {
			return nil, nil
		}
		return c.reduceItems(normalize.Items(v), depth)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			return c.fallback(v, depth)
		}
		return c.reduce(rv.Elem().Interface(), depth)
	case reflect.Struct:
		return c.fallback(v, depth)
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), checkFinite(rv.Float())
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
		return c.reduceItems(normalize.Items(v), depth)
	case reflect.Array:
		return c.reduceItems(normalize.Items(v), depth)
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		return c.reduceMap(rv, depth)
	}
	return nil, errors.New(errors.ErrCodeUnsupportedType, "cannot encode value of type %s", rv.Type())
}

// fallback is the hook for values JSON has no native form for: read their
// attributes, rename the keys and reduce the mapping.
func (c *config) fallback(v any, depth int) (any, error) {
	m, err := attrs.Extract(v, c.block)
	if err != nil {
		return nil, err
	}
	c.remap.Apply(m)

	out := make(map[string]any, len(m))
	for k, val := range m {
		r, err := c.reduce(val, depth+1)
		if err != nil {
			return nil, err
		}
		out[k] = r
	}
	return out, nil
}

func (c *config) reduceItems(items []any, depth int) (any, error) {
	out := make([]any, len(items))
	for i, item := range items {
		r, err := c.reduce(item, depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func (c *config) reduceMap(rv reflect.Value, depth int) (any, error) {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, ok := jsonKey(iter.Key())
		if !ok {
			return nil, errors.New(errors.ErrCodeUnsupportedType, "cannot encode map key of type %s", iter.Key().Type())
		}
		r, err := c.reduce(iter.Value().Interface(), depth+1)
		if err != nil {
			return nil, err
		}
		out[key] = r
	}
	return out, nil
}

// jsonKey stringifies a map key the way JSON object keys are written.
func jsonKey(k reflect.Value) (string, bool) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "null", true
		}
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), true
	case reflect.Float32:
		return pyFloat(k.Float(), 32), true
	case reflect.Float64:
		return pyFloat(k.Float(), 64), true
	}
	return "", false
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New(errors.ErrCodeUnsupportedType, "cannot encode %v as JSON", f)
	}
	return nil
}

// IsEncodingError reports whether err was raised while encoding a value:
// a failed marshal, an unsupported type or a nesting limit.
func IsEncodingError(err error) bool {
	return errors.IsEncoding(err)
}
