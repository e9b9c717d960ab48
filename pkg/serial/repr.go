package serial

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/deckjson/pkg/attrs"
	"github.com/matzehuels/deckjson/pkg/errors"
	"github.com/matzehuels/deckjson/pkg/normalize"
)

// Repr renders v as a Python literal: None, True/False, quoted strings,
// [a, b] lists and {k: v} mappings with sorted keys. Objects nested inside v
// are rendered through the dialect serializer.
func Repr(v any, opts ...Option) (string, error) {
	return newConfig(opts).repr(v, 0)
}

func (c *config) repr(v any, depth int) (string, error) {
	if depth > c.maxDepth {
		return "", errors.New(errors.ErrCodeDepthExceeded, "value nested deeper than %d levels (cyclic object graph?)", c.maxDepth)
	}

	switch x := v.(type) {
	case nil:
		return "None", nil
	case attrs.Mapper:
		return c.dialect(v, depth)
	case encoding.TextMarshaler:
		if attrs.IsNull(v) {
			return "None", nil
		}
		text, err := x.MarshalText()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeEncoding, err, "marshal %T", v)
		}
		return pyQuote(string(text)), nil
	case []byte:
		return pyQuote(string(x)), nil
	case normalize.ArrayLike:
		if attrs.IsNull(v) {
			return "None", nil
		}
		return c.reprItems(normalize.Items(v), depth)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "None", nil
		}
		if rv.Elem().Kind() == reflect.Struct {
			return c.dialect(v, depth)
		}
		return c.repr(rv.Elem().Interface(), depth)
	case reflect.Struct:
		return c.dialect(v, depth)
	case reflect.Bool:
		if rv.Bool() {
			return "True", nil
		}
		return "False", nil
	case reflect.String:
		return pyQuote(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return pyFloat(rv.Float(), 32), nil
	case reflect.Float64:
		return pyFloat(rv.Float(), 64), nil
	case reflect.Slice:
		if rv.IsNil() {
			return "None", nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return pyQuote(string(rv.Bytes())), nil
		}
		return c.reprItems(normalize.Items(v), depth)
	case reflect.Array:
		return c.reprItems(normalize.Items(v), depth)
	case reflect.Map:
		if rv.IsNil() {
			return "None", nil
		}
		return c.reprMap(rv, depth)
	}
	return "", errors.New(errors.ErrCodeUnsupportedType, "cannot render value of type %s", rv.Type())
}

func (c *config) reprItems(items []any, depth int) (string, error) {
	parts := make([]string, len(items))
	for i, item := range items {
		s, err := c.repr(item, depth+1)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func (c *config) reprMap(rv reflect.Value, depth int) (string, error) {
	type entry struct {
		sortKey string
		text    string
	}
	entries := make([]entry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() == reflect.Interface && !k.IsNil() {
			k = k.Elem()
		}
		key, err := c.repr(k.Interface(), depth+1)
		if err != nil {
			return "", err
		}
		val, err := c.repr(iter.Value().Interface(), depth+1)
		if err != nil {
			return "", err
		}
		sortKey := key
		if k.Kind() == reflect.String {
			sortKey = k.String()
		}
		entries = append(entries, entry{sortKey: sortKey, text: key + ": " + val})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].sortKey < entries[j].sortKey })

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.text
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// pyQuote quotes s the way Python's repr does: single quotes unless s
// contains a single quote and no double quote.
func pyQuote(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == utf8.RuneError || unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// pyFloat formats f as Python's float repr: shortest round-trip digits,
// always with a fractional part, switching to exponent notation outside
// [1e-4, 1e16).
func pyFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, bits)
	_, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
