package attrs

import (
	"maps"
	"reflect"
	"strings"

	"github.com/samber/lo"

	"github.com/matzehuels/deckjson/pkg/casing"
	"github.com/matzehuels/deckjson/pkg/errors"
	"github.com/matzehuels/deckjson/pkg/normalize"
)

// TagName is the struct tag consulted for attribute names.
const TagName = "deck"

// Mapper is implemented by types that enumerate their own attributes instead
// of relying on struct reflection.
type Mapper interface {
	AsAttributeMapping() map[string]any
}

// Extract returns the attributes of obj with null values removed and truthy
// block-listed attributes dropped. obj itself is never modified.
func Extract(obj any, block BlockList) (map[string]any, error) {
	raw, err := Fields(obj)
	if err != nil {
		return nil, err
	}

	attrs := lo.OmitBy(raw, func(_ string, v any) bool { return IsNull(v) })
	for name := range block {
		if v, ok := attrs[name]; ok && Truthy(v) {
			delete(attrs, name)
		}
	}
	return attrs, nil
}

// Fields returns every attribute of obj, nulls included, in a fresh map.
func Fields(obj any) (map[string]any, error) {
	if obj == nil {
		return nil, errors.New(errors.ErrCodeUnsupportedType, "cannot read attributes of nil")
	}
	if m, ok := obj.(Mapper); ok {
		return cloneMapping(m.AsAttributeMapping()), nil
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, errors.New(errors.ErrCodeUnsupportedType, "cannot read attributes of nil %s", rv.Type())
		}
		rv = rv.Elem()
		if m, ok := asMapper(rv); ok {
			return cloneMapping(m.AsAttributeMapping()), nil
		}
	}

	switch rv.Kind() {
	case reflect.Struct:
		out := make(map[string]any, rv.NumField())
		structFields(rv, out)
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, errors.New(errors.ErrCodeUnsupportedType, "cannot read attributes of %s: keys are not strings", rv.Type())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupportedType, "cannot read attributes of %s", rv.Type())
}

func asMapper(rv reflect.Value) (Mapper, bool) {
	if rv.CanInterface() {
		if m, ok := rv.Interface().(Mapper); ok {
			return m, true
		}
	}
	if rv.CanAddr() && rv.Addr().CanInterface() {
		if m, ok := rv.Addr().Interface().(Mapper); ok {
			return m, true
		}
	}
	return nil, false
}

func cloneMapping(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}

func structFields(rv reflect.Value, out map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag := f.Tag.Get(TagName)
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		fv := rv.Field(i)
		if f.Anonymous && name == "" && f.IsExported() {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				structFields(fv, out)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if opts == "omitempty" && fv.IsZero() {
			continue
		}
		if name == "" {
			name = casing.ToSnakeCase(f.Name)
		}
		out[name] = fv.Interface()
	}
}

// IsNull reports whether v is nil or a nil pointer, interface, map, slice,
// func or channel.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Truthy reports whether v holds a meaningful value: non-zero numbers, true,
// non-empty strings and collections, and any non-nil object.
func Truthy(v any) bool {
	if IsNull(v) {
		return false
	}
	if al, ok := v.(normalize.ArrayLike); ok {
		return al.Len() > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}
