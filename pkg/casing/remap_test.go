package casing

import (
	"reflect"
	"strings"
	"testing"
)

func TestLowerCamelCaseKeys(t *testing.T) {
	attrs := map[string]any{
		"map_style":          "dark",
		"initial_view_state": 1,
		"layers":             []int{1},
		"alreadyCamel":       true,
	}
	LowerCamelCaseKeys(attrs)

	want := map[string]any{
		"mapStyle":         "dark",
		"initialViewState": 1,
		"layers":           []int{1},
		"alreadyCamel":     true,
	}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("LowerCamelCaseKeys() = %v, want %v", attrs, want)
	}
	for k := range attrs {
		if strings.Contains(k, "_") {
			t.Errorf("key %q still contains an underscore", k)
		}
	}
}

func TestLowerCamelCaseKeysIdempotent(t *testing.T) {
	attrs := map[string]any{"getFillColor": 1, "radius": 2}
	LowerCamelCaseKeys(attrs)
	LowerCamelCaseKeys(attrs)

	want := map[string]any{"getFillColor": 1, "radius": 2}
	if !reflect.DeepEqual(attrs, want) {
		t.Errorf("LowerCamelCaseKeys() = %v, want %v", attrs, want)
	}
}

func TestLowerCamelCaseKeysCollision(t *testing.T) {
	// "a_b" and "a__b" both collapse to "aB"; sorted order makes "a_b" land last.
	for i := 0; i < 20; i++ {
		attrs := map[string]any{"a__b": "first", "a_b": "second"}
		LowerCamelCaseKeys(attrs)
		if len(attrs) != 1 {
			t.Fatalf("len(attrs) = %d, want 1", len(attrs))
		}
		if attrs["aB"] != "second" {
			t.Fatalf("attrs[aB] = %v, want second", attrs["aB"])
		}
	}
}

func TestLowerCamelCaseKeysEmpty(t *testing.T) {
	attrs := map[string]any{}
	LowerCamelCaseKeys(attrs)
	if len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}

func TestRemapFuncApply(t *testing.T) {
	tests := []struct {
		name string
		fn   RemapFunc
		want string
	}{
		{"nil", nil, "map_style"},
		{"noop", NoRemap, "map_style"},
		{"camel", LowerCamelCaseKeys, "mapStyle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := map[string]any{"map_style": "dark"}
			tt.fn.Apply(attrs)
			if _, ok := attrs[tt.want]; !ok {
				t.Errorf("Apply() keys = %v, want key %q", attrs, tt.want)
			}
		})
	}
}
