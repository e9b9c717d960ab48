package attrs

import (
	"testing"

	"github.com/matzehuels/deckjson/pkg/normalize"
)

type lenOnly []int

func (l lenOnly) Len() int     { return len(l) }
func (l lenOnly) At(i int) any { return l[i] }

func TestIsNull(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]any
	var nilSlice []int
	var nilFunc func()
	one := 1

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"nil func", nilFunc, true},
		{"pointer", &one, false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"false", false, false},
		{"empty slice", []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNull(tt.v); got != tt.want {
				t.Errorf("IsNull(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	one := 1
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"zero", 0, false},
		{"int", 7, true},
		{"uint zero", uint8(0), false},
		{"float", 0.5, true},
		{"float zero", 0.0, false},
		{"string", "secret", true},
		{"empty string", "", false},
		{"slice", []byte{1}, true},
		{"empty slice", []string{}, false},
		{"map", map[string]int{"a": 1}, true},
		{"empty map", map[string]int{}, false},
		{"array-like", lenOnly{1}, true},
		{"empty array-like", lenOnly{}, false},
		{"zero buffer", &normalize.Buffer[float64]{}, false},
		{"pointer", &one, true},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestBlockList(t *testing.T) {
	b := DefaultBlockList()
	for _, name := range []string{"mapbox_key", "google_maps_key", "deck_widget", "binary_data_sets", "_binary_data", "_kwargs"} {
		if !b.Contains(name) {
			t.Errorf("DefaultBlockList() missing %q", name)
		}
	}

	extended := b.With("api_token")
	if !extended.Contains("api_token") {
		t.Error("With() should add the new name")
	}
	if b.Contains("api_token") {
		t.Error("With() should not modify the receiver")
	}

	names := NewBlockList("b", "a").Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", names)
	}

	var empty BlockList
	if empty.Contains("mapbox_key") {
		t.Error("nil BlockList should block nothing")
	}

	b["mapbox_key"] = struct{}{}
	delete(b, "mapbox_key")
	if !DefaultBlockList().Contains("mapbox_key") {
		t.Error("DefaultBlockList() should return a fresh copy")
	}
}
