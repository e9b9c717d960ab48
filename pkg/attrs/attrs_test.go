package attrs

import (
	"reflect"
	"testing"

	"github.com/matzehuels/deckjson/pkg/errors"
)

type sample struct {
	A         *int
	B         int
	MapboxKey string
	C         int
}

func TestExtractFiltersNullAndBlocked(t *testing.T) {
	obj := &sample{A: nil, B: 5, MapboxKey: "secret", C: 0}

	got, err := Extract(obj, NewBlockList("mapbox_key"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	want := map[string]any{"b": 5, "c": 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractKeepsFalsyBlocked(t *testing.T) {
	obj := sample{B: 1}

	got, err := Extract(obj, DefaultBlockList())
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if v, ok := got["mapbox_key"]; !ok || v != "" {
		t.Errorf("Extract()[mapbox_key] = %v, %v; want empty string kept", v, ok)
	}
}

func TestExtractNilBlockList(t *testing.T) {
	got, err := Extract(sample{MapboxKey: "secret"}, nil)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if got["mapbox_key"] != "secret" {
		t.Errorf("Extract()[mapbox_key] = %v, want secret", got["mapbox_key"])
	}
}

type tagged struct {
	Style    string         `deck:"map_style"`
	Hidden   string         `deck:"-"`
	Provider string         `deck:"map_provider,omitempty"`
	Params   map[string]any `deck:"parameters"`
	internal string
}

func TestFieldsTags(t *testing.T) {
	obj := tagged{Style: "dark", Hidden: "x", Provider: "carto", internal: "y"}

	got, err := Fields(obj)
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}

	if got["map_style"] != "dark" {
		t.Errorf("map_style = %v, want dark", got["map_style"])
	}
	if got["map_provider"] != "carto" {
		t.Errorf("map_provider = %v, want carto", got["map_provider"])
	}
	if _, ok := got["hidden"]; ok {
		t.Error("hidden field should be skipped")
	}
	if _, ok := got["internal"]; ok {
		t.Error("unexported field should be skipped")
	}
	if _, ok := got["parameters"]; !ok {
		t.Error("nil map should still be read by Fields")
	}
}

type Base struct {
	ID string
}

type withEmbedded struct {
	Base
	Name string
}

type withEmbeddedPtr struct {
	*Base
	Name string
}

func TestFieldsEmbedded(t *testing.T) {
	got, err := Fields(withEmbedded{Base: Base{ID: "1"}, Name: "n"})
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	want := map[string]any{"id": "1", "name": "n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	got, err = Fields(withEmbeddedPtr{Name: "n"})
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	want = map[string]any{"name": "n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}

type mapped struct {
	props map[string]any
}

func (m *mapped) AsAttributeMapping() map[string]any { return m.props }

func TestFieldsMapperIsCopied(t *testing.T) {
	m := &mapped{props: map[string]any{"get_radius": 3}}

	got, err := Fields(m)
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	got["extra"] = true
	delete(got, "get_radius")

	if _, ok := m.props["extra"]; ok {
		t.Error("Fields() result shares storage with the source mapping")
	}
	if _, ok := m.props["get_radius"]; !ok {
		t.Error("source mapping was modified")
	}
}

func TestFieldsMapperThroughInterfacePointer(t *testing.T) {
	var v any = &mapped{props: map[string]any{"a": 1}}
	got, err := Fields(&v)
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	if got["a"] != 1 {
		t.Errorf("Fields() = %v, want a=1", got)
	}
}

func TestFieldsMap(t *testing.T) {
	src := map[string]int{"a_b": 1}
	got, err := Fields(src)
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	got["c"] = 2
	if len(src) != 1 {
		t.Error("Fields() mutated the source map")
	}
}

func TestFieldsUnsupported(t *testing.T) {
	var nilPtr *sample
	tests := []struct {
		name string
		obj  any
	}{
		{"nil", nil},
		{"nil pointer", nilPtr},
		{"int", 42},
		{"string", "text"},
		{"int keyed map", map[int]string{1: "a"}},
		{"slice", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fields(tt.obj)
			if err == nil {
				t.Fatal("Fields() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeUnsupportedType) {
				t.Errorf("Fields() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupportedType)
			}
		})
	}
}

func TestExtractDoesNotMutateSource(t *testing.T) {
	src := map[string]any{"mapbox_key": "secret", "gone": nil}
	if _, err := Extract(src, DefaultBlockList()); err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(src) != 2 {
		t.Errorf("source map has %d entries, want 2", len(src))
	}
}

func TestFieldsOmitEmpty(t *testing.T) {
	type doc struct {
		Description string `deck:",omitempty"`
		Title       string `deck:"name,omitempty"`
		Count       int
	}

	got, err := Fields(doc{})
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	want := map[string]any{"count": 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	got, err = Fields(doc{Description: "d", Title: "t"})
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}
	want = map[string]any{"description": "d", "name": "t", "count": 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}
