package normalize

import (
	"reflect"
	"testing"

	"github.com/matzehuels/deckjson/pkg/errors"
)

// numericBuffer is a minimal ArrayLike used to stand in for foreign buffer types.
type numericBuffer []float64

func (b numericBuffer) Len() int     { return len(b) }
func (b numericBuffer) At(i int) any { return b[i] }

func TestIsArrayLike(t *testing.T) {
	var nilSlice []int
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, false},
		{"int slice", []int{1}, true},
		{"nil slice", nilSlice, true},
		{"array", [2]float64{1, 2}, true},
		{"any slice", []any{"a"}, true},
		{"buffer", numericBuffer{1}, true},
		{"string", "abc", false},
		{"bytes", []byte("abc"), false},
		{"map", map[string]any{}, false},
		{"int", 3, false},
		{"struct", struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsArrayLike(tt.v); got != tt.want {
				t.Errorf("IsArrayLike(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestValueNestedBuffers(t *testing.T) {
	in := map[string]any{
		"x": numericBuffer{1, 2, 3},
		"y": map[string]any{"z": numericBuffer{4, 5}},
	}
	got := Value(in)

	want := map[string]any{
		"x": []any{1.0, 2.0, 3.0},
		"y": map[string]any{"z": []any{4.0, 5.0}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Value() = %#v, want %#v", got, want)
	}
}

func TestValueDoesNotMutateInput(t *testing.T) {
	inner := map[string]any{"z": numericBuffer{4, 5}}
	in := map[string]any{"y": inner}
	_ = Value(in)

	if _, ok := inner["z"].(numericBuffer); !ok {
		t.Errorf("inner[z] = %T, want numericBuffer", inner["z"])
	}
}

func TestValueSlices(t *testing.T) {
	in := [][]int{{1, 2}, {3}}
	got := Value(in)

	want := []any{[]any{1, 2}, []any{3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Value() = %#v, want %#v", got, want)
	}
}

func TestValueListOfMappings(t *testing.T) {
	in := []map[string]any{{"pos": numericBuffer{1, 2}}, {"name": "a"}}
	got := Value(in)

	want := []any{
		map[string]any{"pos": []any{1.0, 2.0}},
		map[string]any{"name": "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Value() = %#v, want %#v", got, want)
	}
}

func TestValueTypedMaps(t *testing.T) {
	got := Value(map[string][]int{"a": {1}})
	want := map[string]any{"a": []any{1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Value() = %#v, want %#v", got, want)
	}

	got = Value(map[int]string{1: "one"})
	wantAny := map[any]any{1: "one"}
	if !reflect.DeepEqual(got, wantAny) {
		t.Errorf("Value() = %#v, want %#v", got, wantAny)
	}
}

func TestValueScalarsUnchanged(t *testing.T) {
	type point struct{ X int }
	for _, v := range []any{nil, 1, "text", true, 2.5, []byte("raw"), point{X: 1}} {
		if got := Value(v); !reflect.DeepEqual(got, v) {
			t.Errorf("Value(%#v) = %#v, want unchanged", v, got)
		}
	}
}

func TestValueDepth(t *testing.T) {
	selfMap := map[string]any{}
	selfMap["self"] = selfMap
	selfList := []any{nil}
	selfList[0] = selfList

	tests := []struct {
		name  string
		in    any
		limit int
	}{
		{"cyclic map", selfMap, 16},
		{"cyclic slice", selfList, 16},
		{"too deep", []any{[]any{[]any{1}}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValueDepth(tt.in, tt.limit)
			if !errors.Is(err, errors.ErrCodeDepthExceeded) {
				t.Errorf("ValueDepth() error = %v, want %s", err, errors.ErrCodeDepthExceeded)
			}
		})
	}

	got, err := ValueDepth(map[string]any{"a": []int{1, 2}}, 2)
	if err != nil {
		t.Fatalf("ValueDepth() error: %v", err)
	}
	want := map[string]any{"a": []any{1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValueDepth() = %#v, want %#v", got, want)
	}
}

func TestItems(t *testing.T) {
	if got := Items(42); got != nil {
		t.Errorf("Items(42) = %v, want nil", got)
	}
	got := Items(numericBuffer{7, 8})
	if !reflect.DeepEqual(got, []any{7.0, 8.0}) {
		t.Errorf("Items() = %v, want [7 8]", got)
	}
}
