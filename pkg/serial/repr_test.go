package serial

import (
	"math"
	"testing"
)

func TestPyFloat(t *testing.T) {
	tests := []struct {
		in   float64
		bits int
		want string
	}{
		{1, 64, "1.0"},
		{2.5, 64, "2.5"},
		{0.1, 64, "0.1"},
		{-0.0, 64, "0.0"},
		{math.Copysign(0, -1), 64, "-0.0"},
		{0.0001, 64, "0.0001"},
		{1.5e-5, 64, "1.5e-05"},
		{1e15, 64, "1000000000000000.0"},
		{1e16, 64, "1e+16"},
		{1e22, 64, "1e+22"},
		{123456789, 64, "123456789.0"},
		{float64(float32(0.1)), 32, "0.1"},
		{math.NaN(), 64, "nan"},
		{math.Inf(1), 64, "inf"},
		{math.Inf(-1), 64, "-inf"},
	}

	for _, tt := range tests {
		if got := pyFloat(tt.in, tt.bits); got != tt.want {
			t.Errorf("pyFloat(%v, %d) = %q, want %q", tt.in, tt.bits, got, tt.want)
		}
	}
}

func TestPyQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", `'abc'`},
		{"", `''`},
		{"it's", `"it's"`},
		{`say "hi"`, `'say "hi"'`},
		{`both ' and "`, `'both \' and "'`},
		{"a\nb", `'a\nb'`},
		{"tab\there", `'tab\there'`},
		{"\r", `'\r'`},
		{"\x01", `'\x01'`},
		{"\x7f", `'\x7f'`},
		{`\`, `'\\'`},
		{"héllo", `'héllo'`},
		{"\u200b", `'\u200b'`},
	}

	for _, tt := range tests {
		if got := pyQuote(tt.in); got != tt.want {
			t.Errorf("pyQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "None"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"int", -7, "-7"},
		{"uint", uint8(200), "200"},
		{"float", 3.0, "3.0"},
		{"string", "x", "'x'"},
		{"bytes", []byte("raw"), "'raw'"},
		{"list", []any{1, "a", nil, false}, "[1, 'a', None, False]"},
		{"empty list", []int{}, "[]"},
		{"nil slice", []int(nil), "None"},
		{"empty map", map[string]any{}, "{}"},
		{"string keys", map[string]int{"b": 2, "a": 1}, "{'a': 1, 'b': 2}"},
		{"int keys", map[int]string{2: "b", 10: "a"}, "{10: 'a', 2: 'b'}"},
		{"nested", map[string]any{"xs": [][]int{{1}, {2, 3}}}, "{'xs': [[1], [2, 3]]}"},
		{"named", provider("carto"), "'carto'"},
		{"object", dialectLayer{Type: "A"}, `{"getRadius": 0, "type": "A"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Repr(tt.in)
			if err != nil {
				t.Fatalf("Repr() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Repr() = %s, want %s", got, tt.want)
			}
		})
	}
}
