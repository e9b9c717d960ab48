// Package serial renders visualization objects as text for the frontend.
//
// # Overview
//
// Two renderings are provided:
//
//   - [Serialize] produces canonical JSON: keys camelCased and sorted at
//     every level, nulls and block-listed secrets removed.
//   - [SerializeDialect] produces the JSON-like dialect read by the Julia
//     PyCall bridge: a Python-literal rendering of the attribute mapping with
//     single quotes turned into double quotes and True/False lower-cased.
//
// Both accept the same [Option]s: [WithBlockList], [WithRemap] (nil disables
// key renaming), [WithMaxDepth] and, for canonical JSON only, [WithIndent].
//
// # Canonical JSON
//
// [Reduce] walks a value and returns a tree made only of nil, bool, string,
// numbers, []any and map[string]any. Whenever it meets an object (a struct
// or an [attrs.Mapper]) it calls the fallback hook: extract the attributes,
// remap the keys, and reduce the resulting mapping through the same walk.
// The tree is then encoded by json-iterator with sorted map keys.
//
//	out, err := serial.Serialize(deck)
//	// {"initialViewState":{"bearing":0,"latitude":37.7,...},"layers":[...],...}
//
// Values that have no JSON form fail with an encoding error: channels,
// functions, complex numbers, NaN and infinities report UNSUPPORTED_TYPE,
// and object graphs nested deeper than the max depth (which is what a cycle
// looks like) report DEPTH_EXCEEDED.
//
// # Dialect
//
// [SerializeDialect] extracts the attributes of the top-level object,
// normalizes every value with [normalize.ValueDepth] under the same nesting
// limit, remaps the keys, renders the mapping with [Repr] and finally runs
// [ReplaceTokens].
//
// The substitution is blind: it also rewrites quotes and the words True and
// False inside string values, so a tooltip reading "It's True" comes out as
// "It"s true". Callers that need exact string payloads should use
// [Serialize].
//
// # Mixin
//
// Embedding [Mixin] gives a type ToText, String and GoString methods backed
// by [SerializeDialect]:
//
//	type Marker struct {
//	    serial.Mixin
//	    Position []float64
//	}
//
//	func NewMarker(pos []float64) *Marker {
//	    m := &Marker{Position: pos}
//	    m.Mixin = serial.NewMixin(m)
//	    return m
//	}
//
// [attrs.Mapper]: github.com/matzehuels/deckjson/pkg/attrs.Mapper
// [normalize.ValueDepth]: github.com/matzehuels/deckjson/pkg/normalize.ValueDepth
package serial
