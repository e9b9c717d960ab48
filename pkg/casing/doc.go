// Package casing converts attribute names between the snake_case convention
// used by Go-side configuration and the lowerCamelCase keys expected by the
// rendering frontend.
//
// # Key Transformation
//
// [ToCamelCase] drops every underscore and upper-cases the character that
// follows it. Nothing else is touched, so a leading underscore upper-cases
// the first visible character:
//
//	ToCamelCase("get_fill_color") // "getFillColor"
//	ToCamelCase("_leading")       // "Leading"
//
// [CamelAndLower] composes [ToCamelCase] with [LowerFirst] and is what the
// remapper uses, so renamed keys always start lower-case.
//
// # Key Remapping
//
// A [RemapFunc] rewrites the keys of an attribute mapping in place.
// [LowerCamelCaseKeys] renames every key that contains an underscore and
// leaves all other keys alone, which makes it idempotent. When two snake_case
// keys collapse onto the same camelCase key the later rename wins; renames
// run in sorted key order so the winner is stable between runs.
//
// A nil RemapFunc, or [NoRemap], disables renaming.
//
// # Field Names
//
// [ToSnakeCase] derives attribute names from Go field names ("MapboxKey" to
// "mapbox_key", "ID" to "id") for structs that carry no explicit tag.
package casing
