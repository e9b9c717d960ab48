// Package attrs extracts the serializable attributes of an object as a
// mapping from snake_case name to value.
//
// # Reading Attributes
//
// [Fields] returns a fresh map of every attribute an object exposes:
//
//   - Types implementing [Mapper] supply the mapping themselves; it is copied
//     so later edits never reach the object.
//   - Structs are reflected over. Exported fields are named by their `deck`
//     tag, or by [casing.ToSnakeCase] of the field name when untagged.
//     `deck:"-"` hides a field, `deck:",omitempty"` hides it while it holds
//     its zero value, and untagged embedded structs are flattened.
//   - Maps with string keys are copied as-is.
//   - Pointers and interfaces are followed to the value they hold.
//
// # Filtering
//
// [Extract] reads the attributes and then:
//
//  1. Drops every null value (see [IsNull]).
//  2. Drops every block-listed attribute whose value is [Truthy].
//
// Block-listed attributes holding an empty or zero value survive the filter;
// only fields carrying something meaningful are withheld. The
// [DefaultBlockList] covers API keys, widget handles, cached binary buffers
// and captured call-time keyword arguments.
//
// [casing.ToSnakeCase]: github.com/matzehuels/deckjson/pkg/casing.ToSnakeCase
package attrs
