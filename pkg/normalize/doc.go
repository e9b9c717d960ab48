// Package normalize turns array-like values into plain nested sequences.
//
// # Array-like Values
//
// A value is array-like when it supports ordered element access and has a
// length, and is neither text nor a mapping. That covers Go slices and arrays
// (byte slices count as text and are left alone) and anything implementing
// [ArrayLike], such as the shaped numeric [Buffer].
//
// # Normalization
//
// [Value] walks a value depth-first:
//
//  1. A mapping is copied and each of its values is normalized.
//  2. An array-like value is materialized as []any; elements that are
//     themselves array-like or mappings are normalized in turn.
//  3. Anything else is returned unchanged.
//
// The mapping step runs before the array-like check, and the check looks at
// the result of the mapping step.
//
// Normalization never mutates its input: mappings are rebuilt rather than
// edited in place. There is no cycle detection; a self-referencing slice or
// map recurses until the stack is exhausted.
package normalize
