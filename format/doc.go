// Package format renders a value tree as JSON text.
//
// Output shape is controlled by Config. Compact mode (Indent 0) emits
// minimal JSON with no whitespace. Indented mode puts each object entry
// and array element on its own line, adding Indent spaces per nesting
// level, with ": " after keys; empty objects and arrays stay on one line
// as {} and [].
//
// Numbers: ints render as plain decimals; floats use the shortest
// representation that reparses to the identical bit pattern, with a ".0"
// suffix when the result would otherwise look integral. NaN and Infinity
// are not valid JSON and fail with an unsupported_value error instead of
// emitting broken output.
//
// Cyclic value graphs are detected by container identity during the walk
// and reported as a cycle error rather than recursing forever.
package format
