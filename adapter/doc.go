// Package adapter converts between host Go values and the value model.
//
// The mapping table is closed and explicit:
//
//	Host type                    Value kind
//	───────────────────────────────────────
//	nil, nil pointer/slice/map   null
//	bool                         bool
//	int, int8..int64             int
//	uint, uint8..uintptr         int (float above int64 range, lossy)
//	float32, float64             float
//	string                       string
//	slice, array                 array
//	map[string]T                 object (keys sorted)
//	map[T]struct{}, value.Set    array (lossy, order undefined)
//	value.Value/*Array/*Object   passthrough
//
// Host types outside the table fail with an unsupported_type error naming
// the Go type, rather than being silently stringified. Self-referential
// host graphs are detected by container identity and fail with a cycle
// error.
//
// The set projection is deliberately one-directional: an array is never
// inferred to have been a set on decode.
package adapter
