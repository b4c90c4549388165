// Package value defines the in-memory representation of a JSON document.
//
// Value is a closed tagged union over the JSON kinds:
//
//	Kind       Payload
//	─────────────────────────
//	null       -
//	bool       bool
//	int        int64
//	float      float64
//	string     unescaped text
//	array      ordered []Value
//	object     ordered, unique string keys
//
// Number literals without a fraction or exponent parse as int; everything
// else parses as float. Integer literals outside the int64 range fall back
// to float, losing precision. This is the documented lossy path of the
// numeric model.
//
// Objects preserve insertion order. Setting an existing key overwrites the
// value in place without moving the entry, which is also how duplicate keys
// during parsing resolve (last value wins, first position kept).
//
// Values are freely copyable; containers are held by pointer, so copies of
// a Value share the same array/object. Use Clone for a deep copy with no
// shared containers.
package value
