package value

import "math"

// Value is a tagged union over the seven JSON kinds. The zero Value is null.
//
// Scalars are stored inline; arrays and objects are held by pointer so that
// container identity is observable (cycle detection keys on it) and so that
// passing a Value by value stays cheap.
type Value struct {
	obj  *Object
	arr  *Array
	str  string
	num  uint64
	kind Kind
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Int returns a JSON number value holding a 64-bit signed integer.
func Int(i int64) Value {
	return Value{kind: KindInt, num: uint64(i)}
}

// Float returns a JSON number value holding a 64-bit float.
func Float(f float64) Value {
	return Value{kind: KindFloat, num: math.Float64bits(f)}
}

// String returns a JSON string value. The text is the fully unescaped form.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload, or false for non-bool values.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.num != 0
}

// Int returns the integer payload, or 0 for non-int values.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}
	return int64(v.num)
}

// Float returns the float payload. Int values are widened; other kinds
// return 0.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return math.Float64frombits(v.num)
	case KindInt:
		return float64(int64(v.num))
	}
	return 0
}

// Str returns the string payload, or "" for non-string values.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Array returns the array payload, or nil for non-array values.
func (v Value) Array() *Array {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the object payload, or nil for non-object values.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Equal reports deep structural equality. Int and Float are distinct kinds
// even when numerically equal; object comparison is insertion-order
// sensitive, matching the round-trip guarantee.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool, KindInt:
		return v.num == o.num
	case KindFloat:
		// Bit equality so that round-trip checks are exact. NaN == NaN here.
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindArray:
		a, b := v.arr, o.arr
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !a.At(i).Equal(b.At(i)) {
				return false
			}
		}
		return true
	case KindObject:
		a, b := v.obj, o.obj
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			ma, mb := a.members[i], b.members[i]
			if ma.Key != mb.Key || !ma.Value.Equal(mb.Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy. The result shares no containers with the
// receiver, so mutating one never aliases into the other.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		dst := NewArrayCap(v.arr.Len())
		for i := 0; i < v.arr.Len(); i++ {
			dst.Append(v.arr.At(i).Clone())
		}
		return dst.Value()
	case KindObject:
		dst := NewObject()
		for i := 0; i < v.obj.Len(); i++ {
			m := v.obj.members[i]
			dst.Set(m.Key, m.Value.Clone())
		}
		return dst.Value()
	default:
		return v
	}
}
