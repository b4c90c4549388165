package value

// Array is an ordered sequence of values. Arrays own their elements.
type Array struct {
	elems []Value
}

// NewArray creates an array holding the given elements.
func NewArray(elems ...Value) *Array {
	return &Array{elems: elems}
}

// NewArrayCap creates an empty array with capacity for n elements.
func NewArrayCap(n int) *Array {
	return &Array{elems: make([]Value, 0, n)}
}

// Value wraps the array as a Value.
func (a *Array) Value() Value {
	return Value{kind: KindArray, arr: a}
}

// Len returns the element count.
func (a *Array) Len() int {
	return len(a.elems)
}

// At returns the element at index i. Panics if out of range, same as a
// slice index.
func (a *Array) At(i int) Value {
	return a.elems[i]
}

// Append adds elements to the end of the array.
func (a *Array) Append(vs ...Value) {
	a.elems = append(a.elems, vs...)
}

// Elems returns the backing slice. Callers must not retain it across
// mutations of the array.
func (a *Array) Elems() []Value {
	return a.elems
}

// Member is a single object entry.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered mapping with unique string keys. Insertion order is
// preserved; setting an existing key overwrites in place, keeping the
// original position (last write wins for the value, first write wins for
// the position).
type Object struct {
	index   map[string]int
	members []Member
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Value wraps the object as a Value.
func (o *Object) Value() Value {
	return Value{kind: KindObject, obj: o}
}

// Len returns the entry count.
func (o *Object) Len() int {
	return len(o.members)
}

// Set inserts or overwrites the value for key.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	if i, ok := o.index[key]; ok {
		return o.members[i].Value, true
	}
	return Value{}, false
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// At returns the i-th entry in insertion order.
func (o *Object) At(i int) Member {
	return o.members[i]
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the entries in insertion order. Callers must not retain
// the slice across mutations of the object.
func (o *Object) Members() []Member {
	return o.members
}
