package value

// Set is the host-side representation of an unordered collection. JSON has
// no set type: encoding a Set produces a JSON array of its elements, and
// decoding that array yields a plain array again. The round trip is
// deliberately asymmetric and lossy.
//
// Elements must themselves be encodable host values (scalars in practice,
// since map keys must be comparable).
type Set map[any]struct{}

// NewSet creates a set from the given elements.
func NewSet(elems ...any) Set {
	s := make(Set, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add inserts an element.
func (s Set) Add(e any) {
	s[e] = struct{}{}
}

// Has reports whether e is in the set.
func (s Set) Has(e any) bool {
	_, ok := s[e]
	return ok
}

// Len returns the element count.
func (s Set) Len() int {
	return len(s)
}
