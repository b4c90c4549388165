package value

type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind is a leaf (non-container) kind.
func (k Kind) IsScalar() bool {
	return k <= KindString
}

// IsNumber reports whether the kind is one of the two numeric variants.
func (k Kind) IsNumber() bool {
	return k == KindInt || k == KindFloat
}
