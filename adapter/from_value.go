package adapter

import "github.com/wippyai/fastjson/value"

// Options shapes the host representation produced by FromValue.
type Options struct {
	// OrderedObjects decodes objects to *value.Object, preserving key
	// order. The default decodes to map[string]any, the Go-native shape,
	// which drops ordering.
	OrderedObjects bool
}

// FromValue converts a value into host-native Go types: nil, bool, int64,
// float64, string, []any and map[string]any.
func FromValue(v value.Value) any {
	return FromValueWith(v, Options{})
}

// FromValueWith is FromValue with explicit shaping options.
func FromValueWith(v value.Value, opts Options) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.Bool()
	case value.KindInt:
		return v.Int()
	case value.KindFloat:
		return v.Float()
	case value.KindString:
		return v.Str()
	case value.KindArray:
		a := v.Array()
		out := make([]any, a.Len())
		for i := 0; i < a.Len(); i++ {
			out[i] = FromValueWith(a.At(i), opts)
		}
		return out
	case value.KindObject:
		o := v.Object()
		if opts.OrderedObjects {
			// hand back the ordered mapping itself, deep-copied so the
			// caller cannot alias into the decoded tree
			return v.Clone().Object()
		}
		out := make(map[string]any, o.Len())
		for _, m := range o.Members() {
			out[m.Key] = FromValueWith(m.Value, opts)
		}
		return out
	}
	return nil
}
