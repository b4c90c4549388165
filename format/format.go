package format

import (
	"bytes"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/wippyai/fastjson/errors"
	"github.com/wippyai/fastjson/value"
)

// Config controls output shape.
type Config struct {
	// Indent is the number of spaces added per nesting level. 0 produces
	// compact output with no whitespace at all.
	Indent int
	// SortKeys renders object keys in sorted order instead of insertion
	// order.
	SortKeys bool
	// ASCIIOnly escapes all non-ASCII runes as \uXXXX sequences. Off by
	// default: strings are emitted as raw UTF-8.
	ASCIIOnly bool
}

// Writer is the sink for formatted output. *bytes.Buffer, *strings.Builder
// and *bufio.Writer all satisfy it.
type Writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Format renders the value as JSON text.
func Format(v value.Value, cfg Config) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)
	if err := Write(v, buf, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders the value to w. Semantic failures (NaN/Inf, cycles) are
// returned as format errors; sink failures are wrapped as io errors. On
// failure the sink may hold a truncated fragment, but never a complete
// valid document presented as success.
func Write(v value.Value, w Writer, cfg Config) error {
	f := formatter{w: w, cfg: cfg}
	if cfg.Indent > 0 {
		f.pad = strings.Repeat(" ", cfg.Indent)
	}
	if err := f.value(v, 0, nil); err != nil {
		return err
	}
	if f.err != nil {
		return errors.IO(f.err, "write output")
	}
	return nil
}

// Validate walks the tree without producing output, reporting the error a
// Write call would fail with. Only numbers and container identity can
// fail, so the walk is cheap; stream encoding uses it as a pre-pass so
// that a sink only ever sees a document that will format completely.
func Validate(v value.Value) error {
	var w validator
	return w.walk(v, nil)
}

type formatter struct {
	w    Writer
	err  error
	seen map[any]struct{}
	pad  string
	num  []byte
	cfg  Config
}

// str and byte funnel all output through a sticky first-error, so the walk
// code stays free of per-write error plumbing.
func (f *formatter) str(s string) {
	if f.err == nil {
		_, f.err = f.w.WriteString(s)
	}
}

func (f *formatter) byte(c byte) {
	if f.err == nil {
		f.err = f.w.WriteByte(c)
	}
}

func (f *formatter) newline(depth int) {
	if f.cfg.Indent <= 0 {
		return
	}
	f.byte('\n')
	for i := 0; i < depth; i++ {
		f.str(f.pad)
	}
}

func (f *formatter) value(v value.Value, depth int, path []string) error {
	switch v.Kind() {
	case value.KindNull:
		f.str("null")
	case value.KindBool:
		if v.Bool() {
			f.str("true")
		} else {
			f.str("false")
		}
	case value.KindInt:
		f.num = strconv.AppendInt(f.num[:0], v.Int(), 10)
		if f.err == nil {
			_, f.err = f.w.Write(f.num)
		}
	case value.KindFloat:
		return f.float(v.Float(), path)
	case value.KindString:
		f.string(v.Str())
	case value.KindArray:
		return f.array(v.Array(), depth, path)
	case value.KindObject:
		return f.object(v.Object(), depth, path)
	}
	return nil
}

// float renders the shortest representation that reparses to the identical
// bit pattern. Integral results get a ".0" suffix so the value reparses as
// a float, not an int.
func (f *formatter) float(x float64, path []string) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errors.UnsupportedValue(slices.Clone(path),
			"NaN and Infinity have no JSON representation")
	}
	f.num = strconv.AppendFloat(f.num[:0], x, 'g', -1, 64)
	if !bytes.ContainsAny(f.num, ".eE") {
		f.num = append(f.num, '.', '0')
	}
	if f.err == nil {
		_, f.err = f.w.Write(f.num)
	}
	return nil
}

func (f *formatter) array(a *value.Array, depth int, path []string) error {
	if err := f.enter(a, path); err != nil {
		return err
	}
	defer f.leave(a)

	if a.Len() == 0 {
		f.str("[]")
		return nil
	}
	f.byte('[')
	f.newline(depth + 1)
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			f.byte(',')
			f.newline(depth + 1)
		}
		if err := f.value(a.At(i), depth+1, append(path, strconv.Itoa(i))); err != nil {
			return err
		}
	}
	f.newline(depth)
	f.byte(']')
	return nil
}

func (f *formatter) object(o *value.Object, depth int, path []string) error {
	if err := f.enter(o, path); err != nil {
		return err
	}
	defer f.leave(o)

	if o.Len() == 0 {
		f.str("{}")
		return nil
	}

	members := o.Members()
	if f.cfg.SortKeys {
		members = slices.Clone(members)
		slices.SortStableFunc(members, func(a, b value.Member) int {
			return strings.Compare(a.Key, b.Key)
		})
	}

	f.byte('{')
	f.newline(depth + 1)
	for i, m := range members {
		if i > 0 {
			f.byte(',')
			f.newline(depth + 1)
		}
		f.string(m.Key)
		f.byte(':')
		if f.cfg.Indent > 0 {
			f.byte(' ')
		}
		if err := f.value(m.Value, depth+1, append(path, m.Key)); err != nil {
			return err
		}
	}
	f.newline(depth)
	f.byte('}')
	return nil
}

// enter registers a container on the current walk path. Revisiting one
// means the value graph contains itself; formatting it would never
// terminate.
func (f *formatter) enter(key any, path []string) error {
	if f.seen == nil {
		f.seen = make(map[any]struct{})
	}
	if _, ok := f.seen[key]; ok {
		return errors.Cycle(errors.PhaseFormat, slices.Clone(path))
	}
	f.seen[key] = struct{}{}
	return nil
}

func (f *formatter) leave(key any) {
	delete(f.seen, key)
}

type validator struct {
	seen map[any]struct{}
}

func (w *validator) walk(v value.Value, path []string) error {
	switch v.Kind() {
	case value.KindFloat:
		x := v.Float()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.UnsupportedValue(slices.Clone(path),
				"NaN and Infinity have no JSON representation")
		}
	case value.KindArray:
		a := v.Array()
		if err := w.enter(a, path); err != nil {
			return err
		}
		for i := 0; i < a.Len(); i++ {
			if err := w.walk(a.At(i), append(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
		delete(w.seen, a)
	case value.KindObject:
		o := v.Object()
		if err := w.enter(o, path); err != nil {
			return err
		}
		for _, m := range o.Members() {
			if err := w.walk(m.Value, append(path, m.Key)); err != nil {
				return err
			}
		}
		delete(w.seen, o)
	}
	return nil
}

func (w *validator) enter(key any, path []string) error {
	if w.seen == nil {
		w.seen = make(map[any]struct{})
	}
	if _, ok := w.seen[key]; ok {
		return errors.Cycle(errors.PhaseFormat, slices.Clone(path))
	}
	w.seen[key] = struct{}{}
	return nil
}
