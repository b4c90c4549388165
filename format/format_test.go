package format

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/wippyai/fastjson/errors"
	"github.com/wippyai/fastjson/parser"
	"github.com/wippyai/fastjson/value"
)

func mustFormat(t *testing.T, v value.Value, cfg Config) string {
	t.Helper()
	s, err := Format(v, cfg)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	return s
}

func sampleObject() value.Value {
	obj := value.NewObject()
	obj.Set("a", value.Int(1))
	obj.Set("b", value.NewArray(value.Bool(true), value.Null()).Value())
	obj.Set("c", value.NewObject().Value())
	return obj.Value()
}

func TestFormat_Compact(t *testing.T) {
	got := mustFormat(t, sampleObject(), Config{})
	want := `{"a":1,"b":[true,null],"c":{}}`
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_Indent(t *testing.T) {
	got := mustFormat(t, sampleObject(), Config{Indent: 2})
	want := strings.Join([]string{
		`{`,
		`  "a": 1,`,
		`  "b": [`,
		`    true,`,
		`    null`,
		`  ],`,
		`  "c": {}`,
		`}`,
	}, "\n")
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_EmptyContainers(t *testing.T) {
	// empty containers stay inline even when indenting
	arr := value.NewArray(value.NewArray().Value(), value.NewObject().Value()).Value()
	got := mustFormat(t, arr, Config{Indent: 4})
	want := "[\n    [],\n    {}\n]"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_SortKeys(t *testing.T) {
	obj := value.NewObject()
	obj.Set("zebra", value.Int(1))
	obj.Set("apple", value.Int(2))
	obj.Set("mango", value.Int(3))

	got := mustFormat(t, obj.Value(), Config{SortKeys: true})
	want := `{"apple":2,"mango":3,"zebra":1}`
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	// insertion order without the flag
	got = mustFormat(t, obj.Value(), Config{})
	want = `{"zebra":1,"apple":2,"mango":3}`
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_Strings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cfg  Config
		want string
	}{
		{"plain", "hello", Config{}, `"hello"`},
		{"named escapes", "a\nb\tc", Config{}, `"a\nb\tc"`},
		{"quote and backslash", `say "hi" \ bye`, Config{}, `"say \"hi\" \\ bye"`},
		{"control characters", "\x01\x1f", Config{}, `"\u0001\u001f"`},
		{"delete character", "a\x7fb", Config{}, `"a\u007fb"`},
		{"utf8 passthrough", "héllo 世界", Config{}, `"héllo 世界"`},
		{"ascii only bmp", "héllo", Config{ASCIIOnly: true}, `"h\u00e9llo"`},
		{"ascii only surrogate pair", "a😀b", Config{ASCIIOnly: true}, `"a\ud83d\ude00b"`},
		{"ascii only leaves ascii alone", "plain", Config{ASCIIOnly: true}, `"plain"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustFormat(t, value.String(tt.in), tt.cfg)
			if got != tt.want {
				t.Errorf("Format(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_Numbers(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Int(0), "0"},
		{value.Int(math.MaxInt64), "9223372036854775807"},
		{value.Int(math.MinInt64), "-9223372036854775808"},
		{value.Float(1.5), "1.5"},
		// integral floats keep a marker so they reparse as floats
		{value.Float(5), "5.0"},
		{value.Float(math.Copysign(0, -1)), "-0.0"},
		{value.Float(1e21), "1e+21"},
		{value.Float(0.1), "0.1"},
	}

	for _, tt := range tests {
		got := mustFormat(t, tt.v, Config{})
		if got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.v.Float(), got, tt.want)
		}
	}
}

func TestFormat_FloatRoundTrip(t *testing.T) {
	floats := []float64{
		0.1, 1.0 / 3.0, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64,
		-2.2250738585072014e-308, 1e100, 123456789.123456789,
	}
	for _, x := range floats {
		in := value.Float(x)
		text := mustFormat(t, in, Config{})
		out, err := parser.Parse([]byte(text))
		if err != nil {
			t.Fatalf("reparsing %s: %v", text, err)
		}
		if !out.Equal(in) {
			t.Errorf("float %v round-tripped through %s to %v", x, text, out.Float())
		}
	}
}

func TestFormat_NonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		obj := value.NewObject()
		obj.Set("a", value.NewArray(value.Float(x)).Value())

		_, err := Format(obj.Value(), Config{})
		var ferr *errors.Error
		if !stderrors.As(err, &ferr) || ferr.Kind != errors.KindUnsupportedValue {
			t.Fatalf("Format(%v) error = %v, want unsupported_value", x, err)
		}
		if got := strings.Join(ferr.Path, "."); got != "a.0" {
			t.Errorf("path = %q, want a.0", got)
		}
		if err := Validate(obj.Value()); !stderrors.Is(err, ferr) {
			t.Errorf("Validate disagrees with Format: %v", err)
		}
	}
}

func TestFormat_Cycles(t *testing.T) {
	selfArr := value.NewArray()
	selfArr.Append(selfArr.Value())

	selfObj := value.NewObject()
	selfObj.Set("me", selfObj.Value())

	indirect := value.NewObject()
	inner := value.NewArray(indirect.Value())
	indirect.Set("loop", inner.Value())

	for _, tt := range []struct {
		name string
		v    value.Value
	}{
		{"self-referential array", selfArr.Value()},
		{"self-referential object", selfObj.Value()},
		{"indirect cycle", indirect.Value()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			want := &errors.Error{Phase: errors.PhaseFormat, Kind: errors.KindCycle}
			if _, err := Format(tt.v, Config{}); !stderrors.Is(err, want) {
				t.Errorf("Format error = %v, want cycle", err)
			}
			if err := Validate(tt.v); !stderrors.Is(err, want) {
				t.Errorf("Validate error = %v, want cycle", err)
			}
		})
	}
}

func TestFormat_SharedContainerIsNotACycle(t *testing.T) {
	shared := value.NewArray(value.Int(1))
	outer := value.NewArray(shared.Value(), shared.Value())

	got := mustFormat(t, outer.Value(), Config{})
	if got != "[[1],[1]]" {
		t.Errorf("Format = %q, want [[1],[1]]", got)
	}
	if err := Validate(outer.Value()); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestWrite_SinkFailure(t *testing.T) {
	cause := fmt.Errorf("no space left")
	err := Write(sampleObject(), &failingWriter{err: cause}, Config{})

	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseIO, Kind: errors.KindIOFailure}) {
		t.Fatalf("error = %v, want io_failure", err)
	}
	if !stderrors.Is(err, cause) {
		t.Errorf("cause %v not reachable from %v", cause, err)
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }
func (w *failingWriter) WriteByte(byte) error        { return w.err }
func (w *failingWriter) WriteString(string) (int, error) {
	return 0, w.err
}
