package parser

import (
	stderrors "errors"
	"math"
	"strings"
	"testing"

	"github.com/wippyai/fastjson/errors"
	"github.com/wippyai/fastjson/lexer"
	"github.com/wippyai/fastjson/value"
)

func mustParse(t *testing.T, input string) value.Value {
	t.Helper()
	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return v
}

func TestParse_Values(t *testing.T) {
	obj := value.NewObject()
	obj.Set("a", value.Int(1))
	obj.Set("b", value.NewArray(value.Bool(true), value.Null()).Value())

	tests := []struct {
		name  string
		input string
		want  value.Value
	}{
		{"null", "null", value.Null()},
		{"true", "true", value.Bool(true)},
		{"false", "false", value.Bool(false)},
		{"int", "42", value.Int(42)},
		{"negative zero int", "-0", value.Int(0)},
		{"float", "3.14", value.Float(3.14)},
		{"exponent", "1e3", value.Float(1000)},
		{"string", `"hi"`, value.String("hi")},
		{"top-level scalar with whitespace", "  7\t\n", value.Int(7)},
		{"empty array", "[]", value.NewArray().Value()},
		{"empty object", "{}", value.NewObject().Value()},
		{"nested", `{"a": 1, "b": [true, null]}`, obj.Value()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v value, want %v", tt.input, got.Kind(), tt.want.Kind())
			}
		})
	}
}

func TestParse_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  value.Value
	}{
		{"9223372036854775807", value.Int(math.MaxInt64)},
		{"-9223372036854775808", value.Int(math.MinInt64)},
		// one past the int64 range falls back to float
		{"9223372036854775808", value.Float(9223372036854775808)},
		{"99999999999999999999", value.Float(1e20)},
		{"2.5e-3", value.Float(0.0025)},
	}

	for _, tt := range tests {
		got := mustParse(t, tt.input)
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q): kind %v, want %v (got %v / %v)",
				tt.input, got.Kind(), tt.want.Kind(), got.Float(), tt.want.Float())
		}
	}
}

func TestParse_DuplicateKeys(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2, "a": 3}`)
	obj := v.Object()

	if obj.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", obj.Len())
	}
	// last value wins, first position kept
	if keys := obj.Keys(); keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}
	if got, _ := obj.Get("a"); got.Int() != 3 {
		t.Errorf(`Get("a") = %d, want 3`, got.Int())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   errors.Kind
		offset int
	}{
		{"empty input", "", errors.KindUnexpectedEOF, 0},
		{"only whitespace", "   ", errors.KindUnexpectedEOF, 3},
		{"missing member value", `{"a": }`, errors.KindUnexpectedToken, 6},
		{"trailing garbage", `{} garbage`, errors.KindTrailingData, 3},
		{"second top-level value", `1 2`, errors.KindTrailingData, 2},
		{"trailing comma in array", "[1,2,]", errors.KindUnexpectedToken, 5},
		{"trailing comma in object", `{"a":1,}`, errors.KindUnexpectedToken, 7},
		{"missing comma in array", "[1 2]", errors.KindUnexpectedToken, 3},
		{"missing colon", `{"a" 1}`, errors.KindUnexpectedToken, 5},
		{"non-string key", "{1: 2}", errors.KindUnexpectedToken, 1},
		{"unclosed array", "[1", errors.KindUnexpectedEOF, 2},
		{"unclosed object", `{"a": 1`, errors.KindUnexpectedEOF, 7},
		{"unterminated string", `"abc`, errors.KindUnexpectedEOF, 0},
		{"bad number", "[01]", errors.KindInvalidNumber, 1},
		{"bad escape in key", `{"\q": 1}`, errors.KindInvalidEscape, 3},
		{"invalid utf8 in string", "[\"\xff\"]", errors.KindInvalidUTF8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v", tt.input, tt.kind)
			}
			var perr *errors.Error
			if !stderrors.As(err, &perr) {
				t.Fatalf("error %T is not a typed error: %v", err, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v (%v)", perr.Kind, tt.kind, err)
			}
			if perr.Offset != tt.offset {
				t.Errorf("offset = %d, want %d (%v)", perr.Offset, tt.offset, err)
			}
		})
	}
}

func TestParse_DepthLimit(t *testing.T) {
	deep := strings.Repeat("[", DefaultMaxDepth) + strings.Repeat("]", DefaultMaxDepth)
	if _, err := Parse([]byte(deep)); err != nil {
		t.Fatalf("nesting at the limit should parse: %v", err)
	}

	over := strings.Repeat("[", DefaultMaxDepth+1)
	_, err := Parse([]byte(over))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindDepthExceeded}) {
		t.Fatalf("error = %v, want depth_exceeded", err)
	}
}

func TestSetMaxDepth(t *testing.T) {
	parse := func(input string, depth int) error {
		p := New(lexer.New([]byte(input)))
		p.SetMaxDepth(depth)
		_, err := p.Parse()
		return err
	}

	if err := parse("[[1]]", 3); err != nil {
		t.Errorf("depth 3 should accept [[1]]: %v", err)
	}
	err := parse("[[[1]]]", 3)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindDepthExceeded}) {
		t.Errorf("error = %v, want depth_exceeded", err)
	}
}
