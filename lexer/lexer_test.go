package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/wippyai/fastjson/errors"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()
	lex := New([]byte(input))
	var toks []Token
	for {
		tok := lex.Next()
		toks = append(toks, tok)
		if tok.Type == EOF || tok.Type == Error {
			return toks
		}
	}
}

func TestNext_TokenStream(t *testing.T) {
	toks := collect(t, `{"a": [1, true]}`)

	want := []struct {
		typ    Type
		text   string
		offset int
	}{
		{ObjectStart, "{", 0},
		{String, "a", 1},
		{Colon, ":", 4},
		{ArrayStart, "[", 6},
		{Number, "1", 7},
		{Comma, ",", 8},
		{True, "true", 10},
		{ArrayEnd, "]", 14},
		{ObjectEnd, "}", 15},
		{EOF, "", 16},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		got := toks[i]
		if got.Type != w.typ || got.Text != w.text || got.Offset != w.offset {
			t.Errorf("token %d = {%v %q @%d}, want {%v %q @%d}",
				i, got.Type, got.Text, got.Offset, w.typ, w.text, w.offset)
		}
	}
}

func TestNext_LineAndColumn(t *testing.T) {
	input := "{\n  \"a\": 1,\n  \"b\": null\n}"
	toks := collect(t, input)

	want := []struct {
		typ       Type
		line, col int
	}{
		{ObjectStart, 1, 1},
		{String, 2, 3},
		{Colon, 2, 6},
		{Number, 2, 8},
		{Comma, 2, 9},
		{String, 3, 3},
		{Colon, 3, 6},
		{Null, 3, 8},
		{ObjectEnd, 4, 1},
		{EOF, 4, 2},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		got := toks[i]
		if got.Type != w.typ || got.Line != w.line || got.Col != w.col {
			t.Errorf("token %d = %v at %d:%d, want %v at %d:%d",
				i, got.Type, got.Line, got.Col, w.typ, w.line, w.col)
		}
	}
}

func TestNext_StringDecoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `"hello"`, "hello"},
		{"named escapes", `"a\n\t\"\\b"`, "a\n\t\"\\b"},
		{"solidus", `"a\/b"`, "a/b"},
		{"unicode escape", `"Aé"`, "Aé"},
		{"surrogate pair", `"😀"`, "😀"},
		{"raw multibyte passthrough", `"héllo"`, "héllo"},
		{"unpaired high half", `"\ud800x"`, "�x"},
		{"unpaired high half at end", `"\ud800"`, "�"},
		{"lone low half", `"\udc00"`, "�"},
		{"high half before non-u escape", `"\ud800\n"`, "�\n"},
		{"two high halves then low", `"\ud800😀"`, "�😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New([]byte(tt.input)).Next()
			if tok.Type != String {
				t.Fatalf("token = %v (%q), want string", tok.Type, tok.Text)
			}
			if tok.Text != tt.want {
				t.Errorf("decoded %q, want %q", tok.Text, tt.want)
			}
		})
	}
}

func TestNext_NumberSpans(t *testing.T) {
	// Number tokens carry the raw span; conversion happens upstream.
	for _, raw := range []string{"0", "-0", "42", "-17", "3.14", "0.5", "-0.5e+10", "1E-3", "2e8"} {
		tok := New([]byte(raw)).Next()
		if tok.Type != Number || tok.Text != raw {
			t.Errorf("lexing %q: token = %v (%q), want number with same span", raw, tok.Type, tok.Text)
		}
	}
}

func TestNext_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  errors.Kind
	}{
		{"unterminated string", `"abc`, errors.KindUnexpectedEOF},
		{"bad escape", `"a\x"`, errors.KindInvalidEscape},
		{"short unicode escape", `"\u12"`, errors.KindInvalidEscape},
		{"non-hex unicode escape", `"\u12zz"`, errors.KindInvalidEscape},
		{"raw control character", "\"a\x01b\"", errors.KindUnexpectedToken},
		{"invalid utf8 byte", "\"a\xffb\"", errors.KindInvalidUTF8},
		{"truncated multibyte sequence", "\"\xc3\"", errors.KindInvalidUTF8},
		{"leading zero", "01", errors.KindInvalidNumber},
		{"bare minus", "-", errors.KindInvalidNumber},
		{"trailing dot", "1.", errors.KindInvalidNumber},
		{"dot without digits", "1.e5", errors.KindInvalidNumber},
		{"empty exponent", "1e", errors.KindInvalidNumber},
		{"signed empty exponent", "1e+", errors.KindInvalidNumber},
		{"stray character", "@", errors.KindUnexpectedToken},
		{"truncated literal", "tru", errors.KindUnexpectedToken},
		{"misspelled literal", "nulL", errors.KindUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New([]byte(tt.input)).Next()
			if tok.Type != Error {
				t.Fatalf("token = %v (%q), want error", tok.Type, tok.Text)
			}
			if tok.ErrKind != tt.kind {
				t.Errorf("kind = %v, want %v (%s)", tok.ErrKind, tt.kind, tok.Text)
			}
		})
	}
}

func TestNext_Sticky(t *testing.T) {
	lex := New([]byte("@ 1 2"))
	first := lex.Next()
	if first.Type != Error {
		t.Fatalf("token = %v, want error", first.Type)
	}
	for i := 0; i < 3; i++ {
		if again := lex.Next(); again != first {
			t.Fatalf("call %d returned %v, want the sticky error token", i+2, again)
		}
	}
}

func TestNext_ReadFailure(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	src := io.MultiReader(strings.NewReader(`[1, `), &failingReader{err: cause})

	lex := NewReader(bufio.NewReader(src))
	var tok Token
	for {
		tok = lex.Next()
		if tok.Type == EOF || tok.Type == Error {
			break
		}
	}
	if tok.Type != Error || tok.ErrKind != errors.KindIOFailure {
		t.Fatalf("token = %v kind %v, want io_failure error", tok.Type, tok.ErrKind)
	}
	if lex.IOErr() != cause {
		t.Errorf("IOErr() = %v, want %v", lex.IOErr(), cause)
	}
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
