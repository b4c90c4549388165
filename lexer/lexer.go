package lexer

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wippyai/fastjson/errors"
)

// Lexer produces tokens on demand from a byte source. It is forward-only:
// once EOF or an Error token has been produced, every subsequent Next call
// returns that same token.
type Lexer struct {
	src      io.ByteScanner
	ioErr    error
	scratch  []byte
	last     Token
	offset   int
	line     int
	col      int
	prevLine int
	prevCol  int
	done     bool
}

// New creates a lexer over an in-memory input.
func New(data []byte) *Lexer {
	return NewReader(bytes.NewReader(data))
}

// NewReader creates a lexer over an incrementally-readable source. Wrap
// plain io.Readers in a bufio.Reader to get the ByteScanner surface.
func NewReader(src io.ByteScanner) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// IOErr returns the underlying read failure, if the source reported one.
// An Error token with ErrKind KindIOFailure always has a non-nil IOErr.
func (l *Lexer) IOErr() error {
	return l.ioErr
}

// Next returns the next token, advancing the cursor.
func (l *Lexer) Next() Token {
	if l.done {
		return l.last
	}
	tok := l.scan()
	if tok.Type == EOF || tok.Type == Error {
		l.done = true
		l.last = tok
	}
	return tok
}

type pos struct {
	off  int
	line int
	col  int
}

func (l *Lexer) pos() pos {
	return pos{l.offset, l.line, l.col}
}

func (l *Lexer) readByte() (byte, bool) {
	b, err := l.src.ReadByte()
	if err != nil {
		if err != io.EOF {
			l.ioErr = err
		}
		return 0, false
	}
	l.prevLine, l.prevCol = l.line, l.col
	l.offset++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return b, true
}

// unreadByte steps back exactly one byte. Only a single step of lookahead
// is ever taken, so one saved position is enough.
func (l *Lexer) unreadByte() {
	_ = l.src.UnreadByte()
	l.offset--
	l.line, l.col = l.prevLine, l.prevCol
}

func (l *Lexer) token(t Type, text string, at pos) Token {
	return Token{Type: t, Text: text, Offset: at.off, Line: at.line, Col: at.col}
}

func (l *Lexer) errorToken(at pos, kind errors.Kind, msg string) Token {
	return Token{Type: Error, ErrKind: kind, Text: msg, Offset: at.off, Line: at.line, Col: at.col}
}

func (l *Lexer) scan() Token {
	for {
		at := l.pos()
		b, ok := l.readByte()
		if !ok {
			if l.ioErr != nil {
				return l.errorToken(at, errors.KindIOFailure, "input read failed")
			}
			return l.token(EOF, "", at)
		}

		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return l.token(ObjectStart, "{", at)
		case '}':
			return l.token(ObjectEnd, "}", at)
		case '[':
			return l.token(ArrayStart, "[", at)
		case ']':
			return l.token(ArrayEnd, "]", at)
		case ':':
			return l.token(Colon, ":", at)
		case ',':
			return l.token(Comma, ",", at)
		case '"':
			return l.scanString(at)
		case 't':
			return l.scanLiteral(at, "true", True)
		case 'f':
			return l.scanLiteral(at, "false", False)
		case 'n':
			return l.scanLiteral(at, "null", Null)
		}

		if b == '-' || (b >= '0' && b <= '9') {
			return l.scanNumber(at, b)
		}
		return l.errorToken(at, errors.KindUnexpectedToken, fmt.Sprintf("unexpected character %q", b))
	}
}

func (l *Lexer) scanLiteral(at pos, word string, t Type) Token {
	for i := 1; i < len(word); i++ {
		b, ok := l.readByte()
		if !ok || b != word[i] {
			if l.ioErr != nil {
				return l.errorToken(at, errors.KindIOFailure, "input read failed")
			}
			return l.errorToken(at, errors.KindUnexpectedToken, fmt.Sprintf("invalid literal, expected %q", word))
		}
	}
	return l.token(t, word, at)
}

func (l *Lexer) scanString(at pos) Token {
	l.scratch = l.scratch[:0]
	for {
		b, ok := l.readByte()
		if !ok {
			if l.ioErr != nil {
				return l.errorToken(at, errors.KindIOFailure, "input read failed")
			}
			return l.errorToken(at, errors.KindUnexpectedEOF, "unterminated string")
		}
		switch {
		case b == '"':
			// escapes always decode to valid sequences; raw bytes need
			// checking
			if !utf8.Valid(l.scratch) {
				return l.errorToken(at, errors.KindInvalidUTF8, "string is not valid UTF-8")
			}
			return l.token(String, string(l.scratch), at)
		case b == '\\':
			if tok, bad := l.scanEscape(at); bad {
				return tok
			}
		case b < 0x20:
			return l.errorToken(at, errors.KindUnexpectedToken,
				fmt.Sprintf("unescaped control character 0x%02x in string", b))
		default:
			l.scratch = append(l.scratch, b)
		}
	}
}

// scanEscape consumes one escape sequence after the backslash, appending
// the decoded bytes to scratch. On malformed input it returns an Error
// token and bad=true.
func (l *Lexer) scanEscape(at pos) (Token, bool) {
	escAt := l.pos()
	b, ok := l.readByte()
	if !ok {
		if l.ioErr != nil {
			return l.errorToken(at, errors.KindIOFailure, "input read failed"), true
		}
		return l.errorToken(at, errors.KindUnexpectedEOF, "unterminated string"), true
	}
	switch b {
	case '"', '\\', '/':
		l.scratch = append(l.scratch, b)
	case 'b':
		l.scratch = append(l.scratch, '\b')
	case 'f':
		l.scratch = append(l.scratch, '\f')
	case 'n':
		l.scratch = append(l.scratch, '\n')
	case 'r':
		l.scratch = append(l.scratch, '\r')
	case 't':
		l.scratch = append(l.scratch, '\t')
	case 'u':
		return l.scanUnicodeEscape(at)
	default:
		return l.errorToken(escAt, errors.KindInvalidEscape,
			fmt.Sprintf("invalid escape sequence \\%c", b)), true
	}
	return Token{}, false
}

// scanUnicodeEscape handles \uXXXX, combining surrogate pairs. Unpaired
// surrogate halves decode to U+FFFD instead of failing, matching the
// behavior of lenient JSON decoders.
func (l *Lexer) scanUnicodeEscape(at pos) (Token, bool) {
	cp, ok := l.readHex4()
	if !ok {
		if l.ioErr != nil {
			return l.errorToken(at, errors.KindIOFailure, "input read failed"), true
		}
		return l.errorToken(at, errors.KindInvalidEscape, "invalid \\u escape, expected 4 hex digits"), true
	}
	r := rune(cp)
	for {
		if !utf16.IsSurrogate(r) {
			l.scratch = utf8.AppendRune(l.scratch, r)
			return Token{}, false
		}
		if r >= 0xDC00 {
			// low half with no preceding high half
			l.scratch = utf8.AppendRune(l.scratch, utf8.RuneError)
			return Token{}, false
		}

		// high half: a \uXXXX low half must follow to form a pair
		b, ok := l.readByte()
		if !ok {
			l.scratch = utf8.AppendRune(l.scratch, utf8.RuneError)
			return Token{}, false
		}
		if b != '\\' {
			l.unreadByte()
			l.scratch = utf8.AppendRune(l.scratch, utf8.RuneError)
			return Token{}, false
		}
		b, ok = l.readByte()
		if !ok {
			l.scratch = utf8.AppendRune(l.scratch, utf8.RuneError)
			return Token{}, false
		}
		if b != 'u' {
			// some other escape follows the unpaired half
			l.scratch = utf8.AppendRune(l.scratch, utf8.RuneError)
			switch b {
			case '"', '\\', '/':
				l.scratch = append(l.scratch, b)
			case 'b':
				l.scratch = append(l.scratch, '\b')
			case 'f':
				l.scratch = append(l.scratch, '\f')
			case 'n':
				l.scratch = append(l.scratch, '\n')
			case 'r':
				l.scratch = append(l.scratch, '\r')
			case 't':
				l.scratch = append(l.scratch, '\t')
			default:
				escAt := l.pos()
				return l.errorToken(escAt, errors.KindInvalidEscape,
					fmt.Sprintf("invalid escape sequence \\%c", b)), true
			}
			return Token{}, false
		}

		cp2, ok := l.readHex4()
		if !ok {
			if l.ioErr != nil {
				return l.errorToken(at, errors.KindIOFailure, "input read failed"), true
			}
			return l.errorToken(at, errors.KindInvalidEscape, "invalid \\u escape, expected 4 hex digits"), true
		}
		r2 := rune(cp2)
		if r2 >= 0xDC00 && r2 <= 0xDFFF {
			l.scratch = utf8.AppendRune(l.scratch, utf16.DecodeRune(r, r2))
			return Token{}, false
		}
		// not a low half: the first half stays unpaired
		l.scratch = utf8.AppendRune(l.scratch, utf8.RuneError)
		r = r2
	}
}

func (l *Lexer) readHex4() (uint32, bool) {
	var cp uint32
	for i := 0; i < 4; i++ {
		b, ok := l.readByte()
		if !ok {
			return 0, false
		}
		var d uint32
		switch {
		case b >= '0' && b <= '9':
			d = uint32(b - '0')
		case b >= 'a' && b <= 'f':
			d = uint32(b-'a') + 10
		case b >= 'A' && b <= 'F':
			d = uint32(b-'A') + 10
		default:
			return 0, false
		}
		cp = cp<<4 | d
	}
	return cp, true
}

func (l *Lexer) scanNumber(at pos, b byte) Token {
	l.scratch = append(l.scratch[:0], b)

	if b == '-' {
		nb, ok := l.readByte()
		if !ok || nb < '0' || nb > '9' {
			if ok {
				l.unreadByte()
			}
			return l.numberError(at)
		}
		l.scratch = append(l.scratch, nb)
		b = nb
	}

	if b == '0' {
		// leading zero must stand alone in the integer part
		if nb, ok := l.readByte(); ok {
			if nb >= '0' && nb <= '9' {
				l.scratch = append(l.scratch, nb)
				return l.numberError(at)
			}
			l.unreadByte()
		}
	} else {
		l.digits()
	}

	if nb, ok := l.readByte(); ok {
		if nb == '.' {
			l.scratch = append(l.scratch, nb)
			if !l.digitsRequired() {
				return l.numberError(at)
			}
		} else {
			l.unreadByte()
		}
	}

	if nb, ok := l.readByte(); ok {
		if nb == 'e' || nb == 'E' {
			l.scratch = append(l.scratch, nb)
			if sb, ok := l.readByte(); ok {
				if sb == '+' || sb == '-' {
					l.scratch = append(l.scratch, sb)
				} else {
					l.unreadByte()
				}
			}
			if !l.digitsRequired() {
				return l.numberError(at)
			}
		} else {
			l.unreadByte()
		}
	}

	if l.ioErr != nil {
		return l.errorToken(at, errors.KindIOFailure, "input read failed")
	}
	return l.token(Number, string(l.scratch), at)
}

func (l *Lexer) digits() {
	for {
		b, ok := l.readByte()
		if !ok {
			return
		}
		if b < '0' || b > '9' {
			l.unreadByte()
			return
		}
		l.scratch = append(l.scratch, b)
	}
}

func (l *Lexer) digitsRequired() bool {
	n := 0
	for {
		b, ok := l.readByte()
		if !ok {
			return n > 0
		}
		if b < '0' || b > '9' {
			l.unreadByte()
			return n > 0
		}
		l.scratch = append(l.scratch, b)
		n++
	}
}

func (l *Lexer) numberError(at pos) Token {
	return l.errorToken(at, errors.KindInvalidNumber,
		fmt.Sprintf("invalid number literal %q", string(l.scratch)))
}
