package format

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// string writes s as a quoted JSON string. Control characters (<0x20), DEL
// (0x7F), quote and backslash always escape; non-ASCII runes escape only in
// ASCIIOnly mode, otherwise they pass through as raw UTF-8. Clean spans are
// written in one piece.
func (f *formatter) string(s string) {
	f.byte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' && c != 0x7F {
			if c < utf8.RuneSelf || !f.cfg.ASCIIOnly {
				i++
				continue
			}
			f.str(s[start:i])
			r, size := utf8.DecodeRuneInString(s[i:])
			i += size
			start = i
			if r <= 0xFFFF {
				f.hexEscape(uint16(r))
			} else {
				r1, r2 := utf16.EncodeRune(r)
				f.hexEscape(uint16(r1))
				f.hexEscape(uint16(r2))
			}
			continue
		}

		f.str(s[start:i])
		switch c {
		case '"':
			f.str(`\"`)
		case '\\':
			f.str(`\\`)
		case '\b':
			f.str(`\b`)
		case '\f':
			f.str(`\f`)
		case '\n':
			f.str(`\n`)
		case '\r':
			f.str(`\r`)
		case '\t':
			f.str(`\t`)
		default:
			f.hexEscape(uint16(c))
		}
		i++
		start = i
	}
	f.str(s[start:])
	f.byte('"')
}

func (f *formatter) hexEscape(u uint16) {
	f.str(`\u`)
	f.byte(hexDigits[u>>12&0xF])
	f.byte(hexDigits[u>>8&0xF])
	f.byte(hexDigits[u>>4&0xF])
	f.byte(hexDigits[u&0xF])
}
