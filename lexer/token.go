package lexer

import "github.com/wippyai/fastjson/errors"

type Type int

const (
	EOF Type = iota
	ObjectStart
	ObjectEnd
	ArrayStart
	ArrayEnd
	Colon
	Comma
	String
	Number
	True
	False
	Null
	Error
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "end of input"
	case ObjectStart:
		return "'{'"
	case ObjectEnd:
		return "'}'"
	case ArrayStart:
		return "'['"
	case ArrayEnd:
		return "']'"
	case Colon:
		return "':'"
	case Comma:
		return "','"
	case String:
		return "string"
	case Number:
		return "number"
	case True:
		return "'true'"
	case False:
		return "'false'"
	case Null:
		return "'null'"
	case Error:
		return "error"
	}
	return "unknown"
}

// Token is a single lexical unit. Text holds the decoded (unescaped) text
// for String tokens, the raw literal span for Number tokens, and the
// diagnostic message for Error tokens. Offset is the byte offset of the
// token's first byte; Line and Col are 1-based.
type Token struct {
	Text    string
	ErrKind errors.Kind
	Type    Type
	Offset  int
	Line    int
	Col     int
}
