package parser

import (
	"strconv"
	"strings"

	"github.com/wippyai/fastjson/errors"
	"github.com/wippyai/fastjson/lexer"
	"github.com/wippyai/fastjson/value"
)

// DefaultMaxDepth bounds container nesting. The grammar itself is
// unbounded; the limit exists so adversarial input fails with a typed
// error instead of exhausting the stack.
const DefaultMaxDepth = 1000

type Parser struct {
	lex      *lexer.Lexer
	tok      lexer.Token
	maxDepth int
}

// Parse is the convenience entry point for in-memory input.
func Parse(data []byte) (value.Value, error) {
	return New(lexer.New(data)).Parse()
}

// New creates a parser consuming the given token stream.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth overrides the nesting limit. Values below 1 are ignored.
func (p *Parser) SetMaxDepth(n int) {
	if n >= 1 {
		p.maxDepth = n
	}
}

// Parse consumes the whole input and returns the top-level value. Any JSON
// value is accepted at the top level, not just objects and arrays. Content
// remaining after the value is a TrailingData error, not a silent success.
func (p *Parser) Parse() (value.Value, error) {
	p.advance()
	v, err := p.parseValue(1)
	if err != nil {
		return value.Value{}, err
	}
	if p.tok.Type == lexer.EOF {
		return v, nil
	}
	if ioErr := p.lex.IOErr(); ioErr != nil {
		return value.Value{}, errors.IO(ioErr, "read input")
	}
	// anything left over, token or not, is trailing garbage
	return value.Value{}, errors.TrailingData(p.tok.Offset, p.tok.Line, p.tok.Col)
}

func (p *Parser) advance() {
	p.tok = p.lex.Next()
}

func (p *Parser) parseValue(depth int) (value.Value, error) {
	if depth > p.maxDepth {
		return value.Value{}, errors.DepthExceeded(p.tok.Offset, p.tok.Line, p.tok.Col, p.maxDepth)
	}

	switch p.tok.Type {
	case lexer.String:
		v := value.String(p.tok.Text)
		p.advance()
		return v, nil
	case lexer.Number:
		v, err := p.parseNumber()
		if err != nil {
			return value.Value{}, err
		}
		p.advance()
		return v, nil
	case lexer.True:
		p.advance()
		return value.Bool(true), nil
	case lexer.False:
		p.advance()
		return value.Bool(false), nil
	case lexer.Null:
		p.advance()
		return value.Null(), nil
	case lexer.ObjectStart:
		return p.parseObject(depth)
	case lexer.ArrayStart:
		return p.parseArray(depth)
	case lexer.EOF:
		return value.Value{}, errors.UnexpectedEOF(p.tok.Offset, p.tok.Line, p.tok.Col)
	case lexer.Error:
		return value.Value{}, p.lexError()
	default:
		return value.Value{}, p.unexpected("value")
	}
}

func (p *Parser) parseObject(depth int) (value.Value, error) {
	obj := value.NewObject()
	p.advance() // consume '{'

	if p.tok.Type == lexer.ObjectEnd {
		p.advance()
		return obj.Value(), nil
	}

	for {
		if p.tok.Type != lexer.String {
			if p.tok.Type == lexer.Error {
				return value.Value{}, p.lexError()
			}
			if p.tok.Type == lexer.EOF {
				return value.Value{}, errors.UnexpectedEOF(p.tok.Offset, p.tok.Line, p.tok.Col)
			}
			return value.Value{}, p.unexpected("object key")
		}
		key := p.tok.Text
		p.advance()

		if p.tok.Type != lexer.Colon {
			if p.tok.Type == lexer.Error {
				return value.Value{}, p.lexError()
			}
			return value.Value{}, p.unexpected("':'")
		}
		p.advance()

		v, err := p.parseValue(depth + 1)
		if err != nil {
			return value.Value{}, err
		}
		// duplicate keys: last value wins, first position kept
		obj.Set(key, v)

		switch p.tok.Type {
		case lexer.Comma:
			p.advance()
		case lexer.ObjectEnd:
			p.advance()
			return obj.Value(), nil
		case lexer.Error:
			return value.Value{}, p.lexError()
		case lexer.EOF:
			return value.Value{}, errors.UnexpectedEOF(p.tok.Offset, p.tok.Line, p.tok.Col)
		default:
			return value.Value{}, p.unexpected("',' or '}'")
		}
	}
}

func (p *Parser) parseArray(depth int) (value.Value, error) {
	arr := value.NewArray()
	p.advance() // consume '['

	if p.tok.Type == lexer.ArrayEnd {
		p.advance()
		return arr.Value(), nil
	}

	for {
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return value.Value{}, err
		}
		arr.Append(v)

		switch p.tok.Type {
		case lexer.Comma:
			p.advance()
		case lexer.ArrayEnd:
			p.advance()
			return arr.Value(), nil
		case lexer.Error:
			return value.Value{}, p.lexError()
		case lexer.EOF:
			return value.Value{}, errors.UnexpectedEOF(p.tok.Offset, p.tok.Line, p.tok.Col)
		default:
			return value.Value{}, p.unexpected("',' or ']'")
		}
	}
}

// parseNumber chooses the numeric variant: integral literals parse as Int,
// anything with a fraction or exponent as Float. Integers outside the
// int64 range fall back to Float, losing precision.
func (p *Parser) parseNumber() (value.Value, error) {
	raw := p.tok.Text
	if !strings.ContainsAny(raw, ".eE") {
		i, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return value.Int(i), nil
		}
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return value.Value{}, errors.InvalidNumber(p.tok.Offset, p.tok.Line, p.tok.Col, raw)
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return value.Value{}, errors.InvalidNumber(p.tok.Offset, p.tok.Line, p.tok.Col, raw)
	}
	return value.Float(f), nil
}

func (p *Parser) unexpected(want string) error {
	return errors.UnexpectedToken(p.tok.Offset, p.tok.Line, p.tok.Col, p.tok.Type.String(), want)
}

// lexError converts the Error token held in p.tok to a typed error. Read
// failures from a streaming source take precedence over lexical kinds so
// the underlying cause is not masked.
func (p *Parser) lexError() error {
	if ioErr := p.lex.IOErr(); ioErr != nil {
		return errors.IO(ioErr, "read input")
	}
	if p.tok.ErrKind == errors.KindInvalidEscape {
		return errors.InvalidEscape(p.tok.Offset, p.tok.Line, p.tok.Col, p.tok.Text)
	}
	return errors.New(errors.PhaseParse, p.tok.ErrKind).
		Pos(p.tok.Offset, p.tok.Line, p.tok.Col).
		Detail("%s", p.tok.Text).
		Build()
}
