package fastjson

import (
	"io"

	"github.com/wippyai/fastjson/adapter"
	"github.com/wippyai/fastjson/errors"
	"github.com/wippyai/fastjson/format"
	"github.com/wippyai/fastjson/lexer"
	"github.com/wippyai/fastjson/parser"
	"github.com/wippyai/fastjson/stream"
	"github.com/wippyai/fastjson/value"
)

// Set is the host-side unordered collection. Encoding a Set produces a
// JSON array of its elements; decoding never reconstructs a set.
type Set = value.Set

// NewSet creates a set from the given elements.
func NewSet(elems ...any) Set {
	return value.NewSet(elems...)
}

type config struct {
	indent   int
	maxDepth int
	sortKeys bool
	ascii    bool
}

// Option configures an encode or decode operation.
type Option func(*config)

// WithIndent enables pretty output with n spaces per nesting level.
// n = 0 is compact output, the default.
func WithIndent(n int) Option {
	return func(c *config) { c.indent = n }
}

// WithSortKeys renders object keys sorted instead of in insertion order.
func WithSortKeys() Option {
	return func(c *config) { c.sortKeys = true }
}

// WithASCIIOnly escapes all non-ASCII runes as \uXXXX sequences.
func WithASCIIOnly() Option {
	return func(c *config) { c.ascii = true }
}

// WithMaxDepth overrides the decoder's nesting limit
// (parser.DefaultMaxDepth by default).
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

func newConfig(opts []Option) config {
	c := config{maxDepth: parser.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) formatConfig() format.Config {
	return format.Config{Indent: c.indent, SortKeys: c.sortKeys, ASCIIOnly: c.ascii}
}

func (c config) check() error {
	if c.indent < 0 {
		return errors.New(errors.PhaseFormat, errors.KindUnsupportedValue).
			Detail("indent cannot be negative").
			Build()
	}
	return nil
}

// Dumps serializes a host value to a JSON string. Output is compact unless
// WithIndent is given.
func Dumps(v any, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	if err := cfg.check(); err != nil {
		return "", err
	}
	val, err := adapter.ToValue(v)
	if err != nil {
		return "", err
	}
	return format.Format(val, cfg.formatConfig())
}

// Encode is an alias of Dumps.
func Encode(v any, opts ...Option) (string, error) {
	return Dumps(v, opts...)
}

// Loads parses a JSON string into host-native Go types: nil, bool, int64,
// float64, string, []any and map[string]any.
func Loads(text string, opts ...Option) (any, error) {
	return LoadsBytes([]byte(text), opts...)
}

// LoadsBytes is Loads over a byte slice.
func LoadsBytes(data []byte, opts ...Option) (any, error) {
	cfg := newConfig(opts)
	p := parser.New(lexer.New(data))
	p.SetMaxDepth(cfg.maxDepth)
	v, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return adapter.FromValue(v), nil
}

// Dump serializes a host value as JSON text written to w.
func Dump(v any, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	if err := cfg.check(); err != nil {
		return err
	}
	val, err := adapter.ToValue(v)
	if err != nil {
		return err
	}
	return stream.Encode(val, w, cfg.formatConfig())
}

// Load parses a complete JSON document read from r into host-native Go
// types.
func Load(r io.Reader, opts ...Option) (any, error) {
	cfg := newConfig(opts)
	v, err := stream.DecodeWith(r, cfg.maxDepth)
	if err != nil {
		return nil, err
	}
	return adapter.FromValue(v), nil
}
