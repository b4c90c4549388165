package stream

import (
	"bufio"
	"io"

	"github.com/wippyai/fastjson/errors"
	"github.com/wippyai/fastjson/format"
	"github.com/wippyai/fastjson/lexer"
	"github.com/wippyai/fastjson/parser"
	"github.com/wippyai/fastjson/value"
)

// chunkSize bounds how much of the document is buffered at once on either
// side of a stream operation.
const chunkSize = 32 * 1024

// Decode parses a complete JSON document from an incrementally-readable
// source. The lexer pulls bytes through a bounded buffer, so the raw text
// is never materialized in full alongside the parsed tree.
func Decode(r io.Reader) (value.Value, error) {
	return DecodeWith(r, parser.DefaultMaxDepth)
}

// DecodeWith is Decode with an explicit nesting limit.
func DecodeWith(r io.Reader, maxDepth int) (value.Value, error) {
	src, ok := r.(io.ByteScanner)
	if !ok {
		src = bufio.NewReaderSize(r, chunkSize)
	}
	p := parser.New(lexer.NewReader(src))
	p.SetMaxDepth(maxDepth)
	v, err := p.Parse()
	if err != nil {
		debugf("decode failed: %v", err)
		return value.Value{}, err
	}
	return v, nil
}

// Encode writes the value as JSON text to a sink in bounded chunks. The
// tree is validated up front, so the sink never receives partial output
// for a value that cannot format; only sink failures can interrupt a
// write, and those surface as io errors.
func Encode(v value.Value, w io.Writer, cfg format.Config) error {
	if err := format.Validate(v); err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, chunkSize)
	if err := format.Write(v, bw, cfg); err != nil {
		debugf("encode failed: %v", err)
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.IO(err, "flush output")
	}
	return nil
}

func debugf(msg string, args ...any) {
	Logger().Sugar().Debugf(msg, args...)
}
