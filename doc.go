// Package fastjson provides fast, allocation-conscious JSON serialization
// with configurable indentation and a value model that round-trips host
// container types losslessly where the JSON grammar permits.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	fastjson/            Root package with Dumps/Loads/Dump/Load
//	├── value/           Tagged-union value model with ordered objects
//	├── lexer/           Lazy tokenizer with line/column tracking
//	├── parser/          Recursive-descent grammar over the token stream
//	├── format/          JSON text output: indentation, escaping, cycles
//	├── adapter/         Host Go values to/from the value model
//	├── stream/          Chunked encode/decode over io.Reader/io.Writer
//	└── errors/          Structured error types with positions
//
// Data flow: encode is host value → adapter → value tree → formatter →
// text; decode is text → lexer → parser → value tree → adapter → host
// value.
//
// # Quick Start
//
//	out, err := fastjson.Dumps(map[string]any{
//	    "name":   "John Doe",
//	    "scores": []any{95, 87, 92},
//	    "active": true,
//	}, fastjson.WithIndent(4))
//
//	v, err := fastjson.Loads(`{"a": 1, "b": [true, null]}`)
//
//	f, _ := os.Create("out.json")
//	err = fastjson.Dump(data, f, fastjson.WithIndent(2))
//
// # Numeric Model
//
// Integral literals parse as int64; literals with a fraction or exponent
// parse as float64. Integers beyond the int64 range fall back to float64,
// losing precision (the one documented lossy path besides the set
// projection). NaN and Infinity cannot be encoded and fail with a typed
// error.
//
// # Sets
//
// A Set encodes as a JSON array of its elements in unspecified order.
// Decoding never turns an array back into a set; the round trip through
// this path is deliberately asymmetric.
//
// # Thread Safety
//
// The codec holds no state between calls. Every operation works on
// caller-owned input and a freshly built tree, so concurrent use needs no
// locking as long as callers do not mutate a buffer mid-call.
package fastjson
