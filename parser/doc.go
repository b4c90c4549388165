// Package parser implements the JSON grammar by recursive descent over the
// lexer's token stream, producing a value.Value tree.
//
// One token of lookahead is held; no token buffer is retained. Empty
// objects and arrays are valid, trailing commas are not. Duplicate object
// keys resolve last-write-wins, a stated policy matching common JSON
// library convention. Whitespace-only input yields an unexpected_eof
// error; content after a complete top-level value yields trailing_data.
//
// Nesting is bounded by a configurable depth limit (DefaultMaxDepth, 1000)
// to keep adversarial input from exhausting the stack; exceeding it yields
// a depth_exceeded error.
package parser
