// Package lexer converts a JSON byte stream into a lazy sequence of tokens.
//
// Tokens are produced on demand by Next and carry the byte offset and
// 1-based line/column of their first byte for diagnostics. The sequence is
// finite and forward-only: after EOF or an Error token, Next keeps
// returning that token and the lexer cannot be restarted.
//
// Malformed input (unterminated string, invalid escape, invalid UTF-8 in a
// string, bad number syntax, unexpected character) is reported as an Error
// token rather than a Go error; the parser decides whether to fail. Read
// failures from a streaming source surface as an Error token with ErrKind
// KindIOFailure, with the underlying cause available through IOErr.
//
// String tokens hold fully unescaped text, including combined \uXXXX
// surrogate pairs. Number tokens hold the raw literal span; choosing the
// int or float representation is the parser's job.
package lexer
