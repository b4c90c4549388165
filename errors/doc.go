// Package errors provides structured error types for the fastjson library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Parse errors carry the byte offset and 1-based line/column of the
// offending input; encode errors carry the path through the host value and the
// Go type name.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindUnexpectedToken).
//		Pos(7, 1, 8).
//		Detail("expected value, got '}'").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TrailingData(3, 1, 4)
//	err := errors.UnsupportedType([]string{"scores", "2"}, "chan int")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so sentinel comparisons like
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindTrailingData})
//
// work regardless of position or detail text.
package errors
