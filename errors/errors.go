package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // JSON text to Value
	PhaseFormat Phase = "format" // Value to JSON text
	PhaseEncode Phase = "encode" // host value to Value
	PhaseDecode Phase = "decode" // Value to host value
	PhaseIO     Phase = "io"     // underlying resource failure
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedEOF    Kind = "unexpected_eof"
	KindUnexpectedToken  Kind = "unexpected_token"
	KindTrailingData     Kind = "trailing_data"
	KindDepthExceeded    Kind = "depth_exceeded"
	KindInvalidEscape    Kind = "invalid_escape"
	KindInvalidNumber    Kind = "invalid_number"
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindUnsupportedValue Kind = "unsupported_value"
	KindUnsupportedType  Kind = "unsupported_type"
	KindCycle            Kind = "cycle"
	KindIOFailure        Kind = "io_failure"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Detail string
	Path   []string
	Offset int
	Line   int
	Col    int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, col %d (offset %d)", e.Line, e.Col, e.Offset)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the value path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Pos sets the input position: byte offset plus 1-based line and column
func (b *Builder) Pos(offset, line, col int) *Builder {
	b.err.Offset = offset
	b.err.Line = line
	b.err.Col = col
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnexpectedEOF creates an end-of-input error
func UnexpectedEOF(offset, line, col int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedEOF,
		Offset: offset,
		Line:   line,
		Col:    col,
		Detail: "unexpected end of input",
	}
}

// UnexpectedToken creates a grammar violation error
func UnexpectedToken(offset, line, col int, got, want string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedToken,
		Offset: offset,
		Line:   line,
		Col:    col,
		Detail: fmt.Sprintf("expected %s, got %s", want, got),
	}
}

// TrailingData creates an error for content after a complete top-level value
func TrailingData(offset, line, col int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindTrailingData,
		Offset: offset,
		Line:   line,
		Col:    col,
		Detail: "trailing data after top-level value",
	}
}

// DepthExceeded creates a nesting limit error
func DepthExceeded(offset, line, col, limit int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindDepthExceeded,
		Offset: offset,
		Line:   line,
		Col:    col,
		Detail: fmt.Sprintf("nesting depth exceeds limit %d", limit),
	}
}

// InvalidEscape creates a string escape error
func InvalidEscape(offset, line, col int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidEscape,
		Offset: offset,
		Line:   line,
		Col:    col,
		Detail: detail,
	}
}

// InvalidNumber creates a number syntax error
func InvalidNumber(offset, line, col int, raw string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidNumber,
		Offset: offset,
		Line:   line,
		Col:    col,
		Detail: fmt.Sprintf("invalid number literal %q", raw),
	}
}

// UnsupportedValue creates an error for values with no JSON representation
func UnsupportedValue(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseFormat,
		Kind:   KindUnsupportedValue,
		Path:   path,
		Detail: detail,
	}
}

// UnsupportedType creates an error for host types outside the mapping table
func UnsupportedType(path []string, goType string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedType,
		Path:   path,
		GoType: goType,
		Detail: "no JSON mapping for this type",
	}
}

// Cycle creates an error for self-referential container graphs
func Cycle(phase Phase, path []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCycle,
		Path:   path,
		Detail: "cyclic structure detected",
	}
}

// IO wraps an underlying resource failure
func IO(cause error, detail string) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindIOFailure,
		Detail: detail,
		Cause:  cause,
	}
}
