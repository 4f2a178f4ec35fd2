package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode    Phase = "encode"    // text to carrier
	PhaseDecode    Phase = "decode"    // carrier to text
	PhaseScan      Phase = "scan"      // searching text for carriers
	PhaseConfig    Phase = "config"    // configuration loading
	PhaseWatch     Phase = "watch"     // file watching
	PhaseClipboard Phase = "clipboard" // system clipboard access
)

// Kind categorizes the error
type Kind string

const (
	KindNoBitsFound   Kind = "no_bits_found"
	KindInvalidBase64 Kind = "invalid_base64"
	KindInvalidUTF8   Kind = "invalid_utf8"
	KindInvalidInput  Kind = "invalid_input"
	KindInvalidData   Kind = "invalid_data"
	KindNotFound      Kind = "not_found"
	KindUnsupported   Kind = "unsupported"
	KindIO            Kind = "io"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Source string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Source != "" {
		b.WriteString(" at ")
		b.WriteString(e.Source)
	}

	if e.Detail != "" {
		b.WriteString(": ")
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
	switch t := target.(type) {
	case *Error:
		return e.Phase == t.Phase && e.Kind == t.Kind
	case sentinel:
		return e.Phase == t.phase && e.Kind == t.kind
	}
	return false
}

// Sentinel returns a comparison target that matches any *Error with the
// given phase and kind under errors.Is. The value is immutable.
func Sentinel(phase Phase, kind Kind) error {
	return sentinel{phase: phase, kind: kind}
}

type sentinel struct {
	phase Phase
	kind  Kind
}

func (s sentinel) Error() string {
	return "[" + string(s.phase) + "] " + string(s.kind)
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

// Source sets the origin of the input, usually a file path
func (b *Builder) Source(src string) *Builder {
	b.err.Source = src
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// NoBitsFound creates an error for input that holds less than one whole byte of bit glyphs
func NoBitsFound(phase Phase, bits int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNoBitsFound,
		Detail: fmt.Sprintf("found %d bit glyphs, need at least 8", bits),
		Value:  bits,
	}
}

// InvalidBase64 creates an error for a recovered intermediate string that is not Base64
func InvalidBase64(phase Phase, text string, cause error) *Error {
	preview := text
	if len(preview) > 32 {
		preview = preview[:32] + "..."
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidBase64,
		Detail: fmt.Sprintf("recovered %q is not standard base64", preview),
		Value:  text,
		Cause:  cause,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error for a named source
func InvalidData(phase Phase, source, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Source: source,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// IO wraps a filesystem or device failure
func IO(phase Phase, source string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Source: source,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error for a named source
func ParseFailed(phase Phase, source, format string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Source: source,
		Detail: fmt.Sprintf("parse %s", format),
		Cause:  cause,
	}
}
