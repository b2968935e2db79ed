package mustache

import "fmt"

// ErrorKind distinguishes the ways a compile can fail. Render never fails on
// semantics — only I/O errors from the caller's sink propagate,
// and those are returned verbatim, not wrapped in CompileError.
type ErrorKind uint8

const (
	// ErrUnclosedTag means the lexer never found a matching "}}".
	ErrUnclosedTag ErrorKind = iota
	// ErrUnclosedSection means a {{#x}}/{{^x}} was never closed.
	ErrUnclosedSection
	// ErrUnexpectedClosing means a {{/x}} appeared with no matching opener.
	ErrUnexpectedClosing
	// ErrInvalidPartial means a partial file could not be read, or did not
	// compile, during corpus construction.
	ErrInvalidPartial
	// ErrIO means an I/O error was encountered reading source during corpus
	// construction (not a render-time sink error).
	ErrIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnclosedTag:
		return "unclosed tag"
	case ErrUnclosedSection:
		return "unclosed section"
	case ErrUnexpectedClosing:
		return "unexpected closing tag"
	case ErrInvalidPartial:
		return "invalid partial"
	case ErrIO:
		return "io error"
	default:
		return "unknown error"
	}
}

// CompileError is the sole error type compilation can return. Name carries
// the tag identifier for UnclosedSection/UnexpectedClosing, Path the
// partial's path for InvalidPartial, Offset the byte position in the
// source where available (left at 0 for InvalidPartial), and Cause any
// underlying error (filesystem error, nested CompileError from a partial).
type CompileError struct {
	Kind   ErrorKind
	Name   string
	Path   string
	Offset int
	Cause  error
}

func (e *CompileError) Error() string {
	switch e.Kind {
	case ErrUnclosedSection:
		return fmt.Sprintf("mustache: unclosed section %q at offset %d", e.Name, e.Offset)
	case ErrUnexpectedClosing:
		return fmt.Sprintf("mustache: unexpected closing tag %q at offset %d", e.Name, e.Offset)
	case ErrInvalidPartial:
		if e.Cause != nil {
			return fmt.Sprintf("mustache: invalid partial %q: %s", e.Path, e.Cause)
		}
		return fmt.Sprintf("mustache: invalid partial %q", e.Path)
	case ErrIO:
		return fmt.Sprintf("mustache: io error: %s", e.Cause)
	default:
		return fmt.Sprintf("mustache: unclosed tag at offset %d", e.Offset)
	}
}

func (e *CompileError) Unwrap() error { return e.Cause }

func newOffsetError(kind ErrorKind, name string, offset int) *CompileError {
	return &CompileError{Kind: kind, Name: name, Offset: offset}
}
