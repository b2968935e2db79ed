package mustache

import "io"

// Encoder is the sink a Content value writes through. It carries the
// escaping policy at the call site rather than as a mode on the writer
// itself: Content implementations choose WriteEscaped or WriteUnescaped
// depending on which protocol method the renderer invoked.
type Encoder interface {
	io.Writer
	// WriteEscaped writes s through the fixed HTML translation table
	// HTML translation table, in a single pass.
	WriteEscaped(s string) error
	// WriteUnescaped writes s verbatim.
	WriteUnescaped(s string) error
}

// Content is the sole contract the renderer uses to read user data. Every
// type rendered against a Template must implement it. The hash passed to
// every field method is the FNV-1a hash of name and is the primary
// dispatch key; name is a tiebreaker for hash collisions. Implementations
// must not retain references to the Encoder past the call.
type Content interface {
	// IsTruthy reports the value's overall truthiness: bool identity for
	// booleans, non-empty for strings/sequences, true for most records and
	// numbers, false for the unit/none value.
	IsTruthy() bool

	// CapacityHint returns a best-effort byte estimate this value will
	// contribute to a render, added to t's literal hint when pre-sizing an
	// output buffer.
	CapacityHint(t *Template) int

	// RenderEscaped writes this value's canonical string form through enc,
	// HTML-escaped. Used for {{.}} in a section whose current context is
	// this value directly.
	RenderEscaped(enc Encoder) error
	// RenderUnescaped is RenderEscaped without escaping.
	RenderUnescaped(enc Encoder) error

	// RenderFieldEscaped resolves name/hash on this record; on hit it
	// writes the field escaped and returns true, on miss it returns false.
	RenderFieldEscaped(hash uint64, name string, enc Encoder) (bool, error)
	// RenderFieldUnescaped is RenderFieldEscaped without escaping.
	RenderFieldUnescaped(hash uint64, name string, enc Encoder) (bool, error)

	// RenderFieldSection resolves name/hash; on hit it invokes section one
	// or more times against the field's value (once per element for a
	// sequence, once for a present optional or truthy scalar/record, zero
	// times for an empty/falsy field) and returns true. On miss it returns
	// false, leaving the section unrendered (a missing section field is
	// treated as falsy).
	RenderFieldSection(hash uint64, name string, section Section, enc Encoder) (bool, error)

	// RenderFieldInverse resolves name/hash; on hit, if the field is falsy
	// it renders section once with the *current* value and returns true;
	// if truthy it skips the body and returns true. On miss it returns
	// false — the renderer then renders the body itself as the fallback.
	RenderFieldInverse(hash uint64, name string, section Section, enc Encoder) (bool, error)

	// RenderFieldNotNone resolves an optional field by name/hash, invoking
	// section when it is present and not-none. Returns false on miss.
	RenderFieldNotNone(hash uint64, name string, section Section, enc Encoder) (bool, error)
}

// Section is a callable closure over a Template's block sub-range,
// (opener, opener+children]. Content implementations invoke Render once
// per repetition their field calls for; the renderer itself invokes it at
// most once, for an inverse section whose field is missing and for a
// section or inverse section named by the implicit name ".".
type Section struct {
	tpl   *Template
	start int
	depth int
}

// Render traverses the section's body with v as the current Content value.
func (s Section) Render(v Content, enc Encoder) error {
	return s.tpl.renderFrom(s.start, v, enc, s.depth)
}
