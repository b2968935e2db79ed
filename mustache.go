// Package mustache is a runtime Mustache-style template engine optimized
// for rendering native Go data structures with zero intermediate
// allocations and parse-once/render-many semantics. Templates compile
// source text into a flat, branch-friendly instruction stream once; the
// renderer then interprets that stream against any value implementing the
// Content protocol, as many times as the caller likes.
//
// The engine deliberately does not render from dynamic value trees such as
// decoded JSON: every value rendered must implement Content, either by
// hand, via the reflectcontent adapter, or via a generated implementation
// (outside this package's scope — see DESIGN.md).
package mustache

import (
	"bytes"
	"io"
)

// Template is a compiled Mustache template: its owned source text, a flat
// ordered Block sequence, and a capacity hint used to pre-size output
// buffers. It is immutable after Compile returns and may be shared across
// goroutines for concurrent rendering — nothing about rendering
// mutates a Template.
type Template struct {
	src         string
	blocks      []Block
	literalHint int
	corpus      *Corpus // nil unless this Template was built as part of one
}

// Compile parses source into a Template. It validates section/inverse
// nesting and returns a *CompileError describing the first problem found;
// no partial Template is ever returned alongside an error.
//
// A Template built by Compile directly has no partial corpus attached:
// any {{>name}} tag it contains renders as empty. Use CompilePartials to
// build a Template whose partials resolve.
func Compile(source string) (*Template, error) {
	blocks, hint, err := compileBlocks(source)
	if err != nil {
		return nil, err
	}
	return &Template{src: source, blocks: blocks, literalHint: hint}, nil
}

// Source returns the original text the Template was compiled from.
func (t *Template) Source() string { return t.src }

// CapacityHint returns the sum of literal byte lengths in the compiled
// block stream, used to pre-size render buffers before adding a Content
// value's own CapacityHint.
func (t *Template) CapacityHint() int { return t.literalHint }

// Render renders the Template against v and returns the result as a
// string, pre-sizing the buffer using the template's literal hint plus
// v.CapacityHint(t).
func (t *Template) Render(v Content) (string, error) {
	var buf bytes.Buffer
	buf.Grow(t.literalHint + v.CapacityHint(t))
	if err := t.RenderToWriter(v, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams the render directly to w. The only error it can
// return is one propagated verbatim from w; template semantics never fail
// at render time.
func (t *Template) RenderToWriter(v Content, w io.Writer) error {
	enc := newEncoder(w)
	return t.renderFrom(0, v, enc, 0)
}
