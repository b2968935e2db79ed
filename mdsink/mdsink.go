// Package mdsink is an optional CommonMark post-processing pass: it is
// never invoked by the render loop itself, only by a caller who chooses to
// pipe a rendered template's output through it afterward.
package mdsink

import "github.com/russross/blackfriday/v2"

// Transform renders markdown to HTML via Blackfriday's default extension
// set (same defaults as github.com/russross/blackfriday/v2's top-level
// Run). It is a pure function: no state is kept between calls, and it
// does not know or care that its input came from a mustache.Template.
func Transform(markdown []byte) []byte {
	return blackfriday.Run(markdown)
}

// TransformWithExtensions is Transform with an explicit Blackfriday
// extension set, for callers who need tables, strikethrough, or other
// non-default CommonMark extensions.
func TransformWithExtensions(markdown []byte, extensions blackfriday.Extensions) []byte {
	return blackfriday.Run(markdown, blackfriday.WithExtensions(extensions))
}
