package mustache

import (
	"os"
	"path"
	"strings"
)

// Corpus is a directory-rooted, eagerly-loaded set of Templates addressable
// by partial name. Construction reads and compiles every initial path,
// scans each compiled Block stream for Partial tags, and transitively
// loads whatever they reference, failing with InvalidPartial if a
// referenced file cannot be read. Cyclic references are permitted in the
// graph (a Template may directly or indirectly reference itself); they are
// made render-time safe by the partial nesting bound in render.go, not by
// any cycle detection here. A Corpus is immutable once CompilePartials
// returns, and every Template it contains lives for the Corpus's lifetime.
type Corpus struct {
	root       string
	extensions []string
	unsafe     bool
	templates  map[string]*Template
}

// CorpusOption configures CompilePartials.
type CorpusOption func(*Corpus)

// WithExtensions overrides the default search extensions ("", ".mustache",
// ".stache") tried, in order, when resolving a partial name to a file.
func WithExtensions(exts ...string) CorpusOption {
	return func(c *Corpus) { c.extensions = exts }
}

// WithUnsafeNames allows partial names to escape the corpus root after
// path.Clean (e.g. a leading ".."). Off by default.
func WithUnsafeNames() CorpusOption {
	return func(c *Corpus) { c.unsafe = true }
}

// CompilePartials builds a Corpus rooted at dir, eagerly compiling every
// template named in initialPaths and every partial they transitively
// reference.
func CompilePartials(dir string, initialPaths []string, opts ...CorpusOption) (*Corpus, error) {
	c := &Corpus{
		root:       dir,
		extensions: []string{"", ".mustache", ".stache"},
		templates:  make(map[string]*Template),
	}
	for _, opt := range opts {
		opt(c)
	}

	pending := append([]string(nil), initialPaths...)
	queued := make(map[string]bool, len(initialPaths))
	for _, p := range pending {
		queued[p] = true
	}

	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]

		data, err := c.readPartial(name)
		if err != nil {
			return nil, err
		}

		tmpl, err := Compile(data)
		if err != nil {
			if ce, ok := err.(*CompileError); ok {
				return nil, &CompileError{Kind: ErrInvalidPartial, Path: name, Cause: ce}
			}
			return nil, err
		}
		tmpl.corpus = c
		c.templates[name] = tmpl

		for _, b := range tmpl.blocks {
			if b.tag == Partial && !queued[b.name] {
				queued[b.name] = true
				pending = append(pending, b.name)
			}
		}
	}

	return c, nil
}

// readPartial resolves name to a file under the corpus root by trying each
// configured extension in order, and returns its contents.
func (c *Corpus) readPartial(name string) (string, error) {
	cleanName := name
	if !c.unsafe {
		cleanName = path.Clean(name)
		if strings.HasPrefix(cleanName, ".") {
			return "", &CompileError{Kind: ErrInvalidPartial, Path: name, Cause: errUnsafePartialName}
		}
	}

	var lastErr error
	for _, ext := range c.extensions {
		p := path.Join(c.root, cleanName+ext)
		data, err := os.ReadFile(p)
		if err == nil {
			return string(data), nil
		}
		lastErr = err
	}
	return "", &CompileError{Kind: ErrInvalidPartial, Path: name, Cause: lastErr}
}

// Template looks up a compiled partial by name.
func (c *Corpus) Template(name string) (*Template, bool) {
	t, ok := c.templates[name]
	return t, ok
}

// errUnsafePartialName is returned, wrapped in a CompileError, when a
// partial name would escape the corpus root and WithUnsafeNames was not
// set.
var errUnsafePartialName = unsafeNameError{}

type unsafeNameError struct{}

func (unsafeNameError) Error() string { return "partial name escapes corpus root" }
