package mustache

import "io"

// htmlEscapeTable is the fixed, non-configurable HTML translation table.
// Bytes not listed pass through unchanged.
var htmlEscapeTable = [256]string{
	'<':  "&lt;",
	'>':  "&gt;",
	'&':  "&amp;",
	'"':  "&quot;",
	'\'': "&#x27;",
	'/':  "&#x2F;",
}

// sinkWriter is the Encoder the renderer hands to Content implementations.
// It wraps a raw io.Writer and performs escaping in a single pass: each
// byte of s is visited once, and identical runs between escaped characters
// are written in one WriteString call rather than byte by byte.
type sinkWriter struct {
	w io.Writer
}

func newEncoder(w io.Writer) Encoder {
	return &sinkWriter{w: w}
}

func (s *sinkWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *sinkWriter) WriteUnescaped(v string) error {
	_, err := io.WriteString(s.w, v)
	return err
}

func (s *sinkWriter) WriteEscaped(v string) error {
	last := 0
	for i := 0; i < len(v); i++ {
		esc := htmlEscapeTable[v[i]]
		if esc == "" {
			continue
		}
		if last < i {
			if _, err := io.WriteString(s.w, v[last:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(s.w, esc); err != nil {
			return err
		}
		last = i + 1
	}
	if last < len(v) {
		_, err := io.WriteString(s.w, v[last:])
		return err
	}
	return nil
}
