package mustache

// maxPartialDepth is the render-time recursion bound: partial
// expansion increments a counter before each expansion; once it would
// exceed this ceiling the partial is silently skipped. This is the sole
// defense against cyclic partials and pathologically deep structures.
const maxPartialDepth = 64

// isImplicitName reports whether a block's name refers to the current
// Content value itself ("{{.}}", and the degenerate "{{}}") rather than
// one of its named fields. The renderer intercepts these before dispatch
// so that every Content implementation — hand-written or reflective — gets
// "{{.}}" for free via RenderEscaped/RenderUnescaped/Section.Render,
// instead of having to recognize the sentinel name itself.
func isImplicitName(name string) bool {
	return name == "" || name == "."
}

// renderFrom walks the block stream starting at index start until it hits
// a Tail block, which terminates the current traversal frame — the same
// function serves the top-level template (start == 0) and every section
// body (start == opener+1).
func (t *Template) renderFrom(start int, v Content, enc Encoder, depth int) error {
	i := start
	for {
		b := &t.blocks[i]

		if b.html != "" {
			if err := enc.WriteUnescaped(b.html); err != nil {
				return err
			}
		}

		switch b.tag {
		case Escaped:
			if isImplicitName(b.name) {
				if err := v.RenderEscaped(enc); err != nil {
					return err
				}
			} else if _, err := v.RenderFieldEscaped(b.hash, b.name, enc); err != nil {
				return err
			}
			i++

		case Unescaped:
			if isImplicitName(b.name) {
				if err := v.RenderUnescaped(enc); err != nil {
					return err
				}
			} else if _, err := v.RenderFieldUnescaped(b.hash, b.name, enc); err != nil {
				return err
			}
			i++

		case Section:
			sec := Section{tpl: t, start: i + 1, depth: depth}
			if isImplicitName(b.name) {
				if v.IsTruthy() {
					if err := sec.Render(v, enc); err != nil {
						return err
					}
				}
			} else if _, err := v.RenderFieldSection(b.hash, b.name, sec, enc); err != nil {
				return err
			}
			i += b.children + 1

		case Inverted:
			sec := Section{tpl: t, start: i + 1, depth: depth}
			if isImplicitName(b.name) {
				if !v.IsTruthy() {
					if err := sec.Render(v, enc); err != nil {
						return err
					}
				}
			} else {
				ok, err := v.RenderFieldInverse(b.hash, b.name, sec, enc)
				if err != nil {
					return err
				}
				if !ok {
					// Miss: the field doesn't exist at all. The renderer
					// itself renders the body once with the unchanged
					// parent value.
					if err := sec.Render(v, enc); err != nil {
						return err
					}
				}
			}
			i += b.children + 1

		case Partial:
			if depth < maxPartialDepth && t.corpus != nil {
				if partial, ok := t.corpus.templates[b.name]; ok {
					if err := partial.renderFrom(0, v, enc, depth+1); err != nil {
						return err
					}
				}
			}
			i++

		case Comment:
			i++

		case Tail:
			return nil

		default:
			i++
		}
	}
}
