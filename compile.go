package mustache

// compiler drives the lexer and builds a flat Block stream, validating
// section/inverse nesting as it goes.
type compiler struct {
	lex      *lexer
	blocks   []Block
	stack    []int // indices of open Section/Inverted blocks
	literals int    // running sum of literal byte lengths (the capacity hint)
}

// compileBlocks turns source text into a flat, validated Block stream plus
// the capacity hint (sum of literal byte lengths).
func compileBlocks(src string) ([]Block, int, error) {
	c := &compiler{lex: newLexer(src)}
	if err := c.run(); err != nil {
		return nil, 0, err
	}
	return c.blocks, c.literals, nil
}

func (c *compiler) emit(b Block) int {
	c.literals += len(b.html)
	c.blocks = append(c.blocks, b)
	return len(c.blocks) - 1
}

func (c *compiler) run() error {
	var pendingHTML string

	for {
		tok, err := c.lex.next()
		if err != nil {
			return err
		}

		switch tok.kind {
		case tokContent:
			pendingHTML += tok.text
			continue

		case tokEOF:
			if len(c.stack) > 0 {
				opener := c.blocks[c.stack[len(c.stack)-1]]
				return newOffsetError(ErrUnclosedSection, opener.name, tok.offset)
			}
			c.emit(Block{html: pendingHTML, tag: Tail})
			return nil

		case tokOpen:
			switch tok.open {
			case openEscaped:
				c.emit(Block{html: pendingHTML, name: tok.text, hash: hashName(tok.text), tag: Escaped})
			case openUnescapedBrace, openUnescapedAmp:
				c.emit(Block{html: pendingHTML, name: tok.text, hash: hashName(tok.text), tag: Unescaped})
			case openPartial:
				c.emit(Block{html: pendingHTML, name: tok.text, hash: hashName(tok.text), tag: Partial})
			case openComment:
				c.emit(Block{html: pendingHTML, tag: Comment})
			case openSection:
				idx := c.emit(Block{html: pendingHTML, name: tok.text, hash: hashName(tok.text), tag: Section})
				c.stack = append(c.stack, idx)
			case openInverted:
				idx := c.emit(Block{html: pendingHTML, name: tok.text, hash: hashName(tok.text), tag: Inverted})
				c.stack = append(c.stack, idx)
			case openClosing:
				if len(c.stack) == 0 {
					return newOffsetError(ErrUnexpectedClosing, tok.text, tok.offset)
				}
				openerIdx := c.stack[len(c.stack)-1]
				c.stack = c.stack[:len(c.stack)-1]
				if c.blocks[openerIdx].name != tok.text {
					return newOffsetError(ErrUnclosedSection, c.blocks[openerIdx].name, tok.offset)
				}
				tailIdx := c.emit(Block{html: pendingHTML, tag: Tail})
				c.blocks[openerIdx].children = tailIdx - openerIdx
			}
			pendingHTML = ""
		}
	}
}
