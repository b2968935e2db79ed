package mustache

import "strings"

type tokenKind uint8

const (
	tokContent tokenKind = iota
	tokOpen
	tokEOF
)

// openKind is the lexer's raw classification of a tag opener, before the
// parser turns it into a Tag.
type openKind uint8

const (
	openEscaped openKind = iota
	openUnescapedBrace
	openUnescapedAmp
	openSection
	openInverted
	openClosing
	openComment
	openPartial
)

// token is a single lexical item with its byte offset in the source.
// For tokContent, text is the literal run. For tokOpen, text is the
// already-trimmed tag name and standalone reports whether the standalone
// whitespace rule applied to this tag.
type token struct {
	kind       tokenKind
	open       openKind
	text       string
	standalone bool
	offset     int
}

// lexer scans source text into a stream of tokens. It never allocates a
// goroutine or channel: the parser pulls tokens one at a time via next(),
// which is the shape a parse-once/render-many engine with a
// zero-allocation goal needs.
type lexer struct {
	src   string
	pos   int
	queue []token
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// isStandaloneKind reports whether a tag opener participates in the
// standalone-whitespace rule: #, ^, /, !, >. Interpolation tags
// are never standalone.
func isStandaloneKind(k openKind) bool {
	switch k {
	case openSection, openInverted, openClosing, openComment, openPartial:
		return true
	default:
		return false
	}
}

// next returns the next token in the stream, or a *CompileError if the
// source contains an unbalanced tag.
func (l *lexer) next() (token, error) {
	if len(l.queue) > 0 {
		t := l.queue[0]
		l.queue = l.queue[1:]
		return t, nil
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, offset: l.pos}, nil
	}
	return l.scan()
}

// scan consumes one run of literal text plus (if present) the tag that
// follows it, queuing up to two tokens and returning the first.
func (l *lexer) scan() (token, error) {
	start := l.pos
	idx := strings.Index(l.src[l.pos:], "{{")
	if idx < 0 {
		text := l.src[l.pos:]
		l.pos = len(l.src)
		if text == "" {
			return token{kind: tokEOF, offset: l.pos}, nil
		}
		return token{kind: tokContent, text: text, offset: start}, nil
	}

	delimPos := l.pos + idx

	// Walk back over horizontal whitespace to find the standalone-candidate
	// boundary: a tag is only eligible to be standalone if everything since
	// the start of its line (or the start of input) is blank.
	i := delimPos
	for i > l.pos && (l.src[i-1] == ' ' || l.src[i-1] == '\t') {
		i--
	}
	mayStandalone := i == 0 || l.src[i-1] == '\n'
	text := l.src[l.pos:i]
	padding := l.src[i:delimPos]

	tagStart := delimPos + 2
	triple := tagStart < len(l.src) && l.src[tagStart] == '{'

	var closeIdx, closeLen int
	if triple {
		closeIdx = strings.Index(l.src[tagStart:], "}}}")
		closeLen = 3
	} else {
		closeIdx = strings.Index(l.src[tagStart:], "}}")
		closeLen = 2
	}
	if closeIdx < 0 {
		return token{}, newOffsetError(ErrUnclosedTag, "", delimPos)
	}

	innerStart := tagStart
	if triple {
		innerStart++ // the third '{' is a delimiter, not part of the name
	}
	rawInner := l.src[innerStart : tagStart+closeIdx]
	afterClose := tagStart + closeIdx + closeLen

	kind, name := classifyTag(rawInner, triple)

	standalone := false
	endPos := afterClose
	if mayStandalone && isStandaloneKind(kind) {
		// Walk forward over trailing horizontal whitespace before checking
		// for the line-ending newline, mirroring the backward walk done for
		// the tag's leading whitespace above: both sides of a standalone
		// tag's line are blank but for the tag itself.
		eow := afterClose
		for eow < len(l.src) && (l.src[eow] == ' ' || l.src[eow] == '\t') {
			eow++
		}
		switch {
		case eow >= len(l.src):
			standalone = true
			endPos = eow
		case l.src[eow] == '\n':
			standalone = true
			endPos = eow + 1
		case eow+1 < len(l.src) && l.src[eow] == '\r' && l.src[eow+1] == '\n':
			standalone = true
			endPos = eow + 2
		}
	}

	if standalone {
		l.pos = endPos
		if text != "" {
			l.queue = append(l.queue, token{kind: tokContent, text: text, offset: start})
		}
		l.queue = append(l.queue, token{kind: tokOpen, open: kind, text: name, standalone: true, offset: delimPos})
	} else {
		l.pos = afterClose
		full := text + padding
		if full != "" {
			l.queue = append(l.queue, token{kind: tokContent, text: full, offset: start})
		}
		l.queue = append(l.queue, token{kind: tokOpen, open: kind, text: name, standalone: false, offset: delimPos})
	}

	t := l.queue[0]
	l.queue = l.queue[1:]
	return t, nil
}

// classifyTag inspects a tag's raw inner text (between the delimiters,
// before trimming) and returns its kind and trimmed name.
func classifyTag(raw string, triple bool) (openKind, string) {
	if triple {
		return openUnescapedBrace, strings.TrimSpace(raw)
	}
	if raw == "" {
		return openEscaped, ""
	}
	switch raw[0] {
	case '#':
		return openSection, strings.TrimSpace(raw[1:])
	case '^':
		return openInverted, strings.TrimSpace(raw[1:])
	case '/':
		return openClosing, strings.TrimSpace(raw[1:])
	case '!':
		return openComment, strings.TrimSpace(raw[1:])
	case '>':
		return openPartial, strings.TrimSpace(raw[1:])
	case '&':
		return openUnescapedAmp, strings.TrimSpace(raw[1:])
	default:
		return openEscaped, strings.TrimSpace(raw)
	}
}
