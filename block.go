package mustache

import "hash/fnv"

// Tag identifies the operation a Block performs.
type Tag uint8

const (
	// Invalid is the zero value; no Block in a compiled stream ever carries it.
	Invalid Tag = iota
	// Escaped interpolates a field, HTML-escaping the result.
	Escaped
	// Unescaped interpolates a field without escaping.
	Unescaped
	// Section renders its body zero or more times depending on the field.
	Section
	// Inverted renders its body once when the field is falsy or absent.
	Inverted
	// Closing only exists transiently during compilation; it never appears
	// in a finished Block stream.
	Closing
	// Comment never emits output.
	Comment
	// Partial inlines a named Template from the owning Corpus.
	Partial
	// Tail is the sentinel that terminates a traversal frame, top-level or
	// section body alike.
	Tail
)

func (t Tag) String() string {
	switch t {
	case Escaped:
		return "Escaped"
	case Unescaped:
		return "Unescaped"
	case Section:
		return "Section"
	case Inverted:
		return "Inverted"
	case Closing:
		return "Closing"
	case Comment:
		return "Comment"
	case Partial:
		return "Partial"
	case Tail:
		return "Tail"
	default:
		return "Invalid"
	}
}

// Block is a single instruction in a compiled Template's flat instruction
// stream. html is a literal slice into the Template's owned source, emitted
// raw before the tag acts. For Section/Inverted blocks, children is the
// count of subsequent blocks (the body, inclusive of its closing Tail) —
// position i's matching close sits at i+children.
type Block struct {
	html     string
	name     string
	hash     uint64
	tag      Tag
	children int
}

// HashName computes the FNV-1a 64-bit, unseeded hash a compiled Block's
// hash field carries for name. Hand-written Content implementations
// (design option (c) — dispatching on hash without reflection) precompute
// HashName(fieldName) once, typically into a package-level var, and switch
// on it in their RenderField* methods instead of comparing strings. Dotted
// paths ("a.b.c") are hashed whole; splitting on '.' is the Content
// implementation's responsibility.
func HashName(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

// hashName is the internal alias used by the compiler and reflectcontent.
func hashName(name string) uint64 { return HashName(name) }
