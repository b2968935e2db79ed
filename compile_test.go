package mustache

import "testing"

func TestCompileBlocksFlatSection(t *testing.T) {
	blocks, _, err := compileBlocks("a{{#items}}b{{name}}c{{/items}}d")
	if err != nil {
		t.Fatalf("compileBlocks: %v", err)
	}

	// a, {{#items}}, b, {{name}}, c, Tail(closing /items), d-as-Tail(EOF)
	wantTags := []Tag{Section, Escaped, Tail, Tail}
	var gotTags []Tag
	for _, b := range blocks {
		if b.tag == Section || b.tag == Escaped || b.tag == Tail {
			gotTags = append(gotTags, b.tag)
		}
	}
	if len(gotTags) != len(wantTags) {
		t.Fatalf("got tags %v, want %v", gotTags, wantTags)
	}
	for i, want := range wantTags {
		if gotTags[i] != want {
			t.Errorf("tag %d = %v, want %v", i, gotTags[i], want)
		}
	}

	// The Section block's children offset must point at its own Tail.
	var sectionIdx int
	for i, b := range blocks {
		if b.tag == Section {
			sectionIdx = i
			break
		}
	}
	closeIdx := sectionIdx + blocks[sectionIdx].children
	if blocks[closeIdx].tag != Tail {
		t.Fatalf("children offset %d from section at %d lands on %v, want Tail", blocks[sectionIdx].children, sectionIdx, blocks[closeIdx].tag)
	}

	// Final block is the top-level Tail carrying the trailing literal "d".
	last := blocks[len(blocks)-1]
	if last.tag != Tail || last.html != "d" {
		t.Fatalf("final block = %+v, want Tail with html %q", last, "d")
	}
}

func TestCompileBlocksTrailingLiteralSurvives(t *testing.T) {
	blocks, _, err := compileBlocks("<h1>{{title}}</h1>")
	if err != nil {
		t.Fatalf("compileBlocks: %v", err)
	}
	last := blocks[len(blocks)-1]
	if last.tag != Tail || last.html != "</h1>" {
		t.Fatalf("final Tail html = %q, want %q", last.html, "</h1>")
	}
}

func TestCompileBlocksUnclosedSection(t *testing.T) {
	_, _, err := compileBlocks("{{#items}}x")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CompileError", err, err)
	}
	if ce.Kind != ErrUnclosedSection {
		t.Errorf("Kind = %v, want ErrUnclosedSection", ce.Kind)
	}
	if ce.Name != "items" {
		t.Errorf("Name = %q, want %q", ce.Name, "items")
	}
}

func TestCompileBlocksUnexpectedClosing(t *testing.T) {
	_, _, err := compileBlocks("x{{/items}}")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CompileError", err, err)
	}
	if ce.Kind != ErrUnexpectedClosing {
		t.Errorf("Kind = %v, want ErrUnexpectedClosing", ce.Kind)
	}
}

func TestCompileBlocksMismatchedClosing(t *testing.T) {
	_, _, err := compileBlocks("{{#a}}x{{/b}}")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CompileError", err, err)
	}
	if ce.Kind != ErrUnclosedSection {
		t.Errorf("Kind = %v, want ErrUnclosedSection", ce.Kind)
	}
	if ce.Name != "a" {
		t.Errorf("Name = %q, want %q", ce.Name, "a")
	}
}

func TestCompileBlocksUnclosedTag(t *testing.T) {
	_, _, err := compileBlocks("hello {{name")
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CompileError", err, err)
	}
	if ce.Kind != ErrUnclosedTag {
		t.Errorf("Kind = %v, want ErrUnclosedTag", ce.Kind)
	}
}

func TestCompileBlocksCommentDiscardsButKeepsLiteral(t *testing.T) {
	blocks, _, err := compileBlocks("x{{! nope }}y")
	if err != nil {
		t.Fatalf("compileBlocks: %v", err)
	}
	var found bool
	for _, b := range blocks {
		if b.tag == Comment {
			found = true
			if b.html != "x" {
				t.Errorf("comment html = %q, want %q", b.html, "x")
			}
		}
	}
	if !found {
		t.Fatal("no Comment block emitted")
	}
	last := blocks[len(blocks)-1]
	if last.html != "y" {
		t.Errorf("trailing literal = %q, want %q", last.html, "y")
	}
}
