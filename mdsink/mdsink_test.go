package mdsink

import (
	"strings"
	"testing"

	"github.com/russross/blackfriday/v2"
)

func TestTransformRendersHeading(t *testing.T) {
	out := Transform([]byte("# Title\n\nSome *text*."))
	got := string(out)
	if !strings.Contains(got, "<h1") {
		t.Errorf("got %q, want an <h1> heading", got)
	}
	if !strings.Contains(got, "<em>text</em>") {
		t.Errorf("got %q, want emphasis rendered", got)
	}
}

func TestTransformWithExtensionsStrikethrough(t *testing.T) {
	out := TransformWithExtensions([]byte("~~gone~~"), blackfriday.CommonExtensions|blackfriday.Strikethrough)
	if !strings.Contains(string(out), "<del>") {
		t.Errorf("got %q, want strikethrough extension applied", string(out))
	}
}
