package mustache

import "testing"

func render(t *testing.T, src string, v Content) string {
	t.Helper()
	tpl := mustCompile(t, src)
	out, err := tpl.Render(v)
	if err != nil {
		t.Fatalf("Render(%q): %v", src, err)
	}
	return out
}

func TestScenarioBasicInterpolation(t *testing.T) {
	got := render(t, "<h1>{{title}}</h1>", Reflect(struct{ Title string `mustache:"title"` }{Title: "Hi"}))
	if got != "<h1>Hi</h1>" {
		t.Errorf("got %q, want %q", got, "<h1>Hi</h1>")
	}
}

func TestScenarioEscapingDefaultOnRawOff(t *testing.T) {
	data := struct{ Body string }{Body: "<script>"}
	if got := render(t, "{{Body}}", Reflect(data)); got != "&lt;script&gt;" {
		t.Errorf("escaped got %q", got)
	}
	if got := render(t, "{{{Body}}}", Reflect(data)); got != "<script>" {
		t.Errorf("unescaped triple-mustache got %q", got)
	}
	if got := render(t, "{{&Body}}", Reflect(data)); got != "<script>" {
		t.Errorf("unescaped ampersand got %q", got)
	}
}

func TestScenarioSectionIteratesSequence(t *testing.T) {
	type post struct{ Title string }
	type page struct{ Posts []post }
	data := page{Posts: []post{{Title: "one"}, {Title: "two"}}}
	got := render(t, "{{#Posts}}<li>{{Title}}</li>{{/Posts}}", Reflect(data))
	if got != "<li>one</li><li>two</li>" {
		t.Errorf("got %q", got)
	}
}

func TestScenarioSectionEmptySequenceRendersNothing(t *testing.T) {
	type page struct{ Posts []string }
	got := render(t, "before{{#Posts}}x{{/Posts}}after", Reflect(page{}))
	if got != "beforeafter" {
		t.Errorf("got %q, want %q", got, "beforeafter")
	}
}

func TestScenarioInvertedSection(t *testing.T) {
	type page struct{ Posts []string }
	got := render(t, "{{^Posts}}empty{{/Posts}}", Reflect(page{}))
	if got != "empty" {
		t.Errorf("got %q, want %q", got, "empty")
	}

	got = render(t, "{{^Posts}}empty{{/Posts}}", Reflect(page{Posts: []string{"a"}}))
	if got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestScenarioInvertedSectionMissingFieldFallsBackToParent(t *testing.T) {
	type page struct{ Title string }
	got := render(t, "{{^NoSuchField}}{{Title}}{{/NoSuchField}}", Reflect(page{Title: "fallback"}))
	if got != "fallback" {
		t.Errorf("got %q, want %q (miss falls back to rendering body with parent context)", got, "fallback")
	}
}

func TestScenarioDottedPathResolution(t *testing.T) {
	type inner struct{ City string }
	type outer struct{ Home inner }
	got := render(t, "{{Home.City}}", Reflect(outer{Home: inner{City: "Lagos"}}))
	if got != "Lagos" {
		t.Errorf("got %q, want %q", got, "Lagos")
	}
}

func TestScenarioStandaloneTagsEatSurroundingLine(t *testing.T) {
	src := "Header\n{{#Show}}\nShown\n{{/Show}}\nFooter"
	got := render(t, src, Reflect(struct{ Show bool }{Show: true}))
	if got != "Header\nShown\nFooter" {
		t.Errorf("got %q", got)
	}
}

func TestScenarioCommentProducesNoOutput(t *testing.T) {
	got := render(t, "a{{! swallowed }}b", Reflect(struct{}{}))
	if got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestTemplateCompileErrorHasNoPartialTemplate(t *testing.T) {
	tpl, err := Compile("{{#open}}")
	if err == nil {
		t.Fatal("expected error for unclosed section")
	}
	if tpl != nil {
		t.Error("Compile must return a nil *Template alongside an error")
	}
}

func TestTemplateSourceAndCapacityHint(t *testing.T) {
	tpl := mustCompile(t, "fixed text {{name}}")
	if tpl.Source() != "fixed text {{name}}" {
		t.Errorf("Source() = %q", tpl.Source())
	}
	if tpl.CapacityHint() != len("fixed text ") {
		t.Errorf("CapacityHint() = %d, want %d", tpl.CapacityHint(), len("fixed text "))
	}
}

func TestScenarioSectionConcatenation(t *testing.T) {
	type post struct{ Title string }
	type page struct{ Posts []post }
	got := render(t, "{{#Posts}}-{{Title}}-{{/Posts}}", Reflect(page{Posts: []post{{Title: "A"}, {Title: "B"}}}))
	if got != "-A--B-" {
		t.Errorf("got %q, want %q", got, "-A--B-")
	}
}

func TestScenarioDottedPathMissingComponentIsOverallMiss(t *testing.T) {
	type inner struct{}
	type outer struct{ A inner }
	got := render(t, "{{A.b}}", Reflect(outer{}))
	if got != "" {
		t.Errorf("got %q, want empty string for a missing dotted-path component", got)
	}
}

func TestPartialRendersEmptyWhenTemplateHasNoCorpus(t *testing.T) {
	got := render(t, "before{{>missing}}after", Reflect(struct{}{}))
	if got != "beforeafter" {
		t.Errorf("got %q, want %q (partial with no attached corpus renders empty)", got, "beforeafter")
	}
}
