// Package mustachefs is a thin convenience layer around mustache.Compile
// and mustache.CompilePartials for the common case of templates living on
// disk, kept deliberately outside the core engine package.
package mustachefs

import (
	"os"
	"path"

	"github.com/corestache/mustache"
	"gopkg.in/yaml.v2"
)

// LoadFile compiles a single template from filename with no partial
// support.
func LoadFile(filename string) (*mustache.Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return mustache.Compile(string(data))
}

// LoadFileCorpus compiles filename as the sole entrypoint of a Corpus
// rooted at filename's directory, so any partials it references resolve
// against sibling files.
func LoadFileCorpus(filename string, opts ...mustache.CorpusOption) (*mustache.Corpus, *mustache.Template, error) {
	dir, name := path.Split(filename)
	corpus, err := mustache.CompilePartials(dir, []string{name}, opts...)
	if err != nil {
		return nil, nil, err
	}
	tmpl, _ := corpus.Template(name)
	return corpus, tmpl, nil
}

// Manifest describes a partial corpus declaratively, so a caller doesn't
// need to hardcode entrypoint names or extension lists in Go.
type Manifest struct {
	Root        string   `yaml:"root"`
	Entrypoints []string `yaml:"entrypoints"`
	Extensions  []string `yaml:"extensions"`
}

// LoadManifest reads a YAML manifest (the root, entrypoints and optional
// extensions keys of Manifest) and compiles the corpus it describes.
func LoadManifest(manifestPath string) (*mustache.Corpus, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	var opts []mustache.CorpusOption
	if len(m.Extensions) > 0 {
		opts = append(opts, mustache.WithExtensions(m.Extensions...))
	}

	return mustache.CompilePartials(m.Root, m.Entrypoints, opts...)
}
