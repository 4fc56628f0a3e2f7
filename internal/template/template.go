package template

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"codecraft/backend/internal/codegen"
	"codecraft/backend/internal/model"
)

//go:embed templates.yaml
var builtin []byte

// Definition is one named starter file set.
type Definition struct {
	Description string     `yaml:"description"`
	Files       []SeedFile `yaml:"files"`
}

type SeedFile struct {
	Name     string `yaml:"name"`
	Content  string `yaml:"content"`
	Language string `yaml:"language,omitempty"`
}

// Registry maps template names to their seed files.
type Registry struct {
	defs map[string]Definition
}

// Builtin returns the registry compiled into the binary.
func Builtin() (*Registry, error) {
	return Parse(builtin)
}

// Parse decodes a YAML document of template name to Definition.
func Parse(data []byte) (*Registry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("template: definition payload is empty")
	}
	defs := map[string]Definition{}
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("template: decode definitions: %w", err)
	}
	for name, def := range defs {
		seen := map[string]bool{}
		for _, f := range def.Files {
			if f.Name == "" {
				return nil, fmt.Errorf("template: %s: file without a name", name)
			}
			if seen[f.Name] {
				return nil, fmt.Errorf("template: %s: duplicate file %s", name, f.Name)
			}
			seen[f.Name] = true
		}
	}
	return &Registry{defs: defs}, nil
}

// Seed returns fresh copies of the template's files. Unknown templates seed nothing.
func (r *Registry) Seed(name string) map[string]model.ProjectFile {
	def, ok := r.defs[name]
	if !ok {
		return map[string]model.ProjectFile{}
	}
	files := make(map[string]model.ProjectFile, len(def.Files))
	for _, f := range def.Files {
		lang := f.Language
		if lang == "" {
			lang = codegen.LanguageFor(f.Name)
		}
		files[f.Name] = model.ProjectFile{Name: f.Name, Content: f.Content, Language: lang}
	}
	return files
}

// Names lists the known templates in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
