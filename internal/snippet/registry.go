package snippet

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Output file naming: <FilePrefix><Name><FileSuffix>, e.g. ExpoUISettingsScreen.jsx.
const (
	FilePrefix = "ExpoUI"
	FileSuffix = "Screen.jsx"
)

// manifestFile is the name of the manifest inside a template filesystem.
const manifestFile = "manifest.yaml"

var (
	// ErrMissingName is returned by Lookup when no template name is given.
	ErrMissingName = errors.New("no template name given")

	// ErrUnknownTemplate is returned by Lookup when the name is not registered.
	ErrUnknownTemplate = errors.New("unknown template type")
)

// Template is a single registered snippet.
type Template struct {
	Name        string
	Description string
	Body        string
}

// Registry maps template names to their payloads. It is immutable once built.
type Registry struct {
	order  []string
	byName map[string]Template
}

// manifest is the on-disk description of a template set.
type manifest struct {
	Templates []manifestEntry `yaml:"templates"`
}

type manifestEntry struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

// New builds a registry from a filesystem containing manifest.yaml and the
// payload files it lists. Every name must be lowercase and unique, and every
// .jsx file in the filesystem root must be listed in the manifest.
func New(fsys fs.FS) (*Registry, error) {
	data, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestFile, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestFile, err)
	}
	if len(m.Templates) == 0 {
		return nil, fmt.Errorf("%s lists no templates", manifestFile)
	}

	reg := &Registry{
		order:  make([]string, 0, len(m.Templates)),
		byName: make(map[string]Template, len(m.Templates)),
	}
	listed := make(map[string]bool, len(m.Templates))

	for _, entry := range m.Templates {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		if _, dup := reg.byName[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate template name %q", entry.Name)
		}

		body, err := fs.ReadFile(fsys, entry.File)
		if err != nil {
			return nil, fmt.Errorf("reading payload for %q: %w", entry.Name, err)
		}

		listed[entry.File] = true
		reg.order = append(reg.order, entry.Name)
		reg.byName[entry.Name] = Template{
			Name:        entry.Name,
			Description: entry.Description,
			Body:        string(body),
		}
	}

	if err := checkUnlisted(fsys, listed); err != nil {
		return nil, err
	}

	return reg, nil
}

// validateEntry checks a single manifest entry.
func validateEntry(entry manifestEntry) error {
	switch {
	case entry.Name == "":
		return errors.New("manifest entry without a name")
	case entry.Name != strings.ToLower(entry.Name):
		return fmt.Errorf("template name %q must be lowercase", entry.Name)
	case strings.ContainsAny(entry.Name, " /\\"):
		return fmt.Errorf("template name %q contains a separator", entry.Name)
	case entry.File == "":
		return fmt.Errorf("template %q has no payload file", entry.Name)
	}
	return nil
}

// checkUnlisted reports payload files that the manifest does not reference.
func checkUnlisted(fsys fs.FS, listed map[string]bool) error {
	dirEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("listing payloads: %w", err)
	}
	for _, entry := range dirEntries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".jsx" {
			continue
		}
		if !listed[entry.Name()] {
			return fmt.Errorf("payload %s is not listed in %s", entry.Name(), manifestFile)
		}
	}
	return nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	sub, err := fs.Sub(builtinFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("snippet: %v", err))
	}
	reg, err := New(sub)
	if err != nil {
		panic(fmt.Sprintf("snippet: built-in templates: %v", err))
	}
	return reg
})

// Default returns the registry of built-in templates.
func Default() *Registry {
	return defaultRegistry()
}

// Names returns the registered names in manifest order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Templates returns every registered template in manifest order.
func (r *Registry) Templates() []Template {
	templates := make([]Template, 0, len(r.order))
	for _, name := range r.order {
		templates = append(templates, r.byName[name])
	}
	return templates
}

// Lookup resolves a user-supplied token to a template.
// Matching is case-insensitive; whitespace is part of the token.
func (r *Registry) Lookup(token string) (Template, error) {
	name := Normalize(token)
	if name == "" {
		return Template{}, ErrMissingName
	}
	tmpl, ok := r.byName[name]
	if !ok {
		return Template{}, fmt.Errorf("%w '%s'", ErrUnknownTemplate, name)
	}
	return tmpl, nil
}

// Normalize returns the lookup key for a token.
func Normalize(token string) string {
	return strings.ToLower(token)
}

// FileName returns the output file name for a template name.
func FileName(name string) string {
	return FilePrefix + cases.Title(language.Und).String(Normalize(name)) + FileSuffix
}
