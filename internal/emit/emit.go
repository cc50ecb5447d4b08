// Package emit resolves template names and writes their payloads to disk.
package emit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gorewood/expoui/internal/output"
	"github.com/gorewood/expoui/internal/snippet"
)

// Result describes a written template.
type Result struct {
	Name  string `json:"template"`
	File  string `json:"file"`
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

// Emitter writes templates from a registry into a directory.
type Emitter struct {
	registry *snippet.Registry
	dir      string
}

// New creates an Emitter. A nil registry uses snippet.Default and an empty
// dir uses the current working directory.
func New(registry *snippet.Registry, dir string) *Emitter {
	if registry == nil {
		registry = snippet.Default()
	}
	if dir == "" {
		dir = "."
	}
	return &Emitter{registry: registry, dir: dir}
}

// Dir returns the output directory.
func (e *Emitter) Dir() string {
	return e.dir
}

// Registry returns the registry templates are resolved against.
func (e *Emitter) Registry() *snippet.Registry {
	return e.registry
}

// Resolve looks up a token and converts lookup failures into user errors
// that carry the list of valid names.
func (e *Emitter) Resolve(token string) (snippet.Template, error) {
	tmpl, err := e.registry.Lookup(token)
	switch {
	case err == nil:
		return tmpl, nil
	case errors.Is(err, snippet.ErrMissingName):
		return snippet.Template{}, output.NewUserErrorWithCause("no template type given", err).
			WithChoices(e.registry.Names())
	case errors.Is(err, snippet.ErrUnknownTemplate):
		msg := fmt.Sprintf("Unknown template type '%s'", snippet.Normalize(token))
		return snippet.Template{}, output.NewUserErrorWithCause(msg, err).
			WithChoices(e.registry.Names())
	default:
		return snippet.Template{}, output.NewSystemErrorWithCause("template lookup failed", err)
	}
}

// Emit writes the template named by token to <dir>/<FileName>.
// An existing file is replaced. The directory is created if missing.
func (e *Emitter) Emit(ctx context.Context, token string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, output.NewSystemErrorWithCause("emit canceled", err)
	}

	tmpl, err := e.Resolve(token)
	if err != nil {
		return nil, err
	}

	file := snippet.FileName(tmpl.Name)
	path := filepath.Join(e.dir, file)

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause(
			fmt.Sprintf("failed to create output directory %s: %v", e.dir, err), err)
	}
	if err := atomicWrite(path, []byte(tmpl.Body)); err != nil {
		return nil, output.NewSystemErrorWithCause(
			fmt.Sprintf("failed to write %s: %v", path, err), err)
	}

	return &Result{
		Name:  tmpl.Name,
		File:  file,
		Path:  path,
		Bytes: len(tmpl.Body),
	}, nil
}

// WriteTo writes the payload for token to w instead of a file.
func (e *Emitter) WriteTo(w io.Writer, token string) (snippet.Template, error) {
	tmpl, err := e.Resolve(token)
	if err != nil {
		return snippet.Template{}, err
	}
	if _, err := io.WriteString(w, tmpl.Body); err != nil {
		return snippet.Template{}, output.NewSystemErrorWithCause("failed to write template", err)
	}
	return tmpl, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path and is always
// closed and removed, so a failed write leaves any existing file intact.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".expoui-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
