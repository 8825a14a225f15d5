package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/template"
)

//go:embed all:skeleton
var skeletonFS embed.FS

// TemplateSuffix is appended to a file id to obtain its template name.
const TemplateSuffix = ".tmpl"

// ErrTemplateNotFound is returned when no template exists for a file id.
var ErrTemplateNotFound = errors.New("template not found")

// Engine renders templates from a file system.
type Engine struct {
	fsys  fs.FS
	funcs template.FuncMap
}

// New returns an engine reading templates from fsys.
func New(fsys fs.FS) *Engine {
	return &Engine{fsys: fsys, funcs: funcMap()}
}

// Embedded returns an engine over the built-in skeleton templates.
func Embedded() *Engine {
	sub, err := fs.Sub(skeletonFS, "skeleton")
	if err != nil {
		// fs.Sub only fails for invalid paths; "skeleton" is a constant.
		panic(err)
	}
	return New(sub)
}

// FromDir returns an engine reading templates from a directory on disk.
func FromDir(dir string) (*Engine, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

// TemplateName returns the template name for a file id.
func TemplateName(file string) string {
	return file + TemplateSuffix
}

// Exists reports whether a template exists for file.
func (e *Engine) Exists(file string) bool {
	info, err := fs.Stat(e.fsys, TemplateName(file))
	return err == nil && !info.IsDir()
}

// Render executes the template for file against vars. A map key absent
// from vars reads as the zero value, so a component flag missing from
// COMPONENT is false.
func (e *Engine) Render(file string, vars map[string]any) (string, error) {
	name := TemplateName(file)
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid template path %q", name)
	}

	src, err := fs.ReadFile(e.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", name, ErrTemplateNotFound)
		}
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(path.Base(name)).
		Funcs(e.funcs).
		Option("missingkey=zero").
		Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// List returns the file ids of every template, in lexical order.
func (e *Engine) List() ([]string, error) {
	var files []string
	err := fs.WalkDir(e.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, TemplateSuffix) {
			return nil
		}
		files = append(files, strings.TrimSuffix(p, TemplateSuffix))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return files, nil
}
