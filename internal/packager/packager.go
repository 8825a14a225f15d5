package packager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/manifest"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/output"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/scaffold"
)

// BaseFiles are written for every extension, ahead of component files.
var BaseFiles = []string{"license.txt", "README.md"}

// trimSet is stripped from both ends of rendered output.
const trimSet = " \t\n\r\x00\x0b"

// Packager generates extension trees and archives under one staging root.
// A Packager is not safe for concurrent use; give each request its own
// staging root.
type Packager struct {
	catalog *catalog.Catalog
	engine  *scaffold.Engine
	root    string
	logger  *log.Logger
}

// Option configures a Packager.
type Option func(*Packager)

// WithLogger sets the logger. The default is output.Logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Packager) { p.logger = l }
}

// New returns a Packager writing under stagingRoot.
func New(cat *catalog.Catalog, engine *scaffold.Engine, stagingRoot string, opts ...Option) *Packager {
	p := &Packager{
		catalog: cat,
		engine:  engine,
		root:    stagingRoot,
		logger:  output.Logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Root returns the staging root.
func (p *Packager) Root() string { return p.root }

// ExtensionPath returns the directory the extension tree is written to,
// "{root}/{vendor}/{name}".
func (p *Packager) ExtensionPath(in *ExtensionInput) string {
	return filepath.Join(p.root, in.Extension.VendorName, in.Extension.Name)
}

// ArchivePath returns "{root}/{vendor}_{name}-{version}.zip".
func (p *Packager) ArchivePath(in *ExtensionInput) string {
	return filepath.Join(p.root, in.ArchiveName())
}

// ComponentDialogValues returns the default/dependencies/files triple of
// every catalog component, keyed by name.
func (p *Packager) ComponentDialogValues() map[string]catalog.DialogValues {
	return p.catalog.DialogValues()
}

// ResolveFiles returns the template files to render for a selection: the
// base files, then the files of each selected component in catalog order.
// A file contributed by several components appears once per component.
func (p *Packager) ResolveFiles(selected map[string]bool) []string {
	files := append([]string(nil), BaseFiles...)
	for _, comp := range p.catalog.List() {
		if selected[comp.Name] && len(comp.Files) > 0 {
			files = append(files, comp.Files...)
		}
	}
	return files
}

// RenderAndWrite renders each file against bindings and writes it below
// extPath. Output is trimmed and ends with exactly one newline. Files are
// written in order, so a repeated file keeps its last rendering.
func (p *Packager) RenderAndWrite(extPath string, files []string, bindings map[string]any) error {
	for _, file := range files {
		body, err := p.engine.Render(file, bindings)
		if err != nil {
			return &RenderError{Template: scaffold.TemplateName(file), Err: err}
		}

		target := filepath.Join(extPath, filepath.FromSlash(file))
		if err := writeFile(target, []byte(strings.Trim(body, trimSet)+"\n")); err != nil {
			return err
		}
		p.logger.Debug("rendered file", "file", file)
	}
	return nil
}

// Result describes a generated extension tree.
type Result struct {
	Path string
	// Files lists every rendered file id, repeats included.
	Files    []string
	Manifest *manifest.Composer
	// Warnings lists composer.json schema issues. They never fail generation.
	Warnings []string
}

// Written returns the distinct paths in the tree, in first-rendered order,
// followed by composer.json.
func (r *Result) Written() []string {
	seen := make(map[string]bool, len(r.Files))
	var out []string
	for _, f := range r.Files {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return append(out, manifest.FileName)
}

// CreateExtension wipes the staging root and writes the extension tree:
// every resolved template plus composer.json.
func (p *Packager) CreateExtension(in *ExtensionInput) (*Result, error) {
	if err := p.resetRoot(); err != nil {
		return nil, err
	}

	extPath := p.ExtensionPath(in)
	if err := os.MkdirAll(extPath, 0o755); err != nil {
		return nil, &FilesystemError{Op: "mkdir", Path: extPath, Err: err}
	}

	files := p.ResolveFiles(in.Components)
	if err := p.RenderAndWrite(extPath, files, in.Bindings(p.catalog)); err != nil {
		return nil, err
	}

	doc := BuildManifest(in)
	data, err := manifest.Marshal(doc)
	if err != nil {
		return nil, err
	}
	manifestPath := filepath.Join(extPath, manifest.FileName)
	if err := writeFile(manifestPath, data); err != nil {
		return nil, err
	}

	res := &Result{Path: extPath, Files: files, Manifest: doc}
	check, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", manifest.FileName, err)
	}
	for _, issue := range check.Issues {
		res.Warnings = append(res.Warnings, issue.String())
		p.logger.Warn("composer.json schema issue", "path", issue.Path, "message", issue.Message)
	}

	p.logger.Debug("extension tree written", "path", extPath, "count", len(res.Written()))
	return res, nil
}

// Generate runs CreateExtension followed by CreateZip and returns the
// archive path.
func (p *Packager) Generate(in *ExtensionInput) (*Result, string, error) {
	res, err := p.CreateExtension(in)
	if err != nil {
		return nil, "", err
	}
	zipPath, err := p.CreateZip(in)
	if err != nil {
		return res, "", err
	}
	return res, zipPath, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &FilesystemError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}
