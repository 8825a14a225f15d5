package packager

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/config"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/manifest"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/scaffold"
)

// --- Test Helpers ---

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func defaultPackager(t *testing.T) *Packager {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return New(cat, scaffold.Embedded(), filepath.Join(t.TempDir(), "staging"), WithLogger(quietLogger()))
}

func minimalInput() *ExtensionInput {
	return &ExtensionInput{
		Authors: []Author{{Name: "Ann", Email: "a@b.com", Role: "Developer"}},
		Extension: Extension{
			VendorName:  "acme",
			DisplayName: "Acme Widget",
			Name:        "widget",
			Version:     "1.0.0-dev",
			Time:        time.Now().Format(TimeLayout),
		},
		Requirements: Requirements{
			PHPVersion:      ">=5.3.3",
			PHPBBVersionMin: ">=3.1.4",
			PHPBBVersionMax: "<3.2.0@dev",
		},
		Components: map[string]bool{},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// --- ResolveFiles ---

func TestResolveFilesAlwaysIncludesBaseFiles(t *testing.T) {
	p := defaultPackager(t)

	assert.Equal(t, []string{"license.txt", "README.md"}, p.ResolveFiles(nil))
	assert.Equal(t, []string{"license.txt", "README.md"}, p.ResolveFiles(map[string]bool{"build": false}))

	files := p.ResolveFiles(map[string]bool{"build": true})
	assert.Equal(t, []string{"license.txt", "README.md", "build.xml"}, files)
}

func TestResolveFilesCatalogOrderAndDuplicates(t *testing.T) {
	cat, err := catalog.New([]catalog.Component{
		{Name: "alpha", Files: []string{"shared.yml", "a.php"}},
		{Name: "beta", Dependencies: []string{"alpha"}, Files: []string{"foo.html", "shared.yml"}},
		{Name: "empty"},
	})
	require.NoError(t, err)
	p := New(cat, scaffold.New(fstest.MapFS{}), t.TempDir(), WithLogger(quietLogger()))

	// beta depends on alpha, but alpha is not pulled in.
	assert.Equal(t,
		[]string{"license.txt", "README.md", "foo.html", "shared.yml"},
		p.ResolveFiles(map[string]bool{"beta": true}))

	assert.Equal(t,
		[]string{"license.txt", "README.md", "shared.yml", "a.php", "foo.html", "shared.yml"},
		p.ResolveFiles(map[string]bool{"beta": true, "alpha": true, "empty": true, "unknown": true}))
}

// --- RenderAndWrite ---

func TestRenderAndWriteTrimsOutput(t *testing.T) {
	cat, err := catalog.New(nil)
	require.NoError(t, err)
	engine := scaffold.New(fstest.MapFS{
		"hello.txt.tmpl":     {Data: []byte("  Hello {{.EXTENSION.extension_name}}  \n\n")},
		"sub/dir/empty.tmpl": {Data: []byte("\n\t \n")},
	})
	p := New(cat, engine, t.TempDir(), WithLogger(quietLogger()))

	in := minimalInput()
	in.Extension.Name = "demo"
	dir := t.TempDir()

	require.NoError(t, p.RenderAndWrite(dir, []string{"hello.txt", "sub/dir/empty"}, in.Bindings(cat)))
	assert.Equal(t, "Hello demo\n", readFile(t, filepath.Join(dir, "hello.txt")))
	assert.Equal(t, "\n", readFile(t, filepath.Join(dir, "sub", "dir", "empty")))
}

func TestRenderAndWriteMissingTemplate(t *testing.T) {
	cat, err := catalog.New(nil)
	require.NoError(t, err)
	p := New(cat, scaffold.New(fstest.MapFS{}), t.TempDir(), WithLogger(quietLogger()))

	err = p.RenderAndWrite(t.TempDir(), []string{"missing.php"}, minimalInput().Bindings(cat))
	require.Error(t, err)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "missing.php.tmpl", renderErr.Template)
	assert.True(t, errors.Is(err, scaffold.ErrTemplateNotFound))
}

func TestRenderAndWriteFilesystemError(t *testing.T) {
	cat, err := catalog.New(nil)
	require.NoError(t, err)
	engine := scaffold.New(fstest.MapFS{"a/b.tmpl": {Data: []byte("x")}})
	p := New(cat, engine, t.TempDir(), WithLogger(quietLogger()))

	dir := t.TempDir()
	// A regular file where a directory is needed.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), nil, 0o644))

	err = p.RenderAndWrite(dir, []string{"a/b"}, minimalInput().Bindings(cat))
	var fsErr *FilesystemError
	require.True(t, errors.As(err, &fsErr), "got %v", err)
	assert.Equal(t, "mkdir", fsErr.Op)
}

// --- BuildManifest ---

func TestBuildManifestSkipsNamelessAuthors(t *testing.T) {
	in := minimalInput()
	in.Authors = []Author{
		{Name: "", Email: "ghost@b.com"},
		{Name: "Ann", Email: "a@b.com", Homepage: "", Role: "Developer"},
	}

	doc := BuildManifest(in)
	require.Len(t, doc.Authors, 1)
	assert.Equal(t, manifest.Author{Name: "Ann", Email: "a@b.com", Role: "Developer"}, doc.Authors[0])
}

func TestBuildManifestFields(t *testing.T) {
	in := minimalInput()
	in.Extension.Description = "Adds a widget"
	in.Extension.Homepage = "https://acme.example"

	doc := BuildManifest(in)
	assert.Equal(t, "acme/widget", doc.Name)
	assert.Equal(t, "phpbb-extension", doc.Type)
	assert.Equal(t, "GPL-2.0", doc.License)
	assert.Equal(t, "Adds a widget", doc.Description)
	assert.Equal(t, "https://acme.example", doc.Homepage)
	assert.Equal(t, "1.0.0-dev", doc.Version)
	assert.Equal(t, in.Extension.Time, doc.Time)
	assert.Equal(t, map[string]string{"php": ">=5.3.3"}, doc.Require)
	assert.Equal(t, "Acme Widget", doc.Extra.DisplayName)
	assert.Equal(t, ">=3.1.4,<3.2.0@dev", doc.SoftRequirePHPBB())
}

func TestBuildManifestRequireDev(t *testing.T) {
	in := minimalInput()
	assert.Nil(t, BuildManifest(in).RequireDev)

	in.Components["build"] = false
	assert.Nil(t, BuildManifest(in).RequireDev)

	in.Components["build"] = true
	assert.Equal(t, map[string]string{"phing/phing": "2.4.*"}, BuildManifest(in).RequireDev)
}

func TestBuildManifestNoAuthors(t *testing.T) {
	in := minimalInput()
	in.Authors = []Author{{}}

	data, err := manifest.Marshal(BuildManifest(in))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"authors": [],`)
}

// --- Input ---

func TestBindingsCoverEveryComponent(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	in := minimalInput()
	in.Components["build"] = true
	b := in.Bindings(cat)

	components := b[BindComponent].(map[string]bool)
	assert.Len(t, components, len(cat.Names()))
	assert.True(t, components["build"])
	assert.False(t, components["acp"])

	ext := b[BindExtension].(map[string]string)
	assert.Equal(t, "acme", ext["vendor_name"])
	assert.Equal(t, "widget", ext["extension_name"])

	authors := b[BindAuthors].([]map[string]string)
	require.Len(t, authors, 1)
	assert.Equal(t, "Ann", authors[0]["author_name"])
}

func TestComposerDialogValues(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	d := config.Defaults{
		PHPVersion:       ">=5.3.3",
		PHPBBVersionMin:  ">=3.1.4",
		PHPBBVersionMax:  "<3.2.0@dev",
		ExtensionVersion: "1.0.0-dev",
	}

	in := ComposerDialogValues(d, now)
	assert.Len(t, in.Authors, 1)
	assert.Equal(t, "1.0.0-dev", in.Extension.Version)
	assert.Equal(t, "2024-05-01", in.Extension.Time)
	assert.Equal(t, ">=5.3.3", in.Requirements.PHPVersion)
	assert.Equal(t, ">=3.1.4", in.Requirements.PHPBBVersionMin)
	assert.Equal(t, "<3.2.0@dev", in.Requirements.PHPBBVersionMax)
	assert.Empty(t, in.Extension.VendorName)
}

func TestComponentDialogValues(t *testing.T) {
	p := defaultPackager(t)
	values := p.ComponentDialogValues()

	build, ok := values["build"]
	require.True(t, ok)
	assert.False(t, build.Default)
	assert.Equal(t, []string{"build.xml"}, build.Files)
}
