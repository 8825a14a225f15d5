package cli

import (
	"fmt"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/config"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/output"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/scaffold"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/validator"
)

// firstSet returns the first non-empty value.
func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadCatalog returns the catalog from path, the configured catalog file,
// or the embedded catalog, in that order.
func loadCatalog(path string) (*catalog.Catalog, error) {
	path = firstSet(path, config.CatalogFile())
	if path == "" {
		return catalog.Default()
	}
	output.Debug("loading catalog", "path", path)
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// loadEngine returns a template engine over dir, the configured templates
// directory, or the embedded templates, in that order.
func loadEngine(dir string) (*scaffold.Engine, error) {
	dir = firstSet(dir, config.TemplatesDir())
	if dir == "" {
		return scaffold.Embedded(), nil
	}
	output.Debug("using template directory", "path", dir)
	return scaffold.FromDir(dir)
}

func newValidator() *validator.Validator {
	return validator.NewForLanguage(config.Language())
}
