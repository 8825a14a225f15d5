package packager

import (
	"fmt"
	"maps"
	"time"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/config"
)

// Template binding names.
const (
	BindComponent    = "COMPONENT"
	BindExtension    = "EXTENSION"
	BindRequirements = "REQUIREMENTS"
	BindAuthors      = "AUTHORS"
)

// TimeLayout is the layout of Extension.Time.
const TimeLayout = "2006-01-02"

// Author is one extension author. Authors with an empty name are kept in
// the template bindings but left out of composer.json.
type Author struct {
	Name     string `yaml:"author_name" json:"author_name"`
	Email    string `yaml:"author_email" json:"author_email"`
	Homepage string `yaml:"author_homepage" json:"author_homepage"`
	Role     string `yaml:"author_role" json:"author_role"`
}

// Extension holds the package identity.
type Extension struct {
	VendorName  string `yaml:"vendor_name" json:"vendor_name"`
	DisplayName string `yaml:"extension_display_name" json:"extension_display_name"`
	Name        string `yaml:"extension_name" json:"extension_name"`
	Description string `yaml:"extension_description" json:"extension_description"`
	Version     string `yaml:"extension_version" json:"extension_version"`
	Homepage    string `yaml:"extension_homepage" json:"extension_homepage"`
	Time        string `yaml:"extension_time" json:"extension_time"`
}

// Requirements holds the version constraints.
type Requirements struct {
	PHPVersion      string `yaml:"php_version" json:"php_version"`
	PHPBBVersionMin string `yaml:"phpbb_version_min" json:"phpbb_version_min"`
	PHPBBVersionMax string `yaml:"phpbb_version_max" json:"phpbb_version_max"`
}

// ExtensionInput is the validated description of what to generate.
type ExtensionInput struct {
	Authors      []Author        `yaml:"authors" json:"authors"`
	Extension    Extension       `yaml:"extension" json:"extension"`
	Requirements Requirements    `yaml:"requirements" json:"requirements"`
	Components   map[string]bool `yaml:"components" json:"components"`
}

// PackageName returns "vendor/name".
func (in *ExtensionInput) PackageName() string {
	return in.Extension.VendorName + "/" + in.Extension.Name
}

// ArchiveName returns the zip file name, "{vendor}_{name}-{version}.zip".
func (in *ExtensionInput) ArchiveName() string {
	return fmt.Sprintf("%s_%s-%s.zip", in.Extension.VendorName, in.Extension.Name, in.Extension.Version)
}

// Bindings returns the template variables. COMPONENT carries an entry for
// every catalog component. Templates testing a name outside the catalog
// read it as false.
func (in *ExtensionInput) Bindings(cat *catalog.Catalog) map[string]any {
	components := make(map[string]bool, len(in.Components))
	for _, name := range cat.Names() {
		components[name] = false
	}
	maps.Copy(components, in.Components)

	authors := make([]map[string]string, len(in.Authors))
	for i, a := range in.Authors {
		authors[i] = map[string]string{
			"author_name":     a.Name,
			"author_email":    a.Email,
			"author_homepage": a.Homepage,
			"author_role":     a.Role,
		}
	}

	e := in.Extension
	r := in.Requirements
	return map[string]any{
		BindComponent: components,
		BindExtension: map[string]string{
			"vendor_name":            e.VendorName,
			"extension_display_name": e.DisplayName,
			"extension_name":         e.Name,
			"extension_description":  e.Description,
			"extension_version":      e.Version,
			"extension_homepage":     e.Homepage,
			"extension_time":         e.Time,
		},
		BindRequirements: map[string]string{
			"php_version":       r.PHPVersion,
			"phpbb_version_min": r.PHPBBVersionMin,
			"phpbb_version_max": r.PHPBBVersionMax,
		},
		BindAuthors: authors,
	}
}

// ComposerDialogValues returns the values the metadata form starts from:
// one blank author, the configured version defaults and today's date.
func ComposerDialogValues(d config.Defaults, now time.Time) *ExtensionInput {
	return &ExtensionInput{
		Authors: []Author{{}},
		Extension: Extension{
			Version: d.ExtensionVersion,
			Time:    now.Format(TimeLayout),
		},
		Requirements: Requirements{
			PHPVersion:      d.PHPVersion,
			PHPBBVersionMin: d.PHPBBVersionMin,
			PHPBBVersionMax: d.PHPBBVersionMax,
		},
		Components: map[string]bool{},
	}
}
