package packager

import (
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/manifest"
)

// BuildManifest synthesizes composer.json from the input. Authors without
// a name are skipped; require-dev is set only when the build component is
// selected.
func BuildManifest(in *ExtensionInput) *manifest.Composer {
	e := in.Extension
	r := in.Requirements

	doc := &manifest.Composer{
		Name:        in.PackageName(),
		Type:        manifest.Type,
		Description: e.Description,
		Homepage:    e.Homepage,
		Version:     e.Version,
		Time:        e.Time,
		License:     manifest.License,
		Authors:     []manifest.Author{},
		Require:     map[string]string{"php": r.PHPVersion},
		Extra: manifest.Extra{
			DisplayName: e.DisplayName,
			SoftRequire: map[string]string{
				manifest.HostPackage: r.PHPBBVersionMin + "," + r.PHPBBVersionMax,
			},
		},
	}

	if in.Components["build"] {
		doc.RequireDev = map[string]string{manifest.BuildToolPackage: manifest.BuildToolVersion}
	}

	for _, a := range in.Authors {
		if a.Name == "" {
			continue
		}
		doc.Authors = append(doc.Authors, manifest.Author{
			Name:     a.Name,
			Email:    a.Email,
			Homepage: a.Homepage,
			Role:     a.Role,
		})
	}

	return doc
}
