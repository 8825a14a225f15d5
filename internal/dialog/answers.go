package dialog

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/packager"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/validator"
)

// LoadFile reads an answers file. Its layout mirrors packager.ExtensionInput:
//
//	authors:
//	  - author_name: Ann
//	extension:
//	  vendor_name: acme
//	  extension_name: widget
//	  extension_display_name: Acme Widget
//	components:
//	  build: true
//
// The values are not validated; see Validate.
func LoadFile(path string) (*packager.ExtensionInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers %s: %w", path, err)
	}
	var in packager.ExtensionInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing answers %s: %w", path, err)
	}
	return &in, nil
}

// ApplyDefaults fills unanswered fields from defaults. A missing
// components block selects the catalog defaults; a present one is taken
// as is, with unlisted components left unselected.
func ApplyDefaults(in, defaults *packager.ExtensionInput, cat *catalog.Catalog) {
	setIfEmpty(&in.Extension.Version, defaults.Extension.Version)
	setIfEmpty(&in.Extension.Time, defaults.Extension.Time)
	setIfEmpty(&in.Requirements.PHPVersion, defaults.Requirements.PHPVersion)
	setIfEmpty(&in.Requirements.PHPBBVersionMin, defaults.Requirements.PHPBBVersionMin)
	setIfEmpty(&in.Requirements.PHPBBVersionMax, defaults.Requirements.PHPBBVersionMax)
	if in.Components == nil {
		in.Components = cat.Defaults()
	}
}

func setIfEmpty(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Validate applies the field rules to in, normalizing the display name in
// place. Every failure is reported; the returned error joins them and each
// can be recovered with errors.As. Unknown component names are an error too.
func Validate(v *validator.Validator, in *packager.ExtensionInput, cat *catalog.Catalog) error {
	var errs []error

	if _, err := v.ValidateNumAuthors(strconv.Itoa(len(in.Authors))); err != nil {
		errs = append(errs, err)
	}

	e := &in.Extension
	if _, err := v.ValidateVendorName(e.VendorName); err != nil {
		errs = append(errs, err)
	}
	if name, err := v.ValidateDisplayName(e.DisplayName); err != nil {
		errs = append(errs, err)
	} else {
		e.DisplayName = name
	}
	if _, err := v.ValidateExtensionName(e.Name); err != nil {
		errs = append(errs, err)
	}
	if _, err := v.ValidateExtensionVersion(e.Version); err != nil {
		errs = append(errs, err)
	}
	if _, err := v.ValidateExtensionTime(e.Time); err != nil {
		errs = append(errs, err)
	}

	r := in.Requirements
	for _, req := range []string{r.PHPVersion, r.PHPBBVersionMin, r.PHPBBVersionMax} {
		if _, err := v.ValidateRequirement(req); err != nil {
			errs = append(errs, err)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(in.Components)) {
		if !cat.Has(name) {
			errs = append(errs, fmt.Errorf("unknown component %q", name))
		}
	}

	return errors.Join(errs...)
}
