package validator

import "fmt"

// Field identifies the input field a rule applies to.
type Field string

// Validated fields.
const (
	FieldNumAuthors       Field = "num_authors"
	FieldExtensionName    Field = "extension_name"
	FieldVendorName       Field = "vendor_name"
	FieldDisplayName      Field = "extension_display_name"
	FieldExtensionTime    Field = "extension_time"
	FieldExtensionVersion Field = "extension_version"
	FieldRequirement      Field = "requirement"
)

// ValidationError reports a value rejected by a rule. It is always
// recoverable: the caller re-collects the field and tries again.
type ValidationError struct {
	Field   Field
	Key     string // message key, e.g. SKELETON_INVALID_VENDOR_NAME
	Value   string
	Message string // localized message
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: invalid value %q", e.Field, e.Value)
	}
	return e.Message
}
