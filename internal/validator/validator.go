package validator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxAuthors is the largest accepted number of authors.
const MaxAuthors = 20

// reservedVendor is the vendor name used by the host's own packages.
const reservedVendor = "core"

var (
	namePattern    = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	timePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	versionPattern = regexp.MustCompile(`^\d+(\.\d){1,3}(-((?:a|b|RC|pl)\d+|dev))?$`)

	// stabilityFlag matches composer stability suffixes such as "@dev".
	stabilityFlag = regexp.MustCompile(`@[A-Za-z]+`)

	// Only the three entities htmlspecialchars_decode handles without quotes.
	entityDecoder = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")
)

// Validator applies the input rules. It holds no state besides the printer
// used to localize messages, so one value may be shared freely.
type Validator struct {
	printer *message.Printer
}

// New returns a Validator producing messages in the best match for tag.
func New(tag language.Tag) *Validator {
	return &Validator{printer: newPrinter(tag)}
}

// NewForLanguage parses a BCP 47 tag and returns a Validator for it. Unknown
// or malformed tags fall back to English.
func NewForLanguage(lang string) *Validator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return New(tag)
}

func (v *Validator) fail(field Field, key, value string) error {
	return &ValidationError{
		Field:   field,
		Key:     key,
		Value:   value,
		Message: v.printer.Sprintf(key),
	}
}

// ValidateNumAuthors accepts a decimal integer between 1 and MaxAuthors.
func (v *Validator) ValidateNumAuthors(value string) (int, error) {
	if value == "" || strings.TrimLeft(value, "0123456789") != "" {
		return 0, v.fail(FieldNumAuthors, KeyInvalidNumAuthors, value)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > MaxAuthors {
		return 0, v.fail(FieldNumAuthors, KeyInvalidNumAuthors, value)
	}
	return n, nil
}

// ValidateExtensionName accepts a lowercase alphanumeric name starting with a letter.
func (v *Validator) ValidateExtensionName(value string) (string, error) {
	if namePattern.MatchString(value) {
		return value, nil
	}
	return "", v.fail(FieldExtensionName, KeyInvalidPackageName, value)
}

// ValidateVendorName applies the extension name rule and rejects the
// reserved vendor "core".
func (v *Validator) ValidateVendorName(value string) (string, error) {
	if value != reservedVendor && namePattern.MatchString(value) {
		return value, nil
	}
	return "", v.fail(FieldVendorName, KeyInvalidVendorName, value)
}

// ValidateDisplayName rejects empty names and names containing a double
// quote, encoded or literal, then decodes &amp;, &lt; and &gt;.
func (v *Validator) ValidateDisplayName(value string) (string, error) {
	if value == "" || strings.Contains(value, "&quot;") || strings.Contains(value, `"`) {
		return "", v.fail(FieldDisplayName, KeyInvalidDisplayName, value)
	}
	return entityDecoder.Replace(value), nil
}

// ValidateExtensionTime accepts a YYYY-MM-DD date. Only the shape is checked.
func (v *Validator) ValidateExtensionTime(value string) (string, error) {
	if timePattern.MatchString(value) {
		return value, nil
	}
	return "", v.fail(FieldExtensionTime, KeyInvalidExtensionTime, value)
}

// ValidateExtensionVersion accepts versions such as 1.0, 1.0.0.1, 1.0.0-dev,
// 1.0.0-a1, 1.0.0-b2, 1.0.0-RC1 and 1.0.0-pl3. Every component after the
// first is a single digit.
func (v *Validator) ValidateExtensionVersion(value string) (string, error) {
	if versionPattern.MatchString(value) {
		return value, nil
	}
	return "", v.fail(FieldExtensionVersion, KeyInvalidExtensionVersion, value)
}

// ValidateRequirement accepts a composer-style version constraint such as
// ">=7.1.3" or "<4.0.0@dev". Stability flags are ignored when parsing.
func (v *Validator) ValidateRequirement(value string) (string, error) {
	stripped := strings.TrimSpace(stabilityFlag.ReplaceAllString(value, ""))
	if stripped == "" {
		return "", v.fail(FieldRequirement, KeyInvalidRequirement, value)
	}
	if _, err := semver.NewConstraint(stripped); err != nil {
		return "", v.fail(FieldRequirement, KeyInvalidRequirement, value)
	}
	return value, nil
}
