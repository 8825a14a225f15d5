package validator

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func newEnglish() *Validator {
	return New(language.English)
}

func TestValidateNumAuthors(t *testing.T) {
	v := newEnglish()

	for n := 1; n <= MaxAuthors; n++ {
		got, err := v.ValidateNumAuthors(strconv.Itoa(n))
		if err != nil {
			t.Fatalf("ValidateNumAuthors(%d) error: %v", n, err)
		}
		if got != n {
			t.Errorf("ValidateNumAuthors(%d) = %d", n, got)
		}
	}

	invalid := []string{"0", "-1", "21", "100", "", "abc", "1.5", " 3", "3 ", "+2", "99999999999999999999999"}
	for _, value := range invalid {
		t.Run("invalid "+value, func(t *testing.T) {
			_, err := v.ValidateNumAuthors(value)
			assertValidationError(t, err, FieldNumAuthors, KeyInvalidNumAuthors)
		})
	}
}

func TestValidateExtensionName(t *testing.T) {
	v := newEnglish()

	tests := []struct {
		value string
		valid bool
	}{
		{"demo", true},
		{"a", true},
		{"widget2", true},
		{"core", true},
		{"Demo", false},
		{"2demo", false},
		{"my-ext", false},
		{"my_ext", false},
		{"", false},
		{"demo!", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := v.ValidateExtensionName(tt.value)
			if tt.valid {
				if err != nil {
					t.Fatalf("ValidateExtensionName(%q) error: %v", tt.value, err)
				}
				if got != tt.value {
					t.Errorf("ValidateExtensionName(%q) = %q", tt.value, got)
				}
				return
			}
			assertValidationError(t, err, FieldExtensionName, KeyInvalidPackageName)
		})
	}
}

func TestValidateVendorName(t *testing.T) {
	v := newEnglish()

	valid := []string{"acme", "phpbb", "vendor1", "corex", "xcore"}
	for _, value := range valid {
		if _, err := v.ValidateVendorName(value); err != nil {
			t.Errorf("ValidateVendorName(%q) error: %v", value, err)
		}
	}

	invalid := []string{"core", "Acme", "1acme", "ac-me", "", "acme.inc"}
	for _, value := range invalid {
		t.Run(value, func(t *testing.T) {
			_, err := v.ValidateVendorName(value)
			assertValidationError(t, err, FieldVendorName, KeyInvalidVendorName)
		})
	}
}

func TestValidateDisplayName(t *testing.T) {
	v := newEnglish()

	tests := []struct {
		value string
		want  string
	}{
		{"My Extension", "My Extension"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"&lt;b&gt;Bold&lt;/b&gt;", "<b>Bold</b>"},
		{"It&#039;s fine", "It&#039;s fine"},
		{"Ünïcode", "Ünïcode"},
	}
	for _, tt := range tests {
		got, err := v.ValidateDisplayName(tt.value)
		if err != nil {
			t.Fatalf("ValidateDisplayName(%q) error: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("ValidateDisplayName(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}

	invalid := []string{"", "The &quot;Best&quot;", `The "Best"`}
	for _, value := range invalid {
		_, err := v.ValidateDisplayName(value)
		assertValidationError(t, err, FieldDisplayName, KeyInvalidDisplayName)
	}
}

func TestValidateExtensionTime(t *testing.T) {
	v := newEnglish()

	if _, err := v.ValidateExtensionTime("2026-10-19"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	invalid := []string{"2026-1-19", "19-10-2026", "2026/10/19", "", "2026-10-19T00:00:00", "today"}
	for _, value := range invalid {
		_, err := v.ValidateExtensionTime(value)
		assertValidationError(t, err, FieldExtensionTime, KeyInvalidExtensionTime)
	}
}

func TestValidateExtensionVersion(t *testing.T) {
	v := newEnglish()

	valid := []string{
		"1.0",
		"1.0.0",
		"1.2.3-dev",
		"2.0.0.1",
		"1.0-RC1",
		"1.0.0-a1",
		"1.0.0-b12",
		"3.1.4-pl2",
		"10.0.0",
	}
	for _, value := range valid {
		if _, err := v.ValidateExtensionVersion(value); err != nil {
			t.Errorf("ValidateExtensionVersion(%q) error: %v", value, err)
		}
	}

	invalid := []string{
		"v1.0",
		"1",
		"1.2.3-xyz1",
		"1.10.0",
		"1.0.0.0.0",
		"1.0.0-RC",
		"1.0.0-rc1",
		"1.0.0-dev1",
		"1.0.0\n",
		"",
	}
	for _, value := range invalid {
		t.Run(value, func(t *testing.T) {
			_, err := v.ValidateExtensionVersion(value)
			assertValidationError(t, err, FieldExtensionVersion, KeyInvalidExtensionVersion)
		})
	}
}

func TestValidateRequirement(t *testing.T) {
	v := newEnglish()

	valid := []string{">=5.3.3", ">=3.1.4", "<3.2.0@dev", "~7.1", "^8.1 || ^8.2", ">=7.1.3,<8.0"}
	for _, value := range valid {
		got, err := v.ValidateRequirement(value)
		if err != nil {
			t.Errorf("ValidateRequirement(%q) error: %v", value, err)
		}
		if got != value {
			t.Errorf("ValidateRequirement(%q) = %q, want input unchanged", value, got)
		}
	}

	invalid := []string{"", "@dev", "latest", ">=banana"}
	for _, value := range invalid {
		_, err := v.ValidateRequirement(value)
		assertValidationError(t, err, FieldRequirement, KeyInvalidRequirement)
	}
}

func TestLocalizedMessages(t *testing.T) {
	en := NewForLanguage("en")
	de := NewForLanguage("de-DE")
	fallback := NewForLanguage("not a tag!")

	_, enErr := en.ValidateVendorName("core")
	_, deErr := de.ValidateVendorName("core")
	_, fbErr := fallback.ValidateVendorName("core")

	if !strings.Contains(enErr.Error(), "vendor name is invalid") {
		t.Errorf("English message = %q", enErr.Error())
	}
	if !strings.Contains(deErr.Error(), "Herstellername") {
		t.Errorf("German message = %q", deErr.Error())
	}
	if fbErr.Error() != enErr.Error() {
		t.Errorf("fallback message = %q, want English %q", fbErr.Error(), enErr.Error())
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertValidationError(t *testing.T, err error, field Field, key string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected ValidationError for field %s, got nil", field)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if ve.Field != field {
		t.Errorf("Field = %q, want %q", ve.Field, field)
	}
	if ve.Key != key {
		t.Errorf("Key = %q, want %q", ve.Key, key)
	}
	if ve.Message == "" || ve.Message == key {
		t.Errorf("Message = %q, want a translated message", ve.Message)
	}
}
