package validator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	KeyInvalidNumAuthors       = "SKELETON_INVALID_NUM_AUTHORS"
	KeyInvalidPackageName      = "SKELETON_INVALID_PACKAGE_NAME"
	KeyInvalidVendorName       = "SKELETON_INVALID_VENDOR_NAME"
	KeyInvalidDisplayName      = "SKELETON_INVALID_DISPLAY_NAME"
	KeyInvalidExtensionTime    = "SKELETON_INVALID_EXTENSION_TIME"
	KeyInvalidExtensionVersion = "SKELETON_INVALID_EXTENSION_VERSION"
	KeyInvalidRequirement      = "SKELETON_INVALID_REQUIREMENT"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeyInvalidNumAuthors:       "Invalid number of authors. Please enter a number between 1 and 20.",
		KeyInvalidPackageName:      "The extension name is invalid. It may only contain lowercase letters and numbers and must start with a letter.",
		KeyInvalidVendorName:       `The vendor name is invalid. It may only contain lowercase letters and numbers, must start with a letter and must not be "core".`,
		KeyInvalidDisplayName:      "The display name is invalid. It must not be empty or contain double quotes.",
		KeyInvalidExtensionTime:    "The date is invalid. Please use the format YYYY-MM-DD.",
		KeyInvalidExtensionVersion: "The version is invalid. Please use a version such as 1.0.0, 1.0.0-dev or 1.0.0-RC1.",
		KeyInvalidRequirement:      "The version constraint is invalid. Please use a constraint such as >=7.1.3 or <4.0.0@dev.",
	},
	language.German: {
		KeyInvalidNumAuthors:       "Ungültige Anzahl an Autoren. Bitte gib eine Zahl zwischen 1 und 20 ein.",
		KeyInvalidPackageName:      "Der Name der Erweiterung ist ungültig. Er darf nur Kleinbuchstaben und Ziffern enthalten und muss mit einem Buchstaben beginnen.",
		KeyInvalidVendorName:       `Der Herstellername ist ungültig. Er darf nur Kleinbuchstaben und Ziffern enthalten, muss mit einem Buchstaben beginnen und darf nicht „core“ lauten.`,
		KeyInvalidDisplayName:      "Der Anzeigename ist ungültig. Er darf nicht leer sein und keine doppelten Anführungszeichen enthalten.",
		KeyInvalidExtensionTime:    "Das Datum ist ungültig. Bitte verwende das Format JJJJ-MM-TT.",
		KeyInvalidExtensionVersion: "Die Version ist ungültig. Bitte verwende eine Version wie 1.0.0, 1.0.0-dev oder 1.0.0-RC1.",
		KeyInvalidRequirement:      "Die Versionsbedingung ist ungültig. Bitte verwende eine Bedingung wie >=7.1.3 oder <4.0.0@dev.",
	},
}

var (
	messages  = catalog.NewBuilder(catalog.Fallback(language.English))
	supported = []language.Tag{language.English, language.German}
	matcher   = language.NewMatcher(supported)
)

func init() {
	for tag, entries := range translations {
		for key, msg := range entries {
			// Keys and messages are static; SetString only fails on malformed tags.
			_ = messages.SetString(tag, key, msg)
		}
	}
}

// newPrinter returns a printer for the best supported match of tag.
func newPrinter(tag language.Tag) *message.Printer {
	_, idx, _ := matcher.Match(tag)
	return message.NewPrinter(supported[idx], message.Catalog(messages))
}
