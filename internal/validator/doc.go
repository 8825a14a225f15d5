// Package validator implements the field-level rules applied to raw form
// input before an extension skeleton is generated. Each rule returns the
// normalized value or a *ValidationError carrying a message key and the
// message localized through golang.org/x/text.
package validator
