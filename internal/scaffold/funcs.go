package scaffold

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func funcMap() map[string]any {
	return map[string]any{
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"ucfirst": ucfirst,
		"php":     phpString,
		"xml":     xmlText,
		"year":    year,
		"authors": authorNames,
		"version": bareVersion,
	}
}

// year returns the YYYY part of a YYYY-MM-DD date.
func year(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}

// authorNames joins the non-empty author names with ", ".
func authorNames(authors []map[string]string) string {
	var names []string
	for _, a := range authors {
		if a["author_name"] != "" {
			names = append(names, a["author_name"])
		}
	}
	return strings.Join(names, ", ")
}

// bareVersion strips the comparison operator and stability flag from a
// requirement such as ">=3.1.4" or "<3.2.0@dev".
func bareVersion(constraint string) string {
	v := strings.TrimLeft(strings.TrimSpace(constraint), "<>=!~^ ")
	if i := strings.IndexByte(v, '@'); i >= 0 {
		v = v[:i]
	}
	return v
}

// ucfirst upper-cases the first rune.
func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var phpEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// phpString escapes s for use inside a single-quoted PHP string literal.
func phpString(s string) string {
	return phpEscaper.Replace(s)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// xmlText escapes s for XML text and attribute values.
func xmlText(s string) string {
	return xmlEscaper.Replace(s)
}
