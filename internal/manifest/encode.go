package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// entityDecoder turns angle brackets that arrived HTML-escaped back into
// literal characters.
var entityDecoder = strings.NewReplacer("&lt;", "<", "&gt;", ">")

// Marshal encodes c the way PHP's json_encode does with JSON_PRETTY_PRINT
// and JSON_UNESCAPED_SLASHES: four-space indent, unescaped slashes, and
// non-ASCII characters written as \uXXXX escapes. The output has no
// trailing newline.
func Marshal(c *Composer) ([]byte, error) {
	doc := *c
	if doc.Authors == nil {
		doc.Authors = []Author{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}

	out := escapeNonASCII(bytes.TrimRight(buf.Bytes(), "\n"))
	return []byte(entityDecoder.Replace(string(out))), nil
}

// escapeNonASCII rewrites every non-ASCII rune as a JSON \u escape, using
// a surrogate pair outside the basic multilingual plane. The input is
// encoder output, so non-ASCII runes only occur inside string literals.
func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r < utf8.RuneSelf {
			out.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&out, `\u%04x`, r)
	}
	return out.Bytes()
}

// Parse decodes a composer.json document.
func Parse(data []byte) (*Composer, error) {
	var c Composer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &c, nil
}

// ParseFile reads and decodes a composer.json file.
func ParseFile(path string) (*Composer, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
