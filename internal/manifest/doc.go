// Package manifest handles the composer.json package descriptor of a
// generated phpBB extension. It encodes the document byte-compatibly with
// PHP's json_encode(JSON_PRETTY_PRINT|JSON_UNESCAPED_SLASHES), parses it
// back, and validates it against an embedded JSON Schema.
package manifest
