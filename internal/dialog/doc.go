// Package dialog collects extension input. The interactive form asks one
// field at a time on a reader/writer pair and re-asks a field whenever the
// validator rejects it. Input can also come from a YAML answers file,
// checked with the same rules.
package dialog
