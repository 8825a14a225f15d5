// Package scaffold renders skeleton file templates. Templates are Go
// text/template files named "<file>.tmpl"; the default set is embedded in
// the binary and a directory on disk can replace it.
package scaffold
