// File: tomlcli/errors.go
package tomlcli

import "errors"

var (
	// ErrPathNotFound indicates a referenced key path segment does not exist.
	ErrPathNotFound = errors.New("key path not found")

	// ErrNotATable indicates an intermediate path segment resolved to a
	// non-table node while more segments remained.
	ErrNotATable = errors.New("path segment is not a table")

	// ErrEmptyPath indicates a key path with no usable segments.
	ErrEmptyPath = errors.New("empty key path")

	// ErrParse indicates a malformed document or bulk update payload.
	ErrParse = errors.New("parse error")
)
