// File: tomlcli/path.go
package tomlcli

import (
	"fmt"
	"strings"
)

// SplitKeyPath splits a dotted key path into segments. Surrounding
// whitespace is trimmed and empty segments are discarded, so
// "a..b" and " a.b " both yield ["a" "b"].
func SplitKeyPath(path string) []string {
	parts := strings.Split(path, ".")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if seg := strings.TrimSpace(part); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// Resolve walks a dotted key path from root and returns the addressed
// node. Every intermediate segment must resolve to a table.
func Resolve(root *Node, path string) (*Node, error) {
	segments := SplitKeyPath(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPath, path)
	}

	current := root
	for _, seg := range segments {
		if !current.IsTable() {
			return nil, fmt.Errorf("%w: segment %q in path %q addresses a %s", ErrNotATable, seg, path, current.Kind())
		}
		child, ok := current.Child(seg)
		if !ok {
			return nil, fmt.Errorf("%w: key %q does not exist in path %q", ErrPathNotFound, seg, path)
		}
		current = child
	}
	return current, nil
}

// EnsurePath walks all but the last segment of a dotted key path,
// creating intermediate tables as needed, and returns the direct
// parent table together with the final segment name.
//
// The walk is constructive: an intermediate segment that exists but is
// not a table is silently replaced with a fresh empty table, discarding
// its previous value. This matches the write-path semantics of set.
func EnsurePath(root *Node, path string) (*Node, string, error) {
	segments := SplitKeyPath(path)
	if len(segments) == 0 {
		return nil, "", fmt.Errorf("%w: %q", ErrEmptyPath, path)
	}

	current := root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := current.Child(seg)
		if !ok || !child.IsTable() {
			child = NewTable()
			current.SetChild(seg, child)
		}
		current = child
	}
	return current, segments[len(segments)-1], nil
}

// RemovePath deletes the node addressed by a dotted key path. Unlike
// EnsurePath, the walk to the parent is validating: a missing or
// non-table intermediate segment is an error.
func RemovePath(root *Node, path string) error {
	segments := SplitKeyPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyPath, path)
	}

	current := root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := current.Child(seg)
		if !ok {
			return fmt.Errorf("%w: cannot remove %q, missing segment %q", ErrPathNotFound, path, seg)
		}
		if !child.IsTable() {
			return fmt.Errorf("%w: cannot remove %q, segment %q addresses a %s", ErrNotATable, path, seg, child.Kind())
		}
		current = child
	}

	last := segments[len(segments)-1]
	if !current.DeleteChild(last) {
		return fmt.Errorf("%w: key %q does not exist in path %q", ErrPathNotFound, last, path)
	}
	return nil
}

// Rename moves the value at oldPath to newPath. The operation is a
// read-remove-set composition and is not transactional: if the set
// step fails after the removal, the value is gone from the old
// location and absent from the new one.
func Rename(root *Node, oldPath, newPath string) error {
	value, err := Resolve(root, oldPath)
	if err != nil {
		return err
	}
	if err := RemovePath(root, oldPath); err != nil {
		return err
	}
	parent, last, err := EnsurePath(root, newPath)
	if err != nil {
		return err
	}
	parent.SetChild(last, value)
	return nil
}
