// File: tomlcli/document.go
package tomlcli

import "fmt"

// Document is the root of a parsed TOML file. It owns the node tree
// for the duration of one invocation; all mutating operations work
// in place.
type Document struct {
	root *Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{root: NewTable()}
}

// Root returns the document's root table.
func (d *Document) Root() *Node { return d.root }

// Keys returns the document's top-level keys in insertion order.
func (d *Document) Keys() []string {
	return d.root.Keys()
}

// Get resolves a dotted key path and returns the addressed node.
func (d *Document) Get(path string) (*Node, error) {
	return Resolve(d.root, path)
}

// Set writes value at the dotted key path, creating intermediate
// tables as needed. Conflicting non-table intermediates are replaced.
func (d *Document) Set(path string, value *Node) error {
	parent, last, err := EnsurePath(d.root, path)
	if err != nil {
		return err
	}
	parent.SetChild(last, value)
	return nil
}

// Remove deletes the node addressed by the dotted key path.
func (d *Document) Remove(path string) error {
	return RemovePath(d.root, path)
}

// Rename moves the value at oldPath to newPath.
func (d *Document) Rename(oldPath, newPath string) error {
	return Rename(d.root, oldPath, newPath)
}

// Merge deep-merges a patch table into the document. The patch root
// must be a table; replacing the whole document with a scalar is
// rejected rather than producing an unserializable root.
func (d *Document) Merge(patch *Node) error {
	if !patch.IsTable() {
		return fmt.Errorf("%w: bulk update payload must decode to a table, got %s", ErrParse, patch.Kind())
	}
	d.root = Merge(d.root, patch)
	return nil
}

// Flatten returns the leaf-only path/value view of the document.
func (d *Document) Flatten() []FlatEntry {
	return Flatten(d.root)
}

// Search returns "path = value" lines for entries matching pattern.
func (d *Document) Search(pattern string) []string {
	return Search(d.root, pattern)
}
