// File: tomlcli/flatten.go
package tomlcli

import "strings"

// FlatEntry is one leaf in the flattened view of a document:
// a full dotted path and the node stored there.
type FlatEntry struct {
	Path  string
	Value *Node
}

// Flatten produces the leaf-only view of a node tree in depth-first
// pre-order. Tables recurse; arrays and scalars are emitted at their
// full dotted path. The order follows table insertion order at every
// level and is stable across calls on an unmodified tree.
func Flatten(root *Node) []FlatEntry {
	var entries []FlatEntry
	flattenInto(root, "", &entries)
	return entries
}

func flattenInto(node *Node, prefix string, entries *[]FlatEntry) {
	if !node.IsTable() {
		*entries = append(*entries, FlatEntry{Path: prefix, Value: node})
		return
	}
	for _, key := range node.Keys() {
		child, _ := node.Child(key)
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child.IsTable() {
			flattenInto(child, path, entries)
		} else {
			*entries = append(*entries, FlatEntry{Path: path, Value: child})
		}
	}
}

// Search walks the tree and collects "path = value" lines for every
// entry whose key name or stringified value contains pattern as a
// case-sensitive substring. Matching a table entry does not stop the
// walk; its children are still visited.
func Search(root *Node, pattern string) []string {
	var matches []string
	searchInto(root, pattern, "", &matches)
	return matches
}

func searchInto(node *Node, pattern, prefix string, matches *[]string) {
	if !node.IsTable() {
		if strings.Contains(node.String(), pattern) {
			*matches = append(*matches, prefix+" = "+node.String())
		}
		return
	}
	for _, key := range node.Keys() {
		child, _ := node.Child(key)
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if strings.Contains(key, pattern) || strings.Contains(child.String(), pattern) {
			*matches = append(*matches, path+" = "+child.String())
		}
		if child.IsTable() {
			searchInto(child, pattern, path, matches)
		}
	}
}
