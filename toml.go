// File: tomlcli/toml.go
package tomlcli

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Parse decodes TOML text into a Document. Decoding goes through
// BurntSushi into a generic map; key insertion order is reconstructed
// from the decoder metadata so the document keeps file order.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	order := newKeyOrder(md.Keys())
	return &Document{root: tableFromMap(raw, nil, order)}, nil
}

// keyOrder records, per parent path, the order in which child keys
// appeared in the source text.
type keyOrder map[string][]string

func newKeyOrder(keys []toml.Key) keyOrder {
	order := make(keyOrder)
	seen := make(map[string]bool)
	for _, key := range keys {
		parent := orderKey(key[:len(key)-1])
		child := key[len(key)-1]
		full := parent + "\x00" + child
		if !seen[full] {
			seen[full] = true
			order[parent] = append(order[parent], child)
		}
	}
	return order
}

func orderKey(path []string) string {
	return strings.Join(path, "\x00")
}

// tableFromMap converts a decoded map into an ordered table node,
// laying keys out in source order first and any stragglers in sorted
// order after (stragglers only occur for keys the metadata does not
// report, such as keys inside inline values).
func tableFromMap(m map[string]any, path []string, order keyOrder) *Node {
	table := NewTable()
	used := make(map[string]bool, len(m))
	for _, key := range order[orderKey(path)] {
		value, ok := m[key]
		if !ok {
			continue
		}
		used[key] = true
		table.SetChild(key, nodeFromValue(value, append(path, key), order))
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if used[key] {
			continue
		}
		table.SetChild(key, nodeFromValue(m[key], append(path, key), order))
	}
	return table
}

func nodeFromValue(v any, path []string, order keyOrder) *Node {
	switch value := v.(type) {
	case map[string]any:
		return tableFromMap(value, path, order)
	case []map[string]any:
		arr := NewArray()
		for _, elem := range value {
			arr.Append(tableFromMap(elem, path, order))
		}
		return arr
	case []any:
		arr := NewArray()
		for _, elem := range value {
			arr.Append(nodeFromValue(elem, path, order))
		}
		return arr
	case bool:
		return Bool(value)
	case int64:
		return Integer(value)
	case int:
		return Integer(int64(value))
	case float64:
		return Float(value)
	case string:
		return String(value)
	case time.Time:
		// Datetimes fall outside the node model and round-trip as strings.
		return String(value.Format(time.RFC3339))
	default:
		return String(fmt.Sprintf("%v", value))
	}
}

// Encode renders the document back to TOML text. Tables are written
// in insertion order; within each table, non-table values come first,
// then subtables as [sections] and table arrays as [[sections]].
func Encode(d *Document) []byte {
	var b strings.Builder
	writeTable(&b, d.root, nil)
	return []byte(b.String())
}

func writeTable(b *strings.Builder, table *Node, path []string) {
	// Scalars and plain arrays belong to the current section and must
	// precede any subsection header.
	for _, key := range table.Keys() {
		child, _ := table.Child(key)
		if child.IsTable() || isTableArray(child) {
			continue
		}
		b.WriteString(encodeKey(key))
		b.WriteString(" = ")
		b.WriteString(child.Literal())
		b.WriteByte('\n')
	}

	for _, key := range table.Keys() {
		child, _ := table.Child(key)
		childPath := append(append([]string{}, path...), key)
		switch {
		case child.IsTable():
			writeSectionHeader(b, childPath, false)
			writeTable(b, child, childPath)
		case isTableArray(child):
			for _, elem := range child.Items() {
				writeSectionHeader(b, childPath, true)
				writeTable(b, elem, childPath)
			}
		}
	}
}

func writeSectionHeader(b *strings.Builder, path []string, array bool) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	opener, closer := "[", "]"
	if array {
		opener, closer = "[[", "]]"
	}
	b.WriteString(opener)
	for i, seg := range path {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(encodeKey(seg))
	}
	b.WriteString(closer)
	b.WriteByte('\n')
}

// isTableArray reports whether an array should be encoded as a
// [[section]] list, which requires every element to be a table.
func isTableArray(n *Node) bool {
	if n.Kind() != KindArray || n.Len() == 0 {
		return false
	}
	for _, item := range n.Items() {
		if !item.IsTable() {
			return false
		}
	}
	return true
}

// encodeKey writes a key bare when possible, quoted otherwise.
func encodeKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return quoteString(key)
}

func isBareKey(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !isAlpha(r) && !isNumeric(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// isAlpha checks if a character is a letter (A-Z, a-z)
func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNumeric checks if a character is a digit (0-9)
func isNumeric(c rune) bool {
	return c >= '0' && c <= '9'
}
