// File: tomlcli/node.go
package tomlcli

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Node.
type Kind int

const (
	KindTable Kind = iota
	KindArray
	KindBool
	KindInteger
	KindFloat
	KindString
)

// String returns the kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// tableEntry is one key-value pair inside a table. Entries keep
// insertion order; the index map gives O(1) key lookup.
type tableEntry struct {
	key   string
	value *Node
}

// Node is a value in a TOML document: a table, an array, or a scalar.
// Tables preserve insertion order and have unique keys.
type Node struct {
	kind Kind

	entries []tableEntry
	index   map[string]int

	items []*Node

	b bool
	i int64
	f float64
	s string
}

// NewTable returns an empty table node.
func NewTable() *Node {
	return &Node{kind: KindTable, index: map[string]int{}}
}

// NewArray returns an array node holding the given items.
func NewArray(items ...*Node) *Node {
	return &Node{kind: KindArray, items: items}
}

// Bool returns a boolean scalar node.
func Bool(v bool) *Node { return &Node{kind: KindBool, b: v} }

// Integer returns an integer scalar node.
func Integer(v int64) *Node { return &Node{kind: KindInteger, i: v} }

// Float returns a float scalar node.
func Float(v float64) *Node { return &Node{kind: KindFloat, f: v} }

// String returns a string scalar node.
func String(v string) *Node { return &Node{kind: KindString, s: v} }

// Kind reports the variant held by the node.
func (n *Node) Kind() Kind { return n.kind }

// IsTable reports whether the node is a table.
func (n *Node) IsTable() bool { return n.kind == KindTable }

// BoolValue returns the boolean payload. Valid only for KindBool.
func (n *Node) BoolValue() bool { return n.b }

// IntValue returns the integer payload. Valid only for KindInteger.
func (n *Node) IntValue() int64 { return n.i }

// FloatValue returns the float payload. Valid only for KindFloat.
func (n *Node) FloatValue() float64 { return n.f }

// StringValue returns the string payload. Valid only for KindString.
func (n *Node) StringValue() string { return n.s }

// Len returns the number of table entries or array items.
func (n *Node) Len() int {
	switch n.kind {
	case KindTable:
		return len(n.entries)
	case KindArray:
		return len(n.items)
	default:
		return 0
	}
}

// Keys returns the table's keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.key
	}
	return keys
}

// Child returns the value stored under key in a table.
func (n *Node) Child(key string) (*Node, bool) {
	if n.kind != KindTable {
		return nil, false
	}
	idx, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[idx].value, true
}

// SetChild inserts or replaces a table entry. Replacing keeps the
// key's original position; inserting appends.
func (n *Node) SetChild(key string, value *Node) {
	if n.index == nil {
		n.index = map[string]int{}
	}
	if idx, ok := n.index[key]; ok {
		n.entries[idx].value = value
		return
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, tableEntry{key: key, value: value})
}

// DeleteChild removes a table entry. It reports whether the key existed.
func (n *Node) DeleteChild(key string) bool {
	idx, ok := n.index[key]
	if !ok {
		return false
	}
	n.entries = append(n.entries[:idx], n.entries[idx+1:]...)
	delete(n.index, key)
	for i := idx; i < len(n.entries); i++ {
		n.index[n.entries[i].key] = i
	}
	return true
}

// Items returns the array's elements.
func (n *Node) Items() []*Node { return n.items }

// Append adds an element to an array node.
func (n *Node) Append(items ...*Node) {
	n.items = append(n.items, items...)
}

// Equal reports deep structural equality of two nodes.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindTable:
		if len(n.entries) != len(other.entries) {
			return false
		}
		for i, e := range n.entries {
			oe := other.entries[i]
			if e.key != oe.key || !e.value.Equal(oe.value) {
				return false
			}
		}
		return true
	case KindArray:
		if len(n.items) != len(other.items) {
			return false
		}
		for i, item := range n.items {
			if !item.Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindBool:
		return n.b == other.b
	case KindInteger:
		return n.i == other.i
	case KindFloat:
		return n.f == other.f
	case KindString:
		return n.s == other.s
	default:
		return false
	}
}

// String renders the display form of a node: strings are raw
// (unquoted), booleans are the literals true/false, tables and arrays
// use TOML literal syntax.
func (n *Node) String() string {
	if n.kind == KindString {
		return n.s
	}
	return n.Literal()
}

// Literal renders the node in TOML literal syntax, with strings quoted.
func (n *Node) Literal() string {
	var b strings.Builder
	n.writeLiteral(&b)
	return b.String()
}

func (n *Node) writeLiteral(b *strings.Builder) {
	switch n.kind {
	case KindTable:
		b.WriteByte('{')
		for i, e := range n.entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(encodeKey(e.key))
			b.WriteString(" = ")
			e.value.writeLiteral(b)
		}
		b.WriteByte('}')
	case KindArray:
		b.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.writeLiteral(b)
		}
		b.WriteByte(']')
	case KindBool:
		b.WriteString(strconv.FormatBool(n.b))
	case KindInteger:
		b.WriteString(strconv.FormatInt(n.i, 10))
	case KindFloat:
		b.WriteString(formatFloat(n.f))
	case KindString:
		b.WriteString(quoteString(n.s))
	}
}

// quoteString renders s as a TOML basic string. strconv.Quote cannot
// serve here: it emits Go escapes like \x01 that TOML rejects, so
// control characters use \uXXXX instead.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat renders a float so it re-parses as a float: integral
// values keep a trailing ".0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	switch s {
	case "+Inf":
		return "inf"
	case "-Inf":
		return "-inf"
	case "NaN":
		return "nan"
	}
	return s
}
