// File: tomlcli/decode.go
package tomlcli

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the subtree at basePath into the target struct or map
// pointer. An empty basePath scans the whole document. Field mapping
// uses `toml` tags with weakly typed conversions.
func (d *Document) Scan(basePath string, target any) error {
	node := d.root
	if basePath != "" {
		resolved, err := Resolve(d.root, basePath)
		if err != nil {
			return err
		}
		node = resolved
	}
	if !node.IsTable() {
		return fmt.Errorf("%w: path %q does not address a table", ErrNotATable, basePath)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(node.Interface()); err != nil {
		return fmt.Errorf("failed to decode subtree %q: %w", basePath, err)
	}
	return nil
}

// Interface converts the node tree to generic Go values: tables become
// map[string]any, arrays []any, scalars their native types. Table key
// order is lost; use Flatten or Keys where order matters.
func (n *Node) Interface() any {
	switch n.kind {
	case KindTable:
		m := make(map[string]any, len(n.entries))
		for _, e := range n.entries {
			m[e.key] = e.value.Interface()
		}
		return m
	case KindArray:
		items := make([]any, len(n.items))
		for i, item := range n.items {
			items[i] = item.Interface()
		}
		return items
	case KindBool:
		return n.b
	case KindInteger:
		return n.i
	case KindFloat:
		return n.f
	case KindString:
		return n.s
	default:
		return nil
	}
}
