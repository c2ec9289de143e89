// File: tomlcli/patch.go
package tomlcli

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParsePatch decodes a bulk update payload into a node tree. Payloads
// are JSON in the common case; decoding goes through the YAML parser
// (JSON is a YAML subset), which also admits YAML payloads and, unlike
// a generic map decode, preserves key order for deterministic merges.
func ParsePatch(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 && root.Kind == yaml.DocumentNode {
		return nil, fmt.Errorf("%w: empty bulk update payload", ErrParse)
	}
	return nodeFromYAML(&root)
}

func nodeFromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		return nodeFromYAML(y.Content[0])

	case yaml.AliasNode:
		return nodeFromYAML(y.Alias)

	case yaml.MappingNode:
		table := NewTable()
		for i := 0; i+1 < len(y.Content); i += 2 {
			keyNode, valueNode := y.Content[i], y.Content[i+1]
			value, err := nodeFromYAML(valueNode)
			if err != nil {
				return nil, err
			}
			table.SetChild(keyNode.Value, value)
		}
		return table, nil

	case yaml.SequenceNode:
		arr := NewArray()
		for _, item := range y.Content {
			value, err := nodeFromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Append(value)
		}
		return arr, nil

	case yaml.ScalarNode:
		return scalarFromYAML(y)

	default:
		return nil, fmt.Errorf("%w: unsupported payload node kind %d", ErrParse, y.Kind)
	}
}

func scalarFromYAML(y *yaml.Node) (*Node, error) {
	switch y.Tag {
	case "!!bool":
		b, err := strconv.ParseBool(y.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid boolean %q in payload", ErrParse, y.Value)
		}
		return Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(y.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer %q in payload", ErrParse, y.Value)
		}
		return Integer(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(y.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid float %q in payload", ErrParse, y.Value)
		}
		return Float(f), nil
	case "!!null":
		// TOML has no null; a null payload value cannot be represented.
		return nil, fmt.Errorf("%w: null values are not representable in a TOML document", ErrParse)
	default:
		return String(y.Value), nil
	}
}
