// File: tomlcli/export.go
package tomlcli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ExportFormat selects a rendering for the flattened document view.
type ExportFormat string

const (
	FormatPlaintext ExportFormat = "plaintext"
	FormatCSV       ExportFormat = "csv"
	FormatJSON      ExportFormat = "json"
	FormatTable     ExportFormat = "table"
)

// ParseExportFormat validates a format name from the command line.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatPlaintext, FormatCSV, FormatJSON, FormatTable:
		return ExportFormat(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want plaintext, csv, json or table)", s)
	}
}

// ExportOptions tunes rendering. Colorize only affects the table
// format and should be enabled when writing to a terminal.
type ExportOptions struct {
	Colorize bool
}

// Export renders the document in the requested format to w. All
// formats except json work from the flattened path/value view; json
// emits the nested structure.
func Export(w io.Writer, doc *Document, format ExportFormat, opts ExportOptions) error {
	switch format {
	case FormatPlaintext:
		return exportPlaintext(w, doc.Flatten())
	case FormatCSV:
		return exportCSV(w, doc.Flatten())
	case FormatJSON:
		return exportJSON(w, doc)
	case FormatTable:
		return exportTable(w, doc.Flatten(), opts.Colorize)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func exportPlaintext(w io.Writer, entries []FlatEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Path, e.Value.String()); err != nil {
			return err
		}
	}
	return nil
}

func exportCSV(w io.Writer, entries []FlatEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"key", "value"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Path, e.Value.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportJSON(w io.Writer, doc *Document) error {
	data, err := json.Marshal(doc.Root())
	if err != nil {
		return err
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return err
	}
	indented.WriteByte('\n')
	_, err = w.Write(indented.Bytes())
	return err
}

// MarshalJSON emits the node as JSON with table keys in insertion
// order.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case KindTable:
		var b bytes.Buffer
		b.WriteByte('{')
		for i, e := range n.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			key, err := json.Marshal(e.key)
			if err != nil {
				return nil, err
			}
			b.Write(key)
			b.WriteByte(':')
			value, err := e.value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			b.Write(value)
		}
		b.WriteByte('}')
		return b.Bytes(), nil
	case KindArray:
		var b bytes.Buffer
		b.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				b.WriteByte(',')
			}
			value, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			b.Write(value)
		}
		b.WriteByte(']')
		return b.Bytes(), nil
	default:
		return json.Marshal(n.Interface())
	}
}

// exportTable draws a two-column box table, in the style of the usual
// terminal table renderers.
func exportTable(w io.Writer, entries []FlatEntry, colorize bool) error {
	const title = "TOML Content"
	keyHeader, valueHeader := "Key", "Value"

	rows := make([][2]string, len(entries))
	keyWidth, valueWidth := len(keyHeader), len(valueHeader)
	for i, e := range entries {
		value := e.Value.Literal()
		rows[i] = [2]string{e.Path, value}
		if n := len([]rune(e.Path)); n > keyWidth {
			keyWidth = n
		}
		if n := len([]rune(value)); n > valueWidth {
			valueWidth = n
		}
	}

	keyPaint := func(s string) string { return s }
	valuePaint := keyPaint
	if colorize {
		keyColor := color.New(color.FgCyan)
		valueColor := color.New(color.FgMagenta)
		keyPaint = func(s string) string { return keyColor.Sprint(s) }
		valuePaint = func(s string) string { return valueColor.Sprint(s) }
	}

	var b strings.Builder
	totalWidth := keyWidth + valueWidth + 7 // borders and padding
	writeCentered(&b, title, totalWidth)

	b.WriteString("┏━" + strings.Repeat("━", keyWidth) + "━┳━" + strings.Repeat("━", valueWidth) + "━┓\n")
	b.WriteString("┃ " + pad(keyHeader, keyWidth) + " ┃ " + pad(valueHeader, valueWidth) + " ┃\n")
	b.WriteString("┡━" + strings.Repeat("━", keyWidth) + "━╇━" + strings.Repeat("━", valueWidth) + "━┩\n")
	for _, row := range rows {
		b.WriteString("│ " + keyPaint(pad(row[0], keyWidth)) + " │ " + valuePaint(pad(row[1], valueWidth)) + " │\n")
	}
	b.WriteString("└─" + strings.Repeat("─", keyWidth) + "─┴─" + strings.Repeat("─", valueWidth) + "─┘\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func writeCentered(b *strings.Builder, s string, width int) {
	if gap := (width - len([]rune(s))) / 2; gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
	}
	b.WriteString(s)
	b.WriteByte('\n')
}
