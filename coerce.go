// File: tomlcli/coerce.go
package tomlcli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Coerce converts a raw command-line argument into a typed node.
// Rules apply in order, first match wins:
//
//  1. "true"/"false" (trimmed, case-insensitive) -> bool
//  2. leading '{' or '[' -> inline table / array literal; a literal
//     that fails to parse falls through silently
//  3. base-10 integer -> integer
//  4. float -> float
//  5. anything else -> string, carrying the raw input unmodified
//
// The ordering is load-bearing: boolean and structured literals must be
// detected before the numeric attempts so "true" never degrades to a
// bare string and "[1,2]" never hits the number parsers.
func Coerce(raw string) *Node {
	trimmed := strings.TrimSpace(raw)

	switch strings.ToLower(trimmed) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if node, err := ParseInline(trimmed); err == nil {
			return node
		}
	}

	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Integer(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Float(f)
	}

	return String(raw)
}

// ParseInline parses an inline table or array literal such as
// {a=1,b=2} or [x,y,z]. Values recurse through the same grammar;
// unquoted bare words that are not booleans or numbers become strings.
func ParseInline(s string) (*Node, error) {
	sc := &inlineScanner{input: s}
	node, err := sc.scanValue()
	if err != nil {
		return nil, err
	}
	sc.skipSpace()
	if sc.pos != len(sc.input) {
		return nil, fmt.Errorf("%w: trailing data %q in inline literal", ErrParse, sc.input[sc.pos:])
	}
	return node, nil
}

// inlineScanner is a single-pass scanner over an inline literal.
type inlineScanner struct {
	input string
	pos   int
}

func (sc *inlineScanner) skipSpace() {
	for sc.pos < len(sc.input) && unicode.IsSpace(rune(sc.input[sc.pos])) {
		sc.pos++
	}
}

func (sc *inlineScanner) peek() (byte, bool) {
	if sc.pos >= len(sc.input) {
		return 0, false
	}
	return sc.input[sc.pos], true
}

func (sc *inlineScanner) scanValue() (*Node, error) {
	sc.skipSpace()
	c, ok := sc.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of inline literal", ErrParse)
	}
	switch c {
	case '{':
		return sc.scanTable()
	case '[':
		return sc.scanArray()
	case '"', '\'':
		s, err := sc.scanQuoted(c)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	default:
		return sc.scanBare()
	}
}

func (sc *inlineScanner) scanTable() (*Node, error) {
	sc.pos++ // consume '{'
	table := NewTable()
	sc.skipSpace()
	if c, ok := sc.peek(); ok && c == '}' {
		sc.pos++
		return table, nil
	}
	for {
		key, err := sc.scanKey()
		if err != nil {
			return nil, err
		}
		sc.skipSpace()
		if c, ok := sc.peek(); !ok || c != '=' {
			return nil, fmt.Errorf("%w: expected '=' after key %q in inline table", ErrParse, key)
		}
		sc.pos++ // consume '='
		value, err := sc.scanValue()
		if err != nil {
			return nil, err
		}
		table.SetChild(key, value)

		sc.skipSpace()
		c, ok := sc.peek()
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: unterminated inline table", ErrParse)
		case c == ',':
			sc.pos++
		case c == '}':
			sc.pos++
			return table, nil
		default:
			return nil, fmt.Errorf("%w: unexpected character %q in inline table", ErrParse, c)
		}
	}
}

func (sc *inlineScanner) scanArray() (*Node, error) {
	sc.pos++ // consume '['
	arr := NewArray()
	sc.skipSpace()
	if c, ok := sc.peek(); ok && c == ']' {
		sc.pos++
		return arr, nil
	}
	for {
		value, err := sc.scanValue()
		if err != nil {
			return nil, err
		}
		arr.Append(value)

		sc.skipSpace()
		c, ok := sc.peek()
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: unterminated inline array", ErrParse)
		case c == ',':
			sc.pos++
			sc.skipSpace()
			// Tolerate a trailing comma before the closing bracket.
			if c2, ok2 := sc.peek(); ok2 && c2 == ']' {
				sc.pos++
				return arr, nil
			}
		case c == ']':
			sc.pos++
			return arr, nil
		default:
			return nil, fmt.Errorf("%w: unexpected character %q in inline array", ErrParse, c)
		}
	}
}

func (sc *inlineScanner) scanKey() (string, error) {
	sc.skipSpace()
	c, ok := sc.peek()
	if !ok {
		return "", fmt.Errorf("%w: expected key in inline table", ErrParse)
	}
	if c == '"' || c == '\'' {
		return sc.scanQuoted(c)
	}
	start := sc.pos
	for sc.pos < len(sc.input) {
		c := sc.input[sc.pos]
		if c == '=' || c == ',' || c == '}' || unicode.IsSpace(rune(c)) {
			break
		}
		sc.pos++
	}
	if sc.pos == start {
		return "", fmt.Errorf("%w: empty key in inline table", ErrParse)
	}
	return sc.input[start:sc.pos], nil
}

func (sc *inlineScanner) scanQuoted(quote byte) (string, error) {
	sc.pos++ // consume opening quote
	var b strings.Builder
	for sc.pos < len(sc.input) {
		c := sc.input[sc.pos]
		switch {
		case c == quote:
			sc.pos++
			return b.String(), nil
		case c == '\\' && quote == '"':
			sc.pos++
			if sc.pos >= len(sc.input) {
				return "", fmt.Errorf("%w: unterminated escape in quoted string", ErrParse)
			}
			switch esc := sc.input[sc.pos]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"', '\\':
				b.WriteByte(esc)
			default:
				return "", fmt.Errorf("%w: unsupported escape %q in quoted string", ErrParse, esc)
			}
			sc.pos++
		default:
			b.WriteByte(c)
			sc.pos++
		}
	}
	return "", fmt.Errorf("%w: unterminated quoted string", ErrParse)
}

// scanBare reads an unquoted token and classifies it: booleans and
// numbers keep their types, everything else becomes a string.
func (sc *inlineScanner) scanBare() (*Node, error) {
	start := sc.pos
	for sc.pos < len(sc.input) {
		c := sc.input[sc.pos]
		if c == ',' || c == ']' || c == '}' || c == '=' || unicode.IsSpace(rune(c)) {
			break
		}
		sc.pos++
	}
	token := sc.input[start:sc.pos]
	if token == "" {
		return nil, fmt.Errorf("%w: empty value in inline literal", ErrParse)
	}
	switch token {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Integer(i), nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return Float(f), nil
	}
	return String(token), nil
}
