package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/gnu-json-result/internal/model"
)

// Format selects the serialization of the result tree.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want json or yaml)", name)
}

// Indent is the per-level indentation of both encodings.
const Indent = 2

// Encode writes v to w in the given format. Map keys are sorted at every
// level. JSON output escapes every non-ASCII rune as \uXXXX.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON, "":
		return encodeJSON(w, v)
	case FormatYAML:
		return encodeYAML(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func encodeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", Indent))
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if _, err := w.Write(escapeNonASCII(buf.Bytes())); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	node, err := yamlNode(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(Indent)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}

// yamlNode builds the document node by hand so mapping keys come out in
// byte order. yaml.v3 sorts plain maps numerically ("test 2" before "test 10").
func yamlNode(v any) (*yaml.Node, error) {
	var m map[string]any
	switch t := v.(type) {
	case model.Tree:
		m = t
	case map[string]any:
		m = t
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if len(keys) == 0 {
		node.Style = yaml.FlowStyle
	}
	for _, k := range keys {
		key := &yaml.Node{}
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		value, err := yamlNode(m[k])
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// escapeNonASCII rewrites runes >= 0x80 as JSON \u escapes, using surrogate
// pairs outside the BMP. Encoded JSON only carries such runes inside strings.
func escapeNonASCII(b []byte) []byte {
	ascii := true
	for _, c := range b {
		if c >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return b
	}

	var out bytes.Buffer
	out.Grow(len(b) + len(b)/2)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		switch {
		case r < utf8.RuneSelf:
			out.WriteByte(byte(r))
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&out, `\u%04x`, r)
		}
	}
	return out.Bytes()
}
