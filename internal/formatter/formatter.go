package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output formats.
const (
	JSON = "json"
	YAML = "yaml"
	TOML = "toml"
	Tree = "tree"
)

// ValidFormats lists every format Format accepts.
var ValidFormats = []string{JSON, YAML, TOML, Tree}

// ErrUnknownFormat is returned for a format outside ValidFormats.
var ErrUnknownFormat = errors.New("unknown output format")

// Options bundles the per-format settings.
type Options struct {
	YAML YAMLFormatOptions
	Tree TreeOptions
}

// ValidateFormat returns ErrUnknownFormat, listing valid values, when f is
// not supported. Matching is case-insensitive.
func ValidateFormat(f string) error {
	norm := strings.ToLower(strings.TrimSpace(f))
	for _, v := range ValidFormats {
		if norm == v {
			return nil
		}
	}
	return fmt.Errorf("%w %q: valid values are %s", ErrUnknownFormat, f, strings.Join(ValidFormats, ", "))
}

// Format renders v in the named format. Every result ends with a newline.
func Format(v interface{}, format string, opts Options) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case YAML:
		return FormatYAML(v, opts.YAML)
	case TOML:
		return FormatTOMLString(v)
	case Tree:
		out, err := FormatAsTree(v, opts.Tree)
		if err != nil {
			return "", err
		}
		return ensureNewline(out), nil
	default:
		return FormatJSONString(v)
	}
}

// FormatJSONString renders v as two-space indented JSON without HTML
// escaping, so head tag content stays readable.
func FormatJSONString(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return buf.String(), nil
}

// FormatTOMLString renders the generic form of v as TOML.
func FormatTOMLString(v interface{}) (string, error) {
	generic, err := Generic(v)
	if err != nil {
		return "", err
	}
	if _, ok := generic.(map[string]interface{}); !ok {
		return "", fmt.Errorf("encode toml: top-level value must be a table, got %T", generic)
	}
	b, err := toml.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("encode toml: %w", err)
	}
	return ensureNewline(string(b)), nil
}

// Generic converts v into its JSON data model: maps, slices, strings,
// float64, bool and nil. Query and TOML output work on this form.
func Generic(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert to generic form: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("convert to generic form: %w", err)
	}
	return out, nil
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
