package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name  string            `json:"name" yaml:"name"`
	Items []string          `json:"items" yaml:"items"`
	Attrs map[string]string `json:"attrs" yaml:"attrs"`
	Note  string            `json:"note" yaml:"note"`
}

func newSample() sample {
	return sample{
		Name:  "Vitest",
		Items: []string{"guía", "api"},
		Attrs: map[string]string{"rel": "icon"},
		Note:  "<link rel=\"stylesheet\">",
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"json", "YAML", " toml ", "tree"} {
		assert.NoError(t, ValidateFormat(f), f)
	}
	err := ValidateFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "json, yaml, toml, tree")
}

func TestFormatJSON(t *testing.T) {
	out, err := Format(newSample(), JSON, Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "\n  \"name\": \"Vitest\"")
	assert.Contains(t, out, `<link rel=\"stylesheet\">`, "HTML must not be escaped")

	var back sample
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, newSample(), back)
}

func TestFormatYAML(t *testing.T) {
	out, err := Format(newSample(), YAML, Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "name: Vitest\n"), out)
	assert.Contains(t, out, "items:\n")
	assert.Contains(t, out, "- guía\n")

	var back sample
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, newSample(), back)
}

func TestFormatYAMLLiteralBlocks(t *testing.T) {
	out, err := FormatYAML(map[string]string{"msg": "line1\nline2"}, YAMLFormatOptions{LiteralBlockStrings: true, Indent: 4})
	require.NoError(t, err)
	assert.Contains(t, out, "msg: |")
}

func TestFormatTOML(t *testing.T) {
	out, err := Format(newSample(), TOML, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "name = 'Vitest'")
	assert.Contains(t, out, "[attrs]")

	_, err = FormatTOMLString([]string{"not", "a", "table"})
	require.Error(t, err)
}

func TestFormatTree(t *testing.T) {
	out, err := Format(newSample(), Tree, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "name: Vitest")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFormatUnknown(t *testing.T) {
	_, err := Format(newSample(), "csv", Options{})
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestGeneric(t *testing.T) {
	g, err := Generic(newSample())
	require.NoError(t, err)
	m, ok := g.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Vitest", m["name"])
	assert.Equal(t, []interface{}{"guía", "api"}, m["items"])

	_, err = Generic(func() {})
	require.Error(t, err)
}

func TestFormatReport(t *testing.T) {
	assert.Equal(t, "OK config.json\n", FormatReport("config.json", nil, false))

	out := FormatReport("config.json", []string{"lang: bad", "title: empty"}, false)
	assert.Equal(t, "FAIL config.json (2 problems)\n  - lang: bad\n  - title: empty\n", out)

	single := FormatReport("x", []string{"one"}, false)
	assert.Contains(t, single, "(1 problem)\n")

	assert.Contains(t, FormatReport("x", nil, true), "\x1b[")
}
