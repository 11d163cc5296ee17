package site

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHeadTagJSONTuple(t *testing.T) {
	tests := []struct {
		name string
		tag  HeadTag
		want string
	}{
		{
			name: "attributes only",
			tag:  HeadTag{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/favicon.ico"}},
			want: `["link",{"href":"/favicon.ico","rel":"icon"}]`,
		},
		{
			name: "with content",
			tag:  HeadTag{Tag: "noscript", Content: "<link>"},
			want: `["noscript",{},"<link>"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.tag)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))

			var back HeadTag
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, tt.tag.Tag, back.Tag)
			assert.Equal(t, tt.tag.Content, back.Content)
			assert.Equal(t, len(tt.tag.Attrs), len(back.Attrs))
		})
	}
}

func TestHeadTagJSONRejectsBadShapes(t *testing.T) {
	for _, in := range []string{`"link"`, `["link"]`, `["a",{},"b","c"]`, `[1,{}]`, `["meta",[]]`} {
		var h HeadTag
		assert.Error(t, json.Unmarshal([]byte(in), &h), in)
	}
}

func TestHeadTagYAML(t *testing.T) {
	h := HeadTag{Tag: "meta", Attrs: map[string]string{"name": "author", "content": "Alice"}}
	b, err := yaml.Marshal([]HeadTag{h})
	require.NoError(t, err)
	var raw []any
	require.NoError(t, yaml.Unmarshal(b, &raw))
	require.Len(t, raw, 1)
	tuple, ok := raw[0].([]any)
	require.True(t, ok, "head tag should encode as a sequence")
	assert.Equal(t, "meta", tuple[0])

	var back []HeadTag
	require.NoError(t, yaml.Unmarshal(b, &back))
	require.Len(t, back, 1)
	assert.Equal(t, h, back[0])

	var bad HeadTag
	assert.Error(t, yaml.Unmarshal([]byte("tag: meta\n"), &bad))
	assert.Error(t, yaml.Unmarshal([]byte("- meta\n"), &bad))
}

func TestConfigJSONRoundTrip(t *testing.T) {
	cfg := mustBuild(t, testInputs())
	b, err := json.Marshal(cfg)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(b, &generic))
	for _, k := range []string{"lang", "title", "description", "head", "lastUpdated", "markdown", "themeConfig"} {
		assert.Contains(t, generic, k)
	}
	theme := generic["themeConfig"].(map[string]any)
	for _, k := range []string{"logo", "editLink", "localeLinks", "socialLinks", "footer", "nav", "sidebar"} {
		assert.Contains(t, theme, k)
	}

	var back Config
	require.NoError(t, json.Unmarshal(b, &back))
	if diff := cmp.Diff(cfg, &back); diff != "" {
		t.Fatalf("JSON round trip changed the config (-want +got):\n%s", diff)
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := mustBuild(t, testInputs())
	cp := cfg.Clone()
	require.True(t, cmp.Equal(cfg, cp))

	cp.Head[3].Attrs["content"] = "someone else"
	cp.ThemeConfig.Nav[3].Items[0].Link = "/changed"
	cp.ThemeConfig.Sidebar["/"][0].Items[0].Text = "changed"
	cp.ThemeConfig.SocialLinks[0].Icon = "mastodon"
	cp.ThemeConfig.LocaleLinks.Items[0].Text = "changed"

	assert.Equal(t, "Alice, Bob and Vitest contributors", cfg.Head[3].Attrs["content"])
	assert.Equal(t, "https://github.com/vitest-dev/vitest/releases", cfg.ThemeConfig.Nav[3].Items[0].Link)
	assert.Equal(t, "¿Por qué Vitest?", cfg.ThemeConfig.Sidebar["/"][0].Items[0].Text)
	assert.Equal(t, "twitter", cfg.ThemeConfig.SocialLinks[0].Icon)
	assert.Equal(t, "English", cfg.ThemeConfig.LocaleLinks.Items[0].Text)

	var nilCfg *Config
	assert.Nil(t, nilCfg.Clone())
}
