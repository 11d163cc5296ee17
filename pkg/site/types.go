package site

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the document handed to the documentation-site generator. Keys
// follow the generator's schema.
type Config struct {
	Lang        string          `json:"lang" yaml:"lang"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Head        []HeadTag       `json:"head" yaml:"head"`
	LastUpdated bool            `json:"lastUpdated" yaml:"lastUpdated"`
	Markdown    MarkdownOptions `json:"markdown" yaml:"markdown"`
	ThemeConfig ThemeConfig     `json:"themeConfig" yaml:"themeConfig"`
}

// HeadTag is one element injected into the page head. It serializes as the
// tuple [tag, attrs] or [tag, attrs, content].
type HeadTag struct {
	Tag     string
	Attrs   map[string]string
	Content string
}

// MarkdownOptions configures the generator's Markdown pipeline.
type MarkdownOptions struct {
	Theme CodeTheme `json:"theme" yaml:"theme"`
}

// CodeTheme names the syntax highlighting themes per color scheme.
type CodeTheme struct {
	Light string `json:"light" yaml:"light"`
	Dark  string `json:"dark" yaml:"dark"`
}

// ThemeConfig holds everything the default theme renders around content.
type ThemeConfig struct {
	Logo        string       `json:"logo" yaml:"logo"`
	EditLink    EditLink     `json:"editLink" yaml:"editLink"`
	LocaleLinks LocaleLinks  `json:"localeLinks" yaml:"localeLinks"`
	SocialLinks []SocialLink `json:"socialLinks" yaml:"socialLinks"`
	Footer      Footer       `json:"footer" yaml:"footer"`
	Nav         []NavItem    `json:"nav" yaml:"nav"`
	Sidebar     Sidebar      `json:"sidebar" yaml:"sidebar"`
}

// EditLink builds "edit this page" URLs; Pattern contains ":path".
type EditLink struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Text    string `json:"text" yaml:"text"`
}

// LocaleLinks lists the other translations of the site.
type LocaleLinks struct {
	Text  string    `json:"text" yaml:"text"`
	Items []NavItem `json:"items" yaml:"items"`
}

// SocialLink is an icon identifier and its target.
type SocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

// Footer is rendered at the bottom of every page.
type Footer struct {
	Message   string `json:"message" yaml:"message"`
	Copyright string `json:"copyright" yaml:"copyright"`
}

// NavItem is either a leaf with Link or a group with Items.
type NavItem struct {
	Text  string    `json:"text" yaml:"text"`
	Link  string    `json:"link,omitempty" yaml:"link,omitempty"`
	Items []NavItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// IsGroup reports whether the item holds children instead of a link.
func (n NavItem) IsGroup() bool { return len(n.Items) > 0 }

// Sidebar maps a route prefix to the groups shown for pages under it.
type Sidebar map[string][]SidebarGroup

// SidebarGroup is a titled list of links.
type SidebarGroup struct {
	Text  string        `json:"text" yaml:"text"`
	Items []SidebarItem `json:"items" yaml:"items"`
}

// SidebarItem is one sidebar link.
type SidebarItem struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

func (h HeadTag) tuple() []any {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	if h.Content != "" {
		return []any{h.Tag, attrs, h.Content}
	}
	return []any{h.Tag, attrs}
}

// MarshalJSON implements json.Marshaler.
func (h HeadTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.tuple())
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *HeadTag) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("head tag: %w", err)
	}
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("head tag: want 2 or 3 elements, got %d", len(parts))
	}
	var out HeadTag
	if err := json.Unmarshal(parts[0], &out.Tag); err != nil {
		return fmt.Errorf("head tag name: %w", err)
	}
	if err := json.Unmarshal(parts[1], &out.Attrs); err != nil {
		return fmt.Errorf("head tag %s attributes: %w", out.Tag, err)
	}
	if len(parts) == 3 {
		if err := json.Unmarshal(parts[2], &out.Content); err != nil {
			return fmt.Errorf("head tag %s content: %w", out.Tag, err)
		}
	}
	*h = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HeadTag) MarshalYAML() (interface{}, error) {
	return h.tuple(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HeadTag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("head tag: line %d: want a sequence", value.Line)
	}
	if n := len(value.Content); n < 2 || n > 3 {
		return fmt.Errorf("head tag: line %d: want 2 or 3 elements, got %d", value.Line, n)
	}
	var out HeadTag
	if err := value.Content[0].Decode(&out.Tag); err != nil {
		return err
	}
	if err := value.Content[1].Decode(&out.Attrs); err != nil {
		return err
	}
	if len(value.Content) == 3 {
		if err := value.Content[2].Decode(&out.Content); err != nil {
			return err
		}
	}
	*h = out
	return nil
}

// Clone returns a deep copy that shares no slices or maps with c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Head = make([]HeadTag, len(c.Head))
	for i, h := range c.Head {
		attrs := make(map[string]string, len(h.Attrs))
		for k, v := range h.Attrs {
			attrs[k] = v
		}
		out.Head[i] = HeadTag{Tag: h.Tag, Attrs: attrs, Content: h.Content}
	}
	tc := &out.ThemeConfig
	tc.LocaleLinks.Items = cloneNav(c.ThemeConfig.LocaleLinks.Items)
	tc.SocialLinks = append([]SocialLink(nil), c.ThemeConfig.SocialLinks...)
	tc.Nav = cloneNav(c.ThemeConfig.Nav)
	if c.ThemeConfig.Sidebar != nil {
		tc.Sidebar = make(Sidebar, len(c.ThemeConfig.Sidebar))
		for route, groups := range c.ThemeConfig.Sidebar {
			cp := make([]SidebarGroup, len(groups))
			for i, g := range groups {
				cp[i] = SidebarGroup{Text: g.Text, Items: append([]SidebarItem(nil), g.Items...)}
			}
			tc.Sidebar[route] = cp
		}
	}
	return &out
}

func cloneNav(items []NavItem) []NavItem {
	if items == nil {
		return nil
	}
	out := make([]NavItem, len(items))
	for i, it := range items {
		out[i] = NavItem{Text: it.Text, Link: it.Link, Items: cloneNav(it.Items)}
	}
	return out
}
