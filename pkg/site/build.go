package site

import (
	"fmt"
	"strings"

	"github.com/oakwood-commons/docsite/pkg/contributors"
	"github.com/oakwood-commons/docsite/pkg/meta"
	"github.com/oakwood-commons/docsite/pkg/version"
)

// Lang is the language tag the generator is given. The published Spanish
// site still declares en-US.
const Lang = "en-US"

// ThemeColor is the browser UI color advertised in the head.
const ThemeColor = "#729b1a"

// Inputs are the already-resolved values a configuration is built from.
type Inputs struct {
	Version      string
	Contributors []contributors.Contributor
	Meta         meta.Metadata
}

// Build assembles the site configuration. It performs no I/O and returns
// equal configurations for equal inputs.
func Build(in Inputs) (*Config, error) {
	if err := in.Meta.Validate(); err != nil {
		return nil, assemblyErr("meta", "", err)
	}
	v, err := version.Normalize(in.Version)
	if err != nil {
		return nil, assemblyErr("version", "", err)
	}
	author, err := AuthorLine(contributors.Names(in.Contributors), in.Meta.Name)
	if err != nil {
		return nil, err
	}

	m := in.Meta
	return &Config{
		Lang:        Lang,
		Title:       m.Name,
		Description: m.Description,
		Head:        headTags(m, author),
		LastUpdated: true,
		Markdown: MarkdownOptions{
			Theme: CodeTheme{Light: "vitesse-light", Dark: "vitesse-dark"},
		},
		ThemeConfig: ThemeConfig{
			Logo: "/logo.svg",
			EditLink: EditLink{
				Pattern: m.DocsRepo + "/tree/main/docs/:path",
				Text:    "Sugerir cambios en esta página",
			},
			LocaleLinks: LocaleLinks{
				Text: "Español",
				Items: []NavItem{
					{Text: "English", Link: m.EnglishSiteURL},
					{Text: "简体中文", Link: m.ChineseSiteURL},
				},
			},
			SocialLinks: []SocialLink{
				{Icon: "twitter", Link: m.Twitter},
				{Icon: "discord", Link: m.Discord},
				{Icon: "github", Link: m.GitHub},
			},
			Footer: Footer{
				Message:   "Publicado bajo la licencia MIT.",
				Copyright: "Copyright © 2021-PRESENTE " + m.CopyrightHolder,
			},
			Nav:     navItems(m, v),
			Sidebar: Sidebar{"/": rootSidebar()},
		},
	}, nil
}

// AuthorLine credits every contributor followed by the site's community:
// "Alice, Bob and Vitest contributors".
func AuthorLine(names []string, siteName string) (string, error) {
	if len(names) == 0 {
		return "", assemblyErr("contributors", "", contributors.ErrNoContributors)
	}
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			return "", assemblyErr("contributors", fmt.Sprintf("entry %d has no name", i), nil)
		}
	}
	if strings.TrimSpace(siteName) == "" {
		return "", assemblyErr("meta", "site name must not be empty", nil)
	}
	return strings.Join(names, ", ") + " and " + siteName + " contributors", nil
}

// VersionLabel formats the version menu title. A leading "v" is not doubled.
func VersionLabel(v string) string {
	return "v" + strings.TrimPrefix(strings.TrimSpace(v), "v")
}

func headTags(m meta.Metadata, author string) []HeadTag {
	return []HeadTag{
		{Tag: "meta", Attrs: map[string]string{"name": "theme-color", "content": ThemeColor}},
		{Tag: "link", Attrs: map[string]string{"rel": "icon", "href": "/logo.svg", "type": "image/svg+xml"}},
		{Tag: "link", Attrs: map[string]string{"rel": "alternate icon", "href": "/favicon.ico", "type": "image/png", "sizes": "16x16"}},
		{Tag: "meta", Attrs: map[string]string{"name": "author", "content": author}},
		{Tag: "meta", Attrs: map[string]string{"name": "keywords", "content": m.Keywords}},
		{Tag: "meta", Attrs: map[string]string{"property": "og:title", "content": m.Name}},
		{Tag: "meta", Attrs: map[string]string{"property": "og:description", "content": m.Description}},
		{Tag: "meta", Attrs: map[string]string{"property": "og:url", "content": m.URL}},
		{Tag: "meta", Attrs: map[string]string{"property": "og:image", "content": m.OGImage}},
		{Tag: "meta", Attrs: map[string]string{"name": "twitter:title", "content": m.Name}},
		{Tag: "meta", Attrs: map[string]string{"name": "twitter:description", "content": m.Description}},
		{Tag: "meta", Attrs: map[string]string{"name": "twitter:image", "content": m.OGImage}},
		{Tag: "meta", Attrs: map[string]string{"name": "twitter:card", "content": "summary_large_image"}},
		{Tag: "link", Attrs: map[string]string{"href": m.Font, "rel": "stylesheet"}},
		{Tag: "link", Attrs: map[string]string{"rel": "mask-icon", "href": "/logo.svg", "color": "#ffffff"}},
		{Tag: "link", Attrs: map[string]string{"rel": "apple-touch-icon", "href": "/apple-touch-icon.png", "sizes": "180x180"}},
	}
}

func navItems(m meta.Metadata, v string) []NavItem {
	return []NavItem{
		{Text: "Guía", Link: "/guide/"},
		{Text: "API", Link: "/api/"},
		{Text: "Configuración", Link: "/config/"},
		{
			Text: VersionLabel(v),
			Items: []NavItem{
				{Text: "Notas de publicación ", Link: m.Releases},
				{Text: "Contribuir ", Link: m.Contributing},
			},
		},
	}
}

func rootSidebar() []SidebarGroup {
	return []SidebarGroup{
		{
			Text: "Guía",
			Items: []SidebarItem{
				{Text: "¿Por qué Vitest?", Link: "/guide/why"},
				{Text: "Introducción", Link: "/guide/"},
				{Text: "Características", Link: "/guide/features"},
				{Text: "CLI", Link: "/guide/cli"},
				{Text: "Filtrado de Tests", Link: "/guide/filtering"},
				{Text: "Cobertura", Link: "/guide/coverage"},
				{Text: "Instantáneas", Link: "/guide/snapshot"},
				{Text: "Mocks", Link: "/guide/mocking"},
				{Text: "Interfaz de Usuario", Link: "/guide/ui"},
				{Text: "Pruebas en el Origen", Link: "/guide/in-source"},
				{Text: "Contexto del Test", Link: "/guide/test-context"},
				{Text: "Ampliación de Comparadores", Link: "/guide/extending-matchers"},
				{Text: "Integración con IDE", Link: "/guide/ide"},
				{Text: "Depuración", Link: "/guide/debugging"},
				{Text: "Comparaciones", Link: "/guide/comparisons"},
				{Text: "Guía de Migración", Link: "/guide/migration"},
			},
		},
		{
			Text: "API",
			Items: []SidebarItem{
				{Text: "Referencia de la API", Link: "/api/"},
			},
		},
		{
			Text: "Configuración",
			Items: []SidebarItem{
				{Text: "Referencia de la Configuración", Link: "/config/"},
			},
		},
	}
}
