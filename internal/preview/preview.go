// Package preview renders a one-page outline of a site configuration.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/oakwood-commons/docsite/pkg/site"
)

// Markdown returns the outline of cfg as Markdown: title, description,
// navigation, sidebar groups, social links and footer.
func Markdown(cfg *site.Config) []byte {
	var b bytes.Buffer
	tc := cfg.ThemeConfig

	fmt.Fprintf(&b, "# %s\n\n%s\n\n", cfg.Title, cfg.Description)

	b.WriteString("## Navegación\n\n")
	writeNav(&b, tc.Nav, 0)
	b.WriteString("\n")

	if len(tc.Sidebar) > 0 {
		b.WriteString("## Barra lateral\n\n")
		routes := make([]string, 0, len(tc.Sidebar))
		for r := range tc.Sidebar {
			routes = append(routes, r)
		}
		sort.Strings(routes)
		for _, r := range routes {
			fmt.Fprintf(&b, "### `%s`\n\n", r)
			for _, g := range tc.Sidebar[r] {
				fmt.Fprintf(&b, "#### %s\n\n", g.Text)
				for _, it := range g.Items {
					fmt.Fprintf(&b, "- %s\n", link(it.Text, it.Link))
				}
				b.WriteString("\n")
			}
		}
	}

	if len(tc.SocialLinks) > 0 {
		b.WriteString("## Redes\n\n")
		for _, s := range tc.SocialLinks {
			fmt.Fprintf(&b, "- %s\n", link(s.Icon, s.Link))
		}
		b.WriteString("\n")
	}

	if len(tc.LocaleLinks.Items) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", tc.LocaleLinks.Text)
		writeNav(&b, tc.LocaleLinks.Items, 0)
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "%s\n\n%s\n", tc.Footer.Message, tc.Footer.Copyright)
	return b.Bytes()
}

func writeNav(b *bytes.Buffer, items []site.NavItem, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, it := range items {
		if it.IsGroup() {
			fmt.Fprintf(b, "%s- %s\n", indent, it.Text)
			writeNav(b, it.Items, depth+1)
			continue
		}
		fmt.Fprintf(b, "%s- %s\n", indent, link(it.Text, it.Link))
	}
}

func link(text, target string) string {
	return fmt.Sprintf("[%s](%s)", text, target)
}

// HTML renders the outline as a standalone page.
func HTML(cfg *site.Config) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(Markdown(cfg))

	opts := mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank}
	body := markdown.Render(doc, mdhtml.NewRenderer(opts))

	var b bytes.Buffer
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
code { background: #f4f4f4; padding: 0 .25rem; }
</style>
</head>
<body>
`, html.EscapeString(cfg.Lang), html.EscapeString(cfg.Title))
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return b.Bytes()
}
