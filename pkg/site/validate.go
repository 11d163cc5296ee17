package site

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// MaxNavDepth is the deepest nav nesting the theme renders.
const MaxNavDepth = 2

// Problem is one violated invariant, located by a JSON-style path.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) Error() string {
	return p.Path + ": " + p.Message
}

// ValidLink reports whether s is a rooted site path or an https URL.
func ValidLink(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, "https://")
}

// Validate checks c against the invariants the generator relies on and
// returns every problem found, in document order.
func Validate(c *Config) []Problem {
	if c == nil {
		return []Problem{{Path: "$", Message: "configuration is nil"}}
	}
	var v validator

	if _, err := language.Parse(c.Lang); err != nil {
		v.add("lang", fmt.Sprintf("invalid language tag %q", c.Lang))
	}
	v.nonEmpty("title", c.Title)
	v.nonEmpty("description", c.Description)

	for i, h := range c.Head {
		if strings.TrimSpace(h.Tag) == "" {
			v.add(fmt.Sprintf("head[%d]", i), "tag name must not be empty")
		}
	}

	tc := c.ThemeConfig
	v.link("themeConfig.logo", tc.Logo)
	v.link("themeConfig.editLink.pattern", tc.EditLink.Pattern)
	if !strings.Contains(tc.EditLink.Pattern, ":path") {
		v.add("themeConfig.editLink.pattern", "must contain the :path placeholder")
	}
	v.navList("themeConfig.localeLinks.items", tc.LocaleLinks.Items, 1)
	for i, s := range tc.SocialLinks {
		p := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		v.nonEmpty(p+".icon", s.Icon)
		v.link(p+".link", s.Link)
	}
	v.navList("themeConfig.nav", tc.Nav, 1)

	for _, route := range sortedRoutes(tc.Sidebar) {
		base := fmt.Sprintf("themeConfig.sidebar[%q]", route)
		if !strings.HasPrefix(route, "/") {
			v.add(base, "route prefix must start with /")
		}
		for gi, g := range tc.Sidebar[route] {
			gp := fmt.Sprintf("%s[%d]", base, gi)
			v.nonEmpty(gp+".text", g.Text)
			if len(g.Items) == 0 {
				v.add(gp+".items", "group has no links")
			}
			for ii, it := range g.Items {
				ip := fmt.Sprintf("%s.items[%d]", gp, ii)
				v.nonEmpty(ip+".text", it.Text)
				v.link(ip+".link", it.Link)
			}
		}
	}
	return v.problems
}

// Validate returns nil when c satisfies every invariant, and otherwise an
// error matching ErrConfigurationAssembly that lists each problem.
func (c *Config) Validate() error {
	problems := Validate(c)
	if len(problems) == 0 {
		return nil
	}
	errs := make([]error, len(problems))
	for i, p := range problems {
		errs[i] = p
	}
	return fmt.Errorf("%w: %w", ErrConfigurationAssembly, errors.Join(errs...))
}

type validator struct {
	problems []Problem
}

func (v *validator) add(path, msg string) {
	v.problems = append(v.problems, Problem{Path: path, Message: msg})
}

func (v *validator) nonEmpty(path, s string) {
	if strings.TrimSpace(s) == "" {
		v.add(path, "must not be empty")
	}
}

func (v *validator) link(path, s string) {
	switch {
	case s == "":
		v.add(path, "link must not be empty")
	case !ValidLink(s):
		v.add(path, fmt.Sprintf("link %q must start with / or https://", s))
	}
}

func (v *validator) navList(path string, items []NavItem, depth int) {
	for i, it := range items {
		p := fmt.Sprintf("%s[%d]", path, i)
		v.nonEmpty(p+".text", it.Text)
		switch {
		case it.IsGroup() && it.Link != "":
			v.add(p, "item has both a link and children")
		case it.IsGroup():
			if depth >= MaxNavDepth {
				v.add(p, fmt.Sprintf("nesting deeper than %d levels", MaxNavDepth))
				continue
			}
			v.navList(p+".items", it.Items, depth+1)
		default:
			v.link(p+".link", it.Link)
		}
	}
}

func sortedRoutes(s Sidebar) []string {
	routes := make([]string, 0, len(s))
	for r := range s {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	return routes
}
