// Package meta holds the shared text and link constants of the Spanish
// Vitest documentation site.
package meta

import (
	"fmt"
	"strings"
)

// Metadata is the set of constants every part of the site configuration
// draws from.
type Metadata struct {
	Name            string `json:"name" yaml:"name"`
	Description     string `json:"description" yaml:"description"`
	URL             string `json:"url" yaml:"url"`
	OGImage         string `json:"ogImage" yaml:"ogImage"`
	Font            string `json:"font" yaml:"font"`
	Twitter         string `json:"twitter" yaml:"twitter"`
	Discord         string `json:"discord" yaml:"discord"`
	GitHub          string `json:"github" yaml:"github"`
	// DocsRepo is the repository holding the docs/ sources.
	DocsRepo        string `json:"docsRepo" yaml:"docsRepo"`
	Releases        string `json:"releases" yaml:"releases"`
	Contributing    string `json:"contributing" yaml:"contributing"`
	EnglishSiteURL  string `json:"englishSiteUrl" yaml:"englishSiteUrl"`
	ChineseSiteURL  string `json:"chineseSiteUrl" yaml:"chineseSiteUrl"`
	Keywords        string `json:"keywords" yaml:"keywords"`
	CopyrightHolder string `json:"copyrightHolder" yaml:"copyrightHolder"`
}

const (
	vitestName = "Vitest"
	vitestURL  = "https://es.vitest.dev"
)

// Default returns the constants of the published site.
func Default() Metadata {
	return Metadata{
		Name:            vitestName,
		Description:     "Un framework de pruebas unitarias nativo de Vite. ¡Es rápido!",
		URL:             vitestURL,
		OGImage:         vitestURL + "/og.png",
		Font:            "https://fonts.googleapis.com/css2?family=Readex+Pro:wght@200;400;600&display=swap",
		Twitter:         "https://twitter.com/vitest_dev",
		Discord:         "https://chat.vitest.dev",
		GitHub:          "https://github.com/vitest-dev/vitest",
		DocsRepo:        "https://github.com/vitest-dev/vitest",
		Releases:        "https://github.com/vitest-dev/vitest/releases",
		Contributing:    "https://github.com/vitest-dev/vitest/blob/main/CONTRIBUTING.md",
		EnglishSiteURL:  "https://vitest.dev",
		ChineseSiteURL:  "https://cn.vitest.dev",
		Keywords:        "vitest, vite, test, coverage, snapshot, react, vue, preact, svelte, solid, lit, ruby, cypress, puppeteer, jsdom, happy-dom, test-runner, jest, typescript, esm, tinypool, tinyspy, c8, node",
		CopyrightHolder: "Anthony Fu, Matías Capeletto y contribuidores de Vitest",
	}
}

// Field is one named constant, in declaration order.
type Field struct {
	Name  string
	Value string
	IsURL bool
}

// Fields lists every constant with its name so callers can validate or
// display them without reflection.
func (m Metadata) Fields() []Field {
	return []Field{
		{"name", m.Name, false},
		{"description", m.Description, false},
		{"url", m.URL, true},
		{"ogImage", m.OGImage, true},
		{"font", m.Font, true},
		{"twitter", m.Twitter, true},
		{"discord", m.Discord, true},
		{"github", m.GitHub, true},
		{"docsRepo", m.DocsRepo, true},
		{"releases", m.Releases, true},
		{"contributing", m.Contributing, true},
		{"englishSiteUrl", m.EnglishSiteURL, true},
		{"chineseSiteUrl", m.ChineseSiteURL, true},
		{"keywords", m.Keywords, false},
		{"copyrightHolder", m.CopyrightHolder, false},
	}
}

// FieldError reports one invalid constant.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("metadata %s: %s", e.Field, e.Reason)
}

// Validate returns the first blank constant or non-https URL.
func (m Metadata) Validate() error {
	for _, f := range m.Fields() {
		if strings.TrimSpace(f.Value) == "" {
			return &FieldError{Field: f.Name, Reason: "must not be empty"}
		}
		if f.IsURL && !strings.HasPrefix(f.Value, "https://") {
			return &FieldError{Field: f.Name, Reason: fmt.Sprintf("must be an https URL, got %q", f.Value)}
		}
	}
	return nil
}
