// Package contributors supplies the ordered list of people credited in the
// site's author meta tag.
package contributors

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/docsite/pkg/logger"
)

//go:embed contributors.json
var embeddedList []byte

// ErrNoContributors means the source produced an empty list.
var ErrNoContributors = errors.New("contributor list is empty")

// Contributor is one credited person. Only Name feeds the site config; the
// profile fields are carried for other consumers of the same file.
type Contributor struct {
	Name    string `json:"name" yaml:"name"`
	GitHub  string `json:"github,omitempty" yaml:"github,omitempty"`
	Twitter string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Avatar  string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Provider yields contributors in credit order.
type Provider interface {
	Contributors(ctx context.Context) ([]Contributor, error)
}

// Names returns the trimmed Name of every contributor, in order.
func Names(list []Contributor) []string {
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = strings.TrimSpace(c.Name)
	}
	return names
}

// Decode parses a JSON or YAML sequence of contributors. JSON goes through
// the YAML decoder since it is a subset.
func Decode(data []byte) ([]Contributor, error) {
	var list []Contributor
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode contributors: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrNoContributors
	}
	return list, nil
}

// Embedded is the list compiled into the binary.
type Embedded struct{}

// Contributors implements Provider.
func (Embedded) Contributors(ctx context.Context) ([]Contributor, error) {
	list, err := Decode(embeddedList)
	if err != nil {
		return nil, fmt.Errorf("embedded contributors: %w", err)
	}
	logger.FromContext(ctx).V(1).Info("loaded contributors", "source", "embedded", "count", len(list))
	return list, nil
}

// File reads contributors from a JSON or YAML file.
type File struct {
	Path string
}

// Contributors implements Provider.
func (f File) Contributors(ctx context.Context) ([]Contributor, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read contributors %s: %w", f.Path, err)
	}
	list, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	logger.FromContext(ctx).V(1).Info("loaded contributors", "source", f.Path, "count", len(list))
	return list, nil
}

// Static is a fixed list.
type Static []Contributor

// Contributors implements Provider.
func (s Static) Contributors(_ context.Context) ([]Contributor, error) {
	if len(s) == 0 {
		return nil, ErrNoContributors
	}
	return append([]Contributor(nil), s...), nil
}

// Resolve returns a File provider for a non-empty path and Embedded otherwise.
func Resolve(path string) Provider {
	if strings.TrimSpace(path) != "" {
		return File{Path: path}
	}
	return Embedded{}
}
