// Package version resolves the semantic version of the documented package.
package version

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/oakwood-commons/docsite/pkg/logger"
)

//go:embed package.json
var embeddedManifest []byte

var (
	// ErrNoVersion means the source carried no version at all.
	ErrNoVersion = errors.New("package version is missing")
	// ErrInvalidVersion means the version is not a semantic version.
	ErrInvalidVersion = errors.New("package version is not a semantic version")
)

// Provider yields the package version string, without a leading "v".
type Provider interface {
	Version(ctx context.Context) (string, error)
}

// Normalize trims whitespace and a leading "v", then checks the result is a
// semantic version.
func Normalize(raw string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if v == "" {
		return "", ErrNoVersion
	}
	if !semver.IsValid("v" + v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}
	return v, nil
}

// Static is a fixed version, used for overrides.
type Static string

// Version implements Provider.
func (s Static) Version(_ context.Context) (string, error) {
	return Normalize(string(s))
}

// Manifest reads the version field of a package.json-style manifest. An
// empty Path selects the embedded manifest.
type Manifest struct {
	Path string
}

type manifestFile struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Version implements Provider.
func (m Manifest) Version(ctx context.Context) (string, error) {
	data := embeddedManifest
	source := "embedded package.json"
	if m.Path != "" {
		b, err := os.ReadFile(m.Path)
		if err != nil {
			return "", fmt.Errorf("read manifest %s: %w", m.Path, err)
		}
		data = b
		source = m.Path
	}

	var mf manifestFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return "", fmt.Errorf("decode manifest %s: %w", source, err)
	}
	v, err := Normalize(mf.Version)
	if err != nil {
		return "", fmt.Errorf("manifest %s: %w", source, err)
	}
	logger.FromContext(ctx).V(1).Info("resolved package version", "source", source, logger.SiteVersionKey, v)
	return v, nil
}

// Resolve picks the override when set, the manifest file otherwise.
func Resolve(override, manifestPath string) Provider {
	if strings.TrimSpace(override) != "" {
		return Static(override)
	}
	return Manifest{Path: manifestPath}
}
