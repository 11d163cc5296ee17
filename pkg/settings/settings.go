// Package settings provides build metadata, per-run configuration, and
// context helpers shared by the docsite CLI and library packages.
package settings

import "time"

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "docsite"

// EnvPrefix is the prefix for environment overrides (DOCSITE_OUT, ...).
const EnvPrefix = "DOCSITE"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
// It describes the docsite tool itself, not the documented package.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Sources names the optional input files that replace the embedded defaults.
// An empty path means "use the embedded default".
type Sources struct {
	ManifestPath     string
	ContributorsPath string
	VersionOverride  string
}

// Run holds configuration settings for a single execution of the application.
type Run struct {
	MinLogLevel int8
	Sources     Sources
	OutDir      string
	Format      string
	NoColor     bool
	// WatchDebounce is the quiet period build --watch waits before rebuilding.
	WatchDebounce time.Duration
}

// NewCliParams returns the default settings for a CLI invocation.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		OutDir:      DefaultOutDir,
		Format:      DefaultFormat,
		NoColor:     false,

		WatchDebounce: DefaultWatchDebounce,
	}
}

const (
	// DefaultOutDir is where build writes the artifact unless told otherwise.
	DefaultOutDir = ".vitepress/dist-config"
	// DefaultFormat is the artifact serialization.
	DefaultFormat = "json"
	// DefaultWatchDebounce is the default quiet period for build --watch.
	DefaultWatchDebounce = 300 * time.Millisecond
)
