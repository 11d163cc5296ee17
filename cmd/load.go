package cmd

import (
	"context"

	"github.com/oakwood-commons/docsite/pkg/contributors"
	"github.com/oakwood-commons/docsite/pkg/meta"
	"github.com/oakwood-commons/docsite/pkg/settings"
	"github.com/oakwood-commons/docsite/pkg/site"
	"github.com/oakwood-commons/docsite/pkg/version"
)

// sourcesFor turns the run settings into the providers site.Load reads.
func sourcesFor(run *settings.Run) site.Sources {
	return site.Sources{
		Version:      version.Resolve(run.Sources.VersionOverride, run.Sources.ManifestPath),
		Contributors: contributors.Resolve(run.Sources.ContributorsPath),
		Meta:         meta.Default(),
	}
}

// loadConfig builds the site configuration for the current run.
func loadConfig(ctx context.Context) (*site.Config, error) {
	run := settings.FromContextOrDefault(ctx)
	return site.Load(ctx, sourcesFor(run))
}

// inputPaths lists the input files a rebuild depends on.
func inputPaths(run *settings.Run) []string {
	var paths []string
	if p := run.Sources.ManifestPath; p != "" && run.Sources.VersionOverride == "" {
		paths = append(paths, p)
	}
	if p := run.Sources.ContributorsPath; p != "" {
		paths = append(paths, p)
	}
	return paths
}
