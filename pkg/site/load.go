package site

import (
	"context"

	"github.com/oakwood-commons/docsite/pkg/contributors"
	"github.com/oakwood-commons/docsite/pkg/logger"
	"github.com/oakwood-commons/docsite/pkg/meta"
	"github.com/oakwood-commons/docsite/pkg/version"
)

// Sources are the collaborators Load resolves Inputs from.
type Sources struct {
	Version      version.Provider
	Contributors contributors.Provider
	Meta         meta.Metadata
}

// DefaultSources uses the embedded manifest, the embedded contributor list
// and the published metadata.
func DefaultSources() Sources {
	return Sources{
		Version:      version.Manifest{},
		Contributors: contributors.Embedded{},
		Meta:         meta.Default(),
	}
}

// Load resolves every input and builds the configuration. Provider failures
// are reported as assembly errors for the corresponding field.
func Load(ctx context.Context, src Sources) (*Config, error) {
	lgr := logger.FromContext(ctx)

	if src.Version == nil {
		return nil, assemblyErr("version", "no version provider", nil)
	}
	if src.Contributors == nil {
		return nil, assemblyErr("contributors", "no contributor provider", nil)
	}

	v, err := src.Version.Version(ctx)
	if err != nil {
		return nil, assemblyErr("version", "", err)
	}
	people, err := src.Contributors.Contributors(ctx)
	if err != nil {
		return nil, assemblyErr("contributors", "", err)
	}

	cfg, err := Build(Inputs{Version: v, Contributors: people, Meta: src.Meta})
	if err != nil {
		return nil, err
	}
	lgr.V(1).Info("site configuration assembled",
		logger.SiteVersionKey, v,
		"contributors", len(people),
		"head_tags", len(cfg.Head),
		"nav_items", len(cfg.ThemeConfig.Nav),
	)
	return cfg, nil
}
