package site

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/docsite/pkg/contributors"
	"github.com/oakwood-commons/docsite/pkg/meta"
	"github.com/oakwood-commons/docsite/pkg/version"
)

type failingContributors struct{ err error }

func (f failingContributors) Contributors(context.Context) ([]contributors.Contributor, error) {
	return nil, f.err
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), DefaultSources())
	require.NoError(t, err)
	assert.Equal(t, "v0.25.2", cfg.ThemeConfig.Nav[3].Text)
	assert.Contains(t, cfg.Head[3].Attrs["content"], "Anthony Fu, Matías Capeletto")
	assert.NoError(t, cfg.Validate())
}

func TestLoadMatchesBuild(t *testing.T) {
	src := Sources{
		Version:      version.Static("1.2.3"),
		Contributors: contributors.Static{{Name: "Alice"}, {Name: "Bob"}},
		Meta:         meta.Default(),
	}
	loaded, err := Load(context.Background(), src)
	require.NoError(t, err)
	built := mustBuild(t, testInputs())
	if diff := cmp.Diff(built, loaded); diff != "" {
		t.Fatalf("Load and Build disagree (-build +load):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		src       Sources
		wantField string
		wantCause error
	}{
		{
			name:      "nil version provider",
			src:       Sources{Contributors: contributors.Embedded{}, Meta: meta.Default()},
			wantField: "version",
		},
		{
			name:      "nil contributor provider",
			src:       Sources{Version: version.Static("1.0.0"), Meta: meta.Default()},
			wantField: "contributors",
		},
		{
			name:      "bad version",
			src:       Sources{Version: version.Static("x"), Contributors: contributors.Embedded{}, Meta: meta.Default()},
			wantField: "version",
			wantCause: version.ErrInvalidVersion,
		},
		{
			name:      "contributor failure",
			src:       Sources{Version: version.Static("1.0.0"), Contributors: failingContributors{err: boom}, Meta: meta.Default()},
			wantField: "contributors",
			wantCause: boom,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.src)
			require.ErrorIs(t, err, ErrConfigurationAssembly)
			var ae *AssemblyError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.wantField, ae.Field)
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
		})
	}
}
