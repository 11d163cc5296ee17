package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntoContextRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{name: "empty_settings", settings: &Run{}},
		{
			name: "settings_with_sources",
			settings: &Run{
				NoColor: true,
				Format:  "yaml",
				Sources: Sources{ManifestPath: "package.json", VersionOverride: "1.2.3"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := IntoContext(context.Background(), tt.settings)
			got, ok := FromContext(ctx)
			require.True(t, ok)
			assert.Same(t, tt.settings, got)
		})
	}
}

func TestFromContextMissingOrWrongType(t *testing.T) {
	got, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)

	ctx := context.WithValue(context.Background(), runContextKey{}, "wrong type")
	got, ok = FromContext(ctx)
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok = FromContext(IntoContext(context.Background(), nil))
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFromContextOrDefault(t *testing.T) {
	def := FromContextOrDefault(context.Background())
	require.NotNil(t, def)
	assert.Equal(t, DefaultFormat, def.Format)
	assert.Equal(t, DefaultOutDir, def.OutDir)

	stored := &Run{Format: "toml"}
	got := FromContextOrDefault(IntoContext(context.Background(), stored))
	assert.Same(t, stored, got)
}
