package version

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain", input: "1.2.3", want: "1.2.3"},
		{name: "leading v", input: "v1.2.3", want: "1.2.3"},
		{name: "prerelease", input: " 0.25.0-beta.1 ", want: "0.25.0-beta.1"},
		{name: "empty", input: "  ", wantErr: ErrNoVersion},
		{name: "only v", input: "v", wantErr: ErrNoVersion},
		{name: "garbage", input: "latest", wantErr: ErrInvalidVersion},
		{name: "double v", input: "vv1.0.0", wantErr: ErrInvalidVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbeddedManifest(t *testing.T) {
	v, err := Manifest{}.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.25.2", v)
}

func TestManifestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"docs-es","version":"1.6.0"}`), 0o600))

	v, err := Manifest{Path: path}.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.6.0", v)
}

func TestManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Manifest{Path: filepath.Join(dir, "missing.json")}.Version(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)

	noVersion := filepath.Join(dir, "noversion.json")
	require.NoError(t, os.WriteFile(noVersion, []byte(`{"name":"docs-es"}`), 0o600))
	_, err = Manifest{Path: noVersion}.Version(context.Background())
	require.ErrorIs(t, err, ErrNoVersion)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"version":`), 0o600))
	_, err = Manifest{Path: broken}.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode manifest")
}

func TestResolve(t *testing.T) {
	v, err := Resolve("2.0.0", "ignored.json").Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", v)

	assert.Equal(t, Manifest{Path: "pkg.json"}, Resolve(" ", "pkg.json"))
}
