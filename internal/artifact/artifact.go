// Package artifact writes build outputs to disk.
package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/oakwood-commons/docsite/pkg/logger"
)

// FileName returns the artifact name for a serialization format.
func FileName(format string) string {
	return "config." + format
}

// Write stores data at path. The file is either fully replaced or left
// untouched; readers never observe a partial write.
func Write(ctx context.Context, path string, data []byte) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pf.Cleanup(); err != nil {
			log.V(1).Info("cleanup pending file", "path", path, "error", err.Error())
		}
	}()

	if _, err := pf.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	log.V(1).Info("artifact written", logger.ArtifactKey, path, "bytes", len(data))
	return nil
}
