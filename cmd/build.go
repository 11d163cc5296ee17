package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/docsite/internal/artifact"
	"github.com/oakwood-commons/docsite/internal/formatter"
	"github.com/oakwood-commons/docsite/internal/watch"
	"github.com/oakwood-commons/docsite/pkg/logger"
	"github.com/oakwood-commons/docsite/pkg/settings"
)

var errNothingToWatch = errors.New("--watch needs --manifest or --contributors pointing at a file")

// artifactFormats are the serializations build can write.
var artifactFormats = []string{formatter.JSON, formatter.YAML, formatter.TOML}

func newBuildCmd() *cobra.Command {
	var watchInputs bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the site configuration artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			run := settings.FromContextOrDefault(ctx)

			format, err := artifactFormat(run.Format)
			if err != nil {
				return err
			}
			run.Format = format

			path, err := buildOnce(ctx, run)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if !watchInputs {
				return nil
			}
			paths := inputPaths(run)
			if len(paths) == 0 {
				return errNothingToWatch
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch.Run(ctx, paths, run.WatchDebounce, func(ctx context.Context) error {
				path, err := buildOnce(ctx, run)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}

	cmd.Flags().String("out", settings.DefaultOutDir, "output directory")
	cmd.Flags().String("format", settings.DefaultFormat, "artifact format: "+strings.Join(artifactFormats, "|"))
	cmd.Flags().BoolVar(&watchInputs, "watch", false, "rebuild when the manifest or contributor file changes")
	cmd.Flags().Duration("debounce", settings.DefaultWatchDebounce, "quiet period before a --watch rebuild")
	return cmd
}

// artifactFormat normalizes f and rejects formats that are not
// machine-readable.
func artifactFormat(f string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(f))
	for _, v := range artifactFormats {
		if norm == v {
			return norm, nil
		}
	}
	return "", fmt.Errorf("%w %q: build writes %s", formatter.ErrUnknownFormat, f, strings.Join(artifactFormats, ", "))
}

// buildOnce assembles, serializes and writes the artifact, returning its
// path. Nothing is written when assembly fails.
func buildOnce(ctx context.Context, run *settings.Run) (string, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return "", err
	}
	out, err := formatter.Format(cfg, run.Format, formatter.Options{})
	if err != nil {
		return "", err
	}
	path := filepath.Join(run.OutDir, artifact.FileName(run.Format))
	if err := artifact.Write(ctx, path, []byte(out)); err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info("configuration built", logger.ArtifactKey, path, logger.FormatKey, run.Format)
	return path, nil
}
