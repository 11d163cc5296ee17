package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/docsite/internal/artifact"
	"github.com/oakwood-commons/docsite/internal/preview"
	"github.com/oakwood-commons/docsite/pkg/settings"
)

// previewFileName is the page preview writes into the output directory.
const previewFileName = "preview.html"

func newPreviewCmd() *cobra.Command {
	var markdownOnly bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write an HTML outline of the navigation and sidebar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			run := settings.FromContextOrDefault(ctx)
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			if markdownOnly {
				_, err := cmd.OutOrStdout().Write(preview.Markdown(cfg))
				return err
			}
			path := filepath.Join(run.OutDir, previewFileName)
			if err := artifact.Write(ctx, path, preview.HTML(cfg)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().String("out", settings.DefaultOutDir, "output directory")
	cmd.Flags().BoolVar(&markdownOnly, "markdown", false, "print the Markdown outline instead of writing HTML")
	return cmd
}
