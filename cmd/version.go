package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/docsite/pkg/site"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docsite version and the documented package version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "site %s\n", siteVersion(cfg))
			return nil
		},
	}
}

// siteVersion returns the version label shown in the navigation.
func siteVersion(cfg *site.Config) string {
	for _, n := range cfg.ThemeConfig.Nav {
		if n.IsGroup() {
			return n.Text
		}
	}
	return ""
}
