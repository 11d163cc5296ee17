package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/docsite/internal/formatter"
	"github.com/oakwood-commons/docsite/internal/query"
	"github.com/oakwood-commons/docsite/pkg/settings"
)

func newGetCmd() *cobra.Command {
	var (
		expression    string
		listFunctions bool
	)
	out := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Evaluate a CEL expression against the site configuration",
		Long: `Evaluate a CEL expression with the configuration bound to '_'.
For keys that are not identifiers use bracket notation: _.themeConfig.sidebar["/"].`,
		Example: "\n  docsite get -e '_.themeConfig.nav.map(n, n.text)'\n  docsite get -e 'size(_.themeConfig.sidebar[\"/\"][0].items)'\n",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev, err := query.NewEvaluator()
			if err != nil {
				return err
			}
			if listFunctions {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ev.Functions(), "\n"))
				return nil
			}
			if strings.TrimSpace(expression) == "" {
				return errors.New("an expression is required (-e)")
			}

			ctx := cmd.Context()
			run := settings.FromContextOrDefault(ctx)
			format, opts, err := out.resolve(cmd, run)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			data, err := formatter.Generic(cfg)
			if err != nil {
				return err
			}
			result, err := ev.Evaluate(expression, data)
			if err != nil {
				return err
			}
			if s, ok := result.(string); ok && !changed(cmd.Flags(), "output") {
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}
			switch result.(type) {
			case map[string]interface{}, []interface{}:
			default:
				if format == formatter.Tree {
					format = formatter.JSON
				}
			}
			s, err := formatter.Format(result, format, opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&expression, "expression", "e", "", "CEL expression using '_' as root")
	cmd.Flags().BoolVar(&listFunctions, "functions", false, "list the functions available in expressions")
	out.register(cmd)
	return cmd
}
