package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/docsite/internal/formatter"
	"github.com/oakwood-commons/docsite/pkg/settings"
)

// outputOptions are the rendering flags shared by show and get.
type outputOptions struct {
	output           string
	treeNoValues     bool
	treeMaxDepth     int
	treeExpandArrays bool
	treeArrayInline  int
	treeMaxString    int
	arrayStyle       string
	yamlIndent       int
	yamlLiteral      bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "auto", "output format: auto|"+strings.Join(formatter.ValidFormats, "|"))
	cmd.Flags().BoolVar(&o.treeNoValues, "tree-no-values", false, "show structure only (hide values) in tree output")
	cmd.Flags().IntVar(&o.treeMaxDepth, "tree-depth", 0, "limit tree depth (0 = unlimited)")
	cmd.Flags().BoolVar(&o.treeExpandArrays, "tree-expand-arrays", false, "expand all array elements instead of showing inline/summary")
	cmd.Flags().IntVar(&o.treeArrayInline, "tree-array-inline", 3, "max scalar array elements shown inline in tree output")
	cmd.Flags().IntVar(&o.treeMaxString, "tree-max-string", 0, "max value width in tree output (0=auto, -1=unlimited)")
	cmd.Flags().StringVar(&o.arrayStyle, "array-style", "index", "array index style in tree output: "+strings.Join(formatter.ValidArrayStyles, ", "))
	cmd.Flags().IntVar(&o.yamlIndent, "yaml-indent", 2, "indentation width in yaml output")
	cmd.Flags().BoolVar(&o.yamlLiteral, "yaml-literal-strings", false, "render multi-line strings as literal blocks in yaml output")
}

// resolve picks the concrete format and formatter options for this run.
// "auto" means a tree on a terminal and JSON otherwise.
func (o *outputOptions) resolve(cmd *cobra.Command, run *settings.Run) (string, formatter.Options, error) {
	format := strings.ToLower(strings.TrimSpace(o.output))
	if format == "" || format == "auto" || !changed(cmd.Flags(), "output") {
		format = formatter.JSON
		if isTerminal() {
			format = formatter.Tree
		}
	}
	if err := formatter.ValidateFormat(format); err != nil {
		return "", formatter.Options{}, err
	}
	if err := formatter.ValidateArrayStyle(o.arrayStyle); err != nil {
		return "", formatter.Options{}, err
	}
	if o.treeArrayInline < 1 {
		return "", formatter.Options{}, fmt.Errorf("--tree-array-inline must be at least 1, got %d", o.treeArrayInline)
	}
	opts := formatter.Options{
		YAML: formatter.YAMLFormatOptions{
			Indent:              o.yamlIndent,
			LiteralBlockStrings: o.yamlLiteral,
		},
		Tree: formatter.TreeOptions{
			NoValues:       o.treeNoValues,
			MaxDepth:       o.treeMaxDepth,
			ExpandArrays:   o.treeExpandArrays,
			MaxArrayInline: o.treeArrayInline,
			MaxStringLen:   treeMaxString(o.treeMaxString, terminalWidth()),
			ArrayStyle:     o.arrayStyle,
			Color:          useColor(run),
		},
	}
	return format, opts, nil
}

// treeMaxString turns the --tree-max-string flag into a truncation width.
// 0 means auto: half the terminal width, at least 20, and no limit when the
// width is unknown. Negative means unlimited.
func treeMaxString(flag, width int) int {
	switch {
	case flag > 0:
		return flag
	case flag < 0 || width <= 0:
		return 0
	}
	if half := width / 2; half > 20 {
		return half
	}
	return 20
}

func newShowCmd() *cobra.Command {
	out := &outputOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the site configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			s, err := formatter.Format(cfg, format, opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}
	out.register(cmd)
	return cmd
}
