package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/oakwood-commons/docsite/pkg/logger"
	"github.com/oakwood-commons/docsite/pkg/settings"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile      string
	manifest        string
	contributors    string
	versionOverride string
	debug           bool
	noColor         bool
}

// flagKeys maps viper keys to the flag names that feed them. Keys without a
// flag on the running command come from env, the config file or defaults.
var flagKeys = map[string]string{
	"out":             "out",
	"format":          "format",
	"manifest":        "manifest",
	"contributors":    "contributors",
	"versionOverride": "version-override",
	"watchDebounce":   "debounce",
	"debug":           "debug",
	"noColor":         "no-color",
}

// NewRootCommand assembles the docsite command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: settings.CliBinaryName + " - builds the Spanish Vitest documentation site configuration",
		Long: settings.CliBinaryName + ` assembles the configuration consumed by the documentation site
generator: metadata, head tags, navigation, sidebar and footer. The result
can be written as an artifact, printed, queried with CEL, validated or
previewed as a single HTML page.`,
		Example: "\n  docsite build\n  docsite show -o tree\n  docsite get -e '_.themeConfig.nav.map(n, n.text)'\n  docsite validate --file .vitepress/dist-config/config.json\n",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeConfig(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./docsite.yaml)")
	root.PersistentFlags().StringVar(&opts.manifest, "manifest", "", "package manifest to read the version from (default: embedded)")
	root.PersistentFlags().StringVar(&opts.contributors, "contributors", "", "JSON or YAML contributor list (default: embedded)")
	root.PersistentFlags().StringVar(&opts.versionOverride, "version-override", "", "use this version instead of the manifest")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable color output")

	root.Version = cliVersionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newBuildCmd(),
		newShowCmd(),
		newGetCmd(),
		newValidateCmd(),
		newPreviewCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// initializeConfig layers flags over DOCSITE_* env vars over the config file
// over defaults, then stores the run settings and a logger in the command
// context.
func initializeConfig(cmd *cobra.Command, opts *rootOptions) error {
	v := viper.New()

	def := settings.NewCliParams()
	v.SetDefault("out", def.OutDir)
	v.SetDefault("format", def.Format)
	v.SetDefault("watchDebounce", def.WatchDebounce)

	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(settings.CliBinaryName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(settings.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	run := def
	run.OutDir = v.GetString("out")
	run.Format = v.GetString("format")
	run.NoColor = v.GetBool("noColor")
	run.WatchDebounce = v.GetDuration("watchDebounce")
	run.Sources = settings.Sources{
		ManifestPath:     v.GetString("manifest"),
		ContributorsPath: v.GetString("contributors"),
		VersionOverride:  v.GetString("versionOverride"),
	}
	if v.GetBool("debug") {
		run.MinLogLevel = -1
	}

	lgr := logger.Get(run.MinLogLevel)
	lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
	if used := v.ConfigFileUsed(); used != "" {
		lgr.V(1).Info("using config file", "path", used)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)
	return nil
}

// cliVersionString is the version line shared by --version and `version`.
func cliVersionString() string {
	vi := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)",
		settings.CliBinaryName, vi.BuildVersion, vi.Commit, vi.BuildTime, runtime.Version())
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the stdout width, or 0 when it is not a terminal.
func terminalWidth() int {
	if !isTerminal() {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// useColor reports whether output should be colored for this run.
func useColor(run *settings.Run) bool {
	return !run.NoColor && isTerminal()
}

// changed reports whether the named flag was set explicitly.
func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
