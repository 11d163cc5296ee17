package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/docsite/internal/formatter"
	"github.com/oakwood-commons/docsite/pkg/logger"
	"github.com/oakwood-commons/docsite/pkg/settings"
	"github.com/oakwood-commons/docsite/pkg/site"
)

// errInvalid is returned after a FAIL report has been printed.
var errInvalid = errors.New("configuration is invalid")

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a built configuration or an artifact file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			run := settings.FromContextOrDefault(ctx)

			subject := "built configuration"
			var cfg *site.Config
			var err error
			if file != "" {
				subject = file
				cfg, err = readArtifact(file)
			} else {
				cfg, err = loadConfig(ctx)
			}
			if err != nil {
				return err
			}

			problems := site.Validate(cfg)
			issues := make([]string, 0, len(problems))
			for _, p := range problems {
				issues = append(issues, p.Error())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(subject, issues, useColor(run)))
			if len(issues) > 0 {
				logger.FromContext(ctx).V(1).Info("validation failed", logger.ArtifactKey, subject, "problems", len(issues))
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "artifact to validate (.json, .yaml, .yml or .toml) instead of a fresh build")
	return cmd
}

// readArtifact decodes a written artifact, choosing the codec by extension.
func readArtifact(path string) (*site.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var cfg site.Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		// TOML has no hook for the head tuple; go through the JSON model.
		var generic map[string]interface{}
		if err = toml.Unmarshal(data, &generic); err == nil {
			var b []byte
			if b, err = json.Marshal(generic); err == nil {
				err = json.Unmarshal(b, &cfg)
			}
		}
	default:
		return nil, fmt.Errorf("%w %q: cannot infer format from extension", formatter.ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &cfg, nil
}
