package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fdmota/breeze.js/config"
	"github.com/fdmota/breeze.js/errors"
)

var configFormat string

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config [input-dir]",
	Short: "Show the resolved configuration",
	Long: `Display the configuration a generate run would use.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (INTELLISENSE_* prefix, e.g. INTELLISENSE_OUTPUT_PATH)
3. Project config (./intellisense.toml, searched up directories, or --config)
4. Default values

Examples:
  intellisense config                    # TOML, ready to save as intellisense.toml
  intellisense config --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	addGenerationFlags(ConfigCmd, true)
	ConfigCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# intellisense configuration\n%s", data)
	case "toml":
		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# intellisense configuration\n%s", data)
	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}
	return nil
}
