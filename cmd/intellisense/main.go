package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fdmota/breeze.js/cmd/intellisense/commands"
	"github.com/fdmota/breeze.js/logger"
)

var rootCmd = &cobra.Command{
	Use:   "intellisense",
	Short: "Generate editor intellisense annotations for breeze",
	Long: `intellisense - Editor intellisense annotations from yuidoc output.

Reads the data.json document yuidoc writes, resolves every class and class
item into a model, and renders that model through a template into a
JavaScript file of intellisense.annotate(...) calls.

Available commands:
  generate - Build the intellisense file
  check    - Verify the intellisense file is up to date
  inspect  - Show what the apidocs document contains
  template - Print the built-in template
  config   - Show the resolved configuration
  version  - Show version information

Examples:
  intellisense generate docs/api          # Read docs/api/data.json
  intellisense generate -o out/breeze.intellisense.js
  intellisense check docs/api             # Exit non-zero when stale
  intellisense inspect docs/api --format json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: commands.InitLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	commands.AddPersistentFlags(rootCmd)

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.TemplateCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
