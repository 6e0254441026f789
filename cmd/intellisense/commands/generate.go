package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fdmota/breeze.js/intellisense"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate [input-dir]",
	Short: "Generate the intellisense file from yuidoc output",
	Long: `Generate the intellisense file from the apidocs document yuidoc wrote.

The input directory defaults to input.dir from intellisense.toml (or ".").
Classes are registered first, then every class item is attached to its
class, so items may reference classes declared anywhere in the document.
Type names that match a registered class are qualified as
<namespace>.<module>.<class>.

Examples:
  intellisense generate docs/api
  intellisense generate docs/api -o build/breeze.intellisense.js
  intellisense generate --events-routing itemtype`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	addGenerationFlags(GenerateCmd, true)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	result, err := intellisense.Generate(cmd.Context(), generationOptions(cfg))
	if err != nil {
		return err
	}

	stats := result.Model.Stats()
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printf("Generated %s (%d classes in %d modules)\n",
		result.OutputPath, stats.Classes, stats.Modules)
	if skipped := stats.Unassigned + stats.UnknownModule; skipped > 0 {
		pterm.Warning.WithWriter(cmd.OutOrStdout()).Printf("%d class items skipped (run 'intellisense inspect' for details)\n", skipped)
	}
	return nil
}
