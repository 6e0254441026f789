package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fdmota/breeze.js/errors"
	"github.com/fdmota/breeze.js/intellisense"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check [input-dir]",
	Short: "Check that the intellisense file is up to date",
	Long: `Regenerate in memory and compare with the existing output file.

The "// Generated on:" line is ignored. Exits non-zero when the file is
missing or differs, so it can gate CI.

Examples:
  intellisense check docs/api
  intellisense check -o build/breeze.intellisense.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	addGenerationFlags(CheckCmd, true)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	result, err := intellisense.Check(cmd.Context(), generationOptions(cfg))
	if err != nil {
		return err
	}

	switch {
	case result.Missing:
		return errors.WithHint(
			errors.Newf("%s does not exist", result.OutputPath),
			"run 'intellisense generate' to create it")
	case !result.UpToDate:
		return errors.WithHint(
			errors.Newf("%s is out of date (first difference at line %d)", result.OutputPath, result.FirstDiffLine),
			"run 'intellisense generate' to update it")
	}

	pterm.Success.WithWriter(cmd.OutOrStdout()).Printf("%s is up to date\n", result.OutputPath)
	return nil
}
