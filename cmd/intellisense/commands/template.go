package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fdmota/breeze.js/errors"
	"github.com/fdmota/breeze.js/intellisense"
)

var templateWrite string

// TemplateCmd represents the template command
var TemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the built-in template",
	Long: `Print the template the generator ships with.

The model handed to the template has Namespace, GeneratedAt and Modules;
each module has Name and Classes. Sprig functions are available, plus
paramNames and typeAttrs.

Examples:
  intellisense template > intellisense/intellisense.template.txt
  intellisense template --write intellisense/intellisense.template.txt`,
	Args: cobra.NoArgs,
	RunE: runTemplate,
}

func init() {
	TemplateCmd.Flags().StringVarP(&templateWrite, "write", "w", "", "Write the template to this path instead of stdout")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if templateWrite == "" {
		fmt.Fprint(cmd.OutOrStdout(), intellisense.DefaultTemplate)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(templateWrite), 0755); err != nil {
		return errors.Wrap(err, "failed to create template directory")
	}
	if err := os.WriteFile(templateWrite, []byte(intellisense.DefaultTemplate), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", templateWrite)
	}
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printf("Wrote %s\n", templateWrite)
	return nil
}
