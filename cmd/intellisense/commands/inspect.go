package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fdmota/breeze.js/apidocs"
	"github.com/fdmota/breeze.js/errors"
	"github.com/fdmota/breeze.js/intellisense"
)

var inspectFormat string

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect [input-dir]",
	Short: "Show the model built from an apidocs document",
	Long: `Build the model without rendering and report what it holds.

Lists each module with its member counts, then every class item that could
not be attached: items naming an unknown class, items naming an unknown
module, and class names declared twice.

Examples:
  intellisense inspect docs/api
  intellisense inspect docs/api --format json > model.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	addGenerationFlags(InspectCmd, false)
	InspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "table", "Output format: table, json, yaml")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	model, err := intellisense.LoadModel(cmd.Context(), generationOptions(cfg))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch inspectFormat {
	case "json":
		data, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal model to JSON")
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(model)
		if err != nil {
			return errors.Wrap(err, "failed to marshal model to YAML")
		}
		fmt.Fprint(out, string(data))
	case "table":
		return renderInspectTables(out, model)
	default:
		return errors.Newf("unsupported format: %s (supported: table, json, yaml)", inspectFormat)
	}
	return nil
}

func renderInspectTables(out io.Writer, model *intellisense.Model) error {
	modules := pterm.TableData{{"Module", "Classes", "Properties", "Methods", "Constructors", "Events"}}
	for _, m := range model.Modules {
		var props, methods, ctors, events int
		for _, c := range m.Classes {
			props += len(c.Properties) + len(c.StaticProperties)
			methods += len(c.Methods) + len(c.StaticMethods)
			events += len(c.Events)
			if c.Constructor != nil {
				ctors++
			}
		}
		modules = append(modules, []string{
			m.Name, strconv.Itoa(len(m.Classes)), strconv.Itoa(props),
			strconv.Itoa(methods), strconv.Itoa(ctors), strconv.Itoa(events),
		})
	}

	stats := model.Stats()
	modules = append(modules, []string{
		"total", strconv.Itoa(stats.Classes), strconv.Itoa(stats.Properties),
		strconv.Itoa(stats.Methods), strconv.Itoa(stats.Constructors), strconv.Itoa(stats.Events),
	})

	if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(modules).Render(); err != nil {
		return errors.Wrap(err, "failed to render module table")
	}

	if err := renderItems(out, "Items naming an unknown class", model.UnassignedItems); err != nil {
		return err
	}
	if err := renderItems(out, "Items naming an unknown module", model.ItemsForUnknownModule); err != nil {
		return err
	}

	if len(model.DuplicateClasses) > 0 {
		fmt.Fprintln(out)
		pterm.Warning.WithWriter(out).Printf("%d duplicate class declarations\n", len(model.DuplicateClasses))
		dups := pterm.TableData{{"Module", "Class"}}
		for _, d := range model.DuplicateClasses {
			dups = append(dups, []string{d.Module, d.Name})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(dups).Render(); err != nil {
			return errors.Wrap(err, "failed to render duplicate table")
		}
	}
	return nil
}

func renderItems(out io.Writer, title string, items []apidocs.RawClassItem) error {
	if len(items) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	pterm.Info.WithWriter(out).Printf("%s: %d\n", title, len(items))
	data := pterm.TableData{{"Module", "Class", "Item", "Itemtype"}}
	for _, item := range items {
		data = append(data, []string{item.Module, item.Class, item.Name, item.ItemType})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render(); err != nil {
		return errors.Wrapf(err, "failed to render %s", title)
	}
	return nil
}
