package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fdmota/breeze.js/config"
	"github.com/fdmota/breeze.js/errors"
	"github.com/fdmota/breeze.js/intellisense"
	"github.com/fdmota/breeze.js/logger"
)

const (
	flagConfig   = "config"
	flagVerbose  = "verbose"
	flagJSONLogs = "json-logs"
)

// flagKeys maps command flags to the config keys they override
var flagKeys = map[string]string{
	flagJSONLogs:      "log.json",
	"input-file":      "input.file",
	"output":          "output.path",
	"template":        "template.path",
	"namespace":       "namespace",
	"events-routing":  "events.routing",
	"reserved-prefix": "classes.reserved_prefix",
}

// AddPersistentFlags registers the flags every command accepts
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flagConfig, "", "Config file (default: "+config.ProjectConfigName+", searched upward)")
	cmd.PersistentFlags().CountP(flagVerbose, "v", "Increase log verbosity (-v info, -vv debug)")
	cmd.PersistentFlags().Bool(flagJSONLogs, false, "Emit logs as JSON")
}

// addGenerationFlags registers the flags of commands that run the pipeline
func addGenerationFlags(cmd *cobra.Command, withOutput bool) {
	cmd.Flags().String("input-file", "", "Document name inside the input directory (default: "+config.DefaultInputFile+")")
	cmd.Flags().StringP("template", "t", "", "Template file (default: "+config.DefaultTemplatePath+")")
	cmd.Flags().String("namespace", "", "Prefix of qualified type names (default: "+config.DefaultNamespace+")")
	cmd.Flags().String("events-routing", "", "Event discriminator: legacy or itemtype (default: legacy)")
	cmd.Flags().String("reserved-prefix", "", "Exclude classes whose name starts with this prefix")
	if withOutput {
		cmd.Flags().StringP("output", "o", "", "Output file (default: "+config.DefaultOutputPath+")")
	}
}

// InitLogging sets up the global logger from the persistent flags
func InitLogging(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount(flagVerbose)
	jsonLogs, _ := cmd.Flags().GetBool(flagJSONLogs)
	if err := logger.Initialize(jsonLogs, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}

// loadConfig resolves configuration for cmd: defaults, config file, env, then
// flags. A positional argument is the input directory.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	v, err := newCommandViper(cmd, args)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	// log.json may come from the config file after the logger was set up
	if cfg.Log.JSON && !logger.JSONOutput {
		verbosity, _ := cmd.Flags().GetCount(flagVerbose)
		if err := logger.Initialize(true, verbosity); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}

	return cfg, nil
}

func newCommandViper(cmd *cobra.Command, args []string) (*viper.Viper, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	v, err := config.NewViper(path)
	if err != nil {
		return nil, err
	}

	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "failed to bind flag --%s", name)
		}
	}

	if len(args) > 0 {
		v.Set("input.dir", args[0])
	}
	return v, nil
}

// generationOptions maps resolved configuration onto pipeline options
func generationOptions(cfg *config.Config) intellisense.Options {
	return intellisense.Options{
		InputDir:     cfg.Input.Dir,
		InputFile:    cfg.Input.File,
		TemplatePath: cfg.Template.Path,
		OutputPath:   cfg.Output.Path,
		Build: intellisense.BuildOptions{
			Namespace:             cfg.Namespace,
			ReservedPrefix:        cfg.Classes.ReservedPrefix,
			DisableReservedPrefix: cfg.Classes.ReservedPrefix == "",
			CtorMarker:            cfg.Methods.CtorMarker,
			EventRouting:          intellisense.EventRouting(cfg.Events.Routing),
		},
		Logger: logger.ComponentLogger("intellisense"),
	}
}
