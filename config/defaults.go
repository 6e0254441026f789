package config

import (
	"github.com/spf13/viper"
)

// Default values, matching the layout the breeze build expects
const (
	DefaultNamespace      = "breeze"
	DefaultInputDir       = "."
	DefaultInputFile      = "data.json"
	DefaultTemplatePath   = "intellisense/intellisense.template.txt"
	DefaultOutputPath     = "breeze.intellisense.js"
	DefaultReservedPrefix = "ↈ"
	DefaultCtorMarker     = "<ctor>"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("namespace", DefaultNamespace)

	v.SetDefault("input.dir", DefaultInputDir)
	v.SetDefault("input.file", DefaultInputFile)

	v.SetDefault("template.path", DefaultTemplatePath)
	v.SetDefault("output.path", DefaultOutputPath)

	v.SetDefault("classes.reserved_prefix", DefaultReservedPrefix)
	v.SetDefault("methods.ctor_marker", DefaultCtorMarker)
	v.SetDefault("events.routing", EventRoutingLegacy)

	v.SetDefault("log.json", false)
}
