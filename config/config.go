// Package config loads the generator configuration.
//
// Precedence (lowest to highest): defaults < intellisense.toml < INTELLISENSE_* env vars < CLI flags.
package config

// Config represents the generator configuration
type Config struct {
	// Namespace is the literal prefix of qualified type names ("breeze" -> breeze.core.Entity)
	Namespace string         `mapstructure:"namespace" toml:"namespace"`
	Input     InputConfig    `mapstructure:"input" toml:"input"`
	Template  TemplateConfig `mapstructure:"template" toml:"template"`
	Output    OutputConfig   `mapstructure:"output" toml:"output"`
	Classes   ClassesConfig  `mapstructure:"classes" toml:"classes"`
	Methods   MethodsConfig  `mapstructure:"methods" toml:"methods"`
	Events    EventsConfig   `mapstructure:"events" toml:"events"`
	Log       LogConfig      `mapstructure:"log" toml:"log"`
}

// InputConfig locates the apidocs document
type InputConfig struct {
	Dir  string `mapstructure:"dir" toml:"dir"`   // directory yuidoc wrote to
	File string `mapstructure:"file" toml:"file"` // document name inside Dir (default: data.json)
}

// TemplateConfig locates the output template
type TemplateConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// OutputConfig locates the generated file
type OutputConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// ClassesConfig controls class registration
type ClassesConfig struct {
	// ReservedPrefix marks internal classes that never reach the output. Empty disables exclusion.
	ReservedPrefix string `mapstructure:"reserved_prefix" toml:"reserved_prefix"`
}

// MethodsConfig controls method classification
type MethodsConfig struct {
	CtorMarker string `mapstructure:"ctor_marker" toml:"ctor_marker"`
}

// EventsConfig controls event routing
type EventsConfig struct {
	// Routing selects which itemtype field marks an event: legacy or itemtype
	Routing string `mapstructure:"routing" toml:"routing"`
}

// LogConfig controls log output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json"`
}

// Event routing modes
const (
	// EventRoutingLegacy only honors the camel-case "itemType" field, which yuidoc never writes
	EventRoutingLegacy = "legacy"
	// EventRoutingItemType also honors the documented lowercase "itemtype" field
	EventRoutingItemType = "itemtype"
)

// ProjectConfigName is the file searched for from the working directory upward
const ProjectConfigName = "intellisense.toml"
