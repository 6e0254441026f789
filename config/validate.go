package config

import "github.com/fdmota/breeze.js/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return errors.NewInvalidConfigError("namespace cannot be empty")
	}
	if c.Input.File == "" {
		return errors.NewInvalidConfigError("input.file cannot be empty")
	}
	if c.Template.Path == "" {
		return errors.NewInvalidConfigError("template.path cannot be empty")
	}
	if c.Output.Path == "" {
		return errors.NewInvalidConfigError("output.path cannot be empty")
	}

	// An empty marker would make every method a constructor
	if c.Methods.CtorMarker == "" {
		return errors.NewInvalidConfigError("methods.ctor_marker cannot be empty")
	}

	switch c.Events.Routing {
	case EventRoutingLegacy, EventRoutingItemType:
	default:
		return errors.NewInvalidConfigError("events.routing must be %q or %q, got %q",
			EventRoutingLegacy, EventRoutingItemType, c.Events.Routing)
	}

	return nil
}
