package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/marshallshelly/domino/pkg/introspect"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration and joins every problem found.
// A missing database URL is not an error here; commands that introspect check it.
func (c *Config) Validate() error {
	var errs []error

	if c.Database.Driver != "" && !slices.Contains(introspect.Drivers, introspect.NormalizeDriver(c.Database.Driver)) {
		errs = append(errs, ValidationError{
			Field:   "database.driver",
			Message: fmt.Sprintf("unsupported driver %q", c.Database.Driver),
			Hint:    "use one of " + strings.Join(introspect.Drivers, ", "),
		})
	}

	switch c.Model.Generator {
	case ModelGeneratorCommand:
		if len(c.Model.CommandArgs()) == 0 {
			errs = append(errs, ValidationError{
				Field:   "model.command",
				Message: "must not be empty when model.generator is command",
			})
		}
	case ModelGeneratorTemplate:
	default:
		errs = append(errs, ValidationError{
			Field:   "model.generator",
			Message: fmt.Sprintf("unknown generator %q", c.Model.Generator),
			Hint:    "use command or template",
		})
	}

	if c.Registrar.Enabled && strings.TrimSpace(c.Registrar.Path) == "" {
		errs = append(errs, ValidationError{
			Field:   "registrar.path",
			Message: "must not be empty when registration is enabled",
		})
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("unknown format %q", c.Log.Format),
			Hint:    "use text or json",
		})
	}

	return errors.Join(errs...)
}
