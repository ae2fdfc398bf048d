package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration with defaults applied. The schema already
// rejects most malformed values; this catches configs built in code.
func Validate(cfg *Config) error {
	if cfg.Output == nil {
		return nil
	}

	switch ColorMode(cfg.Output.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf(`must be "auto", "always" or "never", got %q`, cfg.Output.Color),
		}
	}

	if w := cfg.Output.SeparatorWidth; w < 20 || w > 200 {
		return &ValidationError{
			Field:   "output.separator_width",
			Message: fmt.Sprintf("must be between 20 and 200, got %d", w),
		}
	}

	return nil
}
