package config

import (
	"fmt"
	"strings"
)

// ConfigError aggregates configuration problems for one file.
type ConfigError struct {
	Path   string   // Config file path
	Errors []string // Validation errors, including unresolved variables
}

func (e *ConfigError) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}

	parts := []string{fmt.Sprintf("invalid configuration %s:", e.Path)}
	for _, err := range e.Errors {
		parts = append(parts, fmt.Sprintf("  - %s", err))
	}
	return strings.Join(parts, "\n")
}

// HasErrors returns true if there are any errors.
func (e *ConfigError) HasErrors() bool {
	return len(e.Errors) > 0
}
