package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	for _, name := range c.MissingEnv {
		errs = append(errs, fmt.Sprintf("environment variable %s is referenced but not set", name))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.History.Path == "" {
		errs = append(errs, "history.path: required")
	}

	templates := map[string]string{
		"templates.video": c.Templates.Video,
		"templates.movie": c.Templates.Movie,
		"templates.music": c.Templates.Music,
		"templates.book":  c.Templates.Book,
		"templates.game":  c.Templates.Game,
	}
	for name, tmpl := range templates {
		if strings.Count(tmpl, "{") != strings.Count(tmpl, "}") {
			errs = append(errs, fmt.Sprintf("%s: unbalanced braces in %q", name, tmpl))
		}
		if tmpl != "" && filepath.Base(tmpl) != tmpl {
			errs = append(errs, fmt.Sprintf("%s: must not contain path separators", name))
		}
	}

	return errs
}
