// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"mediasort/internal/namegen"
	"mediasort/internal/organize"
)

// Config is the root configuration structure.
type Config struct {
	Templates TemplatesConfig `toml:"templates"`
	Behavior  BehaviorConfig  `toml:"behavior"`
	History   HistoryConfig   `toml:"history"`
	Log       LogConfig       `toml:"log"`

	// MissingEnv lists ${VAR} references that had no value at load time.
	MissingEnv []string `toml:"-"`
}

// TemplatesConfig holds the per-media naming templates. Empty values use
// the built-in defaults.
type TemplatesConfig struct {
	Video string `toml:"video"`
	Movie string `toml:"movie"`
	Music string `toml:"music"`
	Book  string `toml:"book"`
	Game  string `toml:"game"`
}

type BehaviorConfig struct {
	CreateFolders      bool `toml:"create_folders"`
	SkipDuplicates     bool `toml:"skip_duplicates"`
	BackupBeforeRename bool `toml:"backup_before_rename"`
	StrictTitleMatch   bool `toml:"strict_title_match"`
	LogOperations      bool `toml:"log_operations"`
}

type HistoryConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Behavior: BehaviorConfig{
			CreateFolders: true,
			LogOperations: true,
		},
		History: HistoryConfig{Path: "./data/mediasort.db"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads and parses the configuration file. Absent keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.MissingEnv = missing

	return cfg, nil
}

// OrganizeOptions maps the configuration onto organizer options.
func (c *Config) OrganizeOptions() organize.Options {
	return organize.Options{
		Templates: namegen.Templates{
			Series: c.Templates.Video,
			Movie:  c.Templates.Movie,
			Music:  c.Templates.Music,
			Book:   c.Templates.Book,
			Game:   c.Templates.Game,
		},
		CreateFolders:      c.Behavior.CreateFolders,
		SkipDuplicates:     c.Behavior.SkipDuplicates,
		BackupBeforeRename: c.Behavior.BackupBeforeRename,
		StrictTitleMatch:   c.Behavior.StrictTitleMatch,
		LogOperations:      c.Behavior.LogOperations,
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unresolved references are left in place and reported.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return result, missing
}
