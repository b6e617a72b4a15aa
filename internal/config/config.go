// Package config provides configuration loading and defaults for colorlit.
//
// Configuration is loaded from a TOML file in the user's data directory.
// It controls logging, how parsed colors are printed, where the active theme
// comes from, and which files the linter scans.
package config

//go:generate go run ../../cmd/genconfig

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/colorlit/csscolor"
	"tools.zach/dev/colorlit/internal/atomicfile"
	"tools.zach/dev/colorlit/internal/migrate"
	"tools.zach/dev/colorlit/internal/paths"
)

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level application configuration.
type Config struct {
	// Version is the config schema version used for migrations.
	Version int `toml:"version"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
	// Output holds settings for printing parsed colors.
	Output OutputConfig `toml:"output"`
	// Theme holds the theme source settings.
	Theme ThemeConfig `toml:"theme"`
	// Lint holds file selection for the literal linter.
	Lint LintConfig `toml:"lint"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `toml:"level"`
	// File sends logs to a rotating file in the data directory instead of stderr.
	File bool `toml:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// OutputConfig holds settings for printing parsed colors.
type OutputConfig struct {
	// Format selects how a color is printed: "hex", "channels", or "bytes".
	Format string `toml:"format"`
	// Swatch prints a colored block next to each color on capable terminals.
	Swatch bool `toml:"swatch"`
	// Fallback is the color literal substituted by non-strict parsing.
	Fallback string `toml:"fallback"`
}

// ThemeConfig holds settings for where the theme file is read from.
type ThemeConfig struct {
	// Source selects the theme source: "file" or "url".
	Source string `toml:"source"`
	// File is the theme path for source "file"; relative paths resolve
	// against the data directory.
	File string `toml:"file"`
	// URL is the theme location for source "url".
	URL string `toml:"url,omitempty"`
	// PollSeconds is the stat interval used when file events are unavailable.
	PollSeconds int `toml:"watch_poll_seconds"`
}

// LintConfig holds the glob patterns the linter scans.
type LintConfig struct {
	// Include lists doublestar patterns, relative to the lint root, of files to scan.
	Include []string `toml:"include"`
	// Exclude lists doublestar patterns that are skipped even when included.
	Exclude []string `toml:"exclude"`
}

// ///////////////////////////////////////////////
// Default Configuration
// ///////////////////////////////////////////////

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: migrate.Config.CurrentVersion,
		Log: LogConfig{
			Level:     "info",
			File:      false,
			MaxSizeMB: 10,
		},
		Output: OutputConfig{
			Format:   "hex",
			Swatch:   true,
			Fallback: "white",
		},
		Theme: ThemeConfig{
			Source:      "file",
			File:        paths.ThemeFile,
			PollSeconds: 2,
		},
		Lint: LintConfig{
			Include: []string{"**/*.css", "**/*.scss", "**/*.less", "**/*.svg", "**/*.toml"},
			Exclude: []string{"**/node_modules/**", "**/.git/**"},
		},
	}
}

// ExampleConfig returns a Config suitable for generating config.default.toml.
// For this project all defaults are good examples.
func ExampleConfig() *Config {
	return DefaultConfig()
}

// ///////////////////////////////////////////////
// PeekVersion
// ///////////////////////////////////////////////

// PeekVersion reads just the version field from raw TOML bytes.
// Returns 1 if the version field is missing or zero.
func PeekVersion(data []byte) int {
	var v struct {
		Version int `toml:"version"`
	}
	if err := toml.Unmarshal(data, &v); err != nil {
		return 1
	}
	if v.Version == 0 {
		return 1
	}
	return v.Version
}

// ///////////////////////////////////////////////
// Loading and Saving
// ///////////////////////////////////////////////

// Load reads and parses the configuration file from dataDir/config.toml.
// If the file doesn't exist, returns DefaultConfig.
func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, paths.ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	version := PeekVersion(data)
	migrated := migrate.Config.NeedsMigration(version)
	if migrated {
		if backupErr := os.WriteFile(path+".bak", data, 0o644); backupErr != nil {
			slog.Warn("failed to write config backup", "error", backupErr)
		}
		var migrateErr error
		data, _, migrateErr = migrate.Config.Run(data, version)
		if migrateErr != nil {
			return nil, fmt.Errorf("migrate config: %w", migrateErr)
		}
	}

	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key ignored", "key", key.String())
	}
	cfg.Version = migrate.Config.CurrentVersion

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if migrated {
		if err := cfg.Save(path); err != nil {
			slog.Warn("failed to save migrated config", "error", err)
		}
	}

	return cfg, nil
}

// Save writes the config to disk as TOML using atomic file write.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return atomicfile.Write(path, buf.Bytes(), 0o644)
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// validLogLevels is the set of level strings logger.ParseLevel understands.
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "fail": true,
}

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if !validLogLevels[strings.ToLower(strings.TrimSpace(c.Log.Level))] {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, error, or fail", c.Log.Level)
	}

	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}

	switch c.Output.Format {
	case "hex", "channels", "bytes":
	default:
		return fmt.Errorf("invalid output.format %q: must be hex, channels, or bytes", c.Output.Format)
	}

	if _, err := csscolor.TryParse(c.Output.Fallback); err != nil {
		return fmt.Errorf("invalid output.fallback: %w", err)
	}

	switch c.Theme.Source {
	case "file":
		if c.Theme.File == "" {
			return fmt.Errorf("theme.file must be set when theme.source is file")
		}
	case "url":
		if c.Theme.URL == "" {
			return fmt.Errorf("theme.url must be set when theme.source is url")
		}
	default:
		return fmt.Errorf("invalid theme.source %q: must be file or url", c.Theme.Source)
	}

	if c.Theme.PollSeconds <= 0 {
		return fmt.Errorf("theme.watch_poll_seconds must be > 0, got %d", c.Theme.PollSeconds)
	}

	for _, p := range c.Lint.Include {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid lint.include pattern %q", p)
		}
	}
	for _, p := range c.Lint.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid lint.exclude pattern %q", p)
		}
	}

	return nil
}

// ///////////////////////////////////////////////
// Helpers
// ///////////////////////////////////////////////

// FallbackColor returns the parsed output.fallback color, or opaque white if
// the literal is invalid (Validate rejects that case up front).
func (c *Config) FallbackColor() csscolor.Color {
	return csscolor.Parse(c.Output.Fallback)
}

// ThemePath returns the theme file path resolved against dataDir.
func (c *Config) ThemePath(dataDir string) string {
	return paths.DataDir{Root: dataDir}.Resolve(c.Theme.File)
}
