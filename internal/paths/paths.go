// Package paths centralizes file and directory names used across the project.
// All data directory file names are defined here as the single source of truth.
package paths

import "path/filepath"

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Data directory file names.
const (
	ConfigFile     = "config.toml"
	LogFile        = "colorlit.log"
	ThemeFile      = "theme.toml"
	ThemeCacheFile = "theme-cache.toml"
	DataDirRel     = ".colorlit" // relative to $HOME
)

// LockFileFor returns the advisory lock file path guarding a theme file.
// For example, LockFileFor("/a/theme.toml") returns "/a/theme.toml.lock".
func LockFileFor(themePath string) string {
	return themePath + ".lock"
}

// ///////////////////////////////////////////////
// DataDir
// ///////////////////////////////////////////////

// DataDir provides path construction methods rooted at a data directory.
type DataDir struct {
	Root string
}

// Config returns the full path to the config file.
func (d DataDir) Config() string { return filepath.Join(d.Root, ConfigFile) }

// Log returns the full path to the log file.
func (d DataDir) Log() string { return filepath.Join(d.Root, LogFile) }

// ThemeCache returns the full path to the cached copy of the last fetched theme.
func (d DataDir) ThemeCache() string { return filepath.Join(d.Root, ThemeCacheFile) }

// Resolve returns p unchanged when absolute, otherwise joined onto the root.
func (d DataDir) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.Root, p)
}
