package paths

import (
	"path/filepath"
	"testing"
)

// ///////////////////////////////////////////////
// Constant Value Tests
// ///////////////////////////////////////////////

func TestConstantValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"DataDirRel", DataDirRel, ".colorlit"},
		{"ConfigFile", ConfigFile, "config.toml"},
		{"LogFile", LogFile, "colorlit.log"},
		{"ThemeFile", ThemeFile, "theme.toml"},
		{"ThemeCacheFile", ThemeCacheFile, "theme-cache.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// DataDir Method Tests
// ///////////////////////////////////////////////

func TestDataDirMethods(t *testing.T) {
	root := filepath.Join("home", "user", ".colorlit")
	d := DataDir{Root: root}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Config", d.Config(), filepath.Join(root, "config.toml")},
		{"Log", d.Log(), filepath.Join(root, "colorlit.log")},
		{"ThemeCache", d.ThemeCache(), filepath.Join(root, "theme-cache.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestDataDirResolve(t *testing.T) {
	root := t.TempDir()
	d := DataDir{Root: root}

	abs := filepath.Join(root, "elsewhere", "dark.toml")
	if got := d.Resolve(abs); got != abs {
		t.Errorf("Resolve(%q) = %q, want unchanged", abs, got)
	}
	if got, want := d.Resolve("dark.toml"), filepath.Join(root, "dark.toml"); got != want {
		t.Errorf("Resolve(dark.toml) = %q, want %q", got, want)
	}
	if got := d.Resolve(""); got != "" {
		t.Errorf("Resolve(\"\") = %q, want empty", got)
	}
}

func TestLockFileFor(t *testing.T) {
	if got := LockFileFor("theme.toml"); got != "theme.toml.lock" {
		t.Errorf("LockFileFor(theme.toml) = %q", got)
	}
}
