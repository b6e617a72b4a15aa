// Tests for the config package covering [Load] behavior (defaults, overrides,
// missing files, malformed input, migration), validation ([Config.Validate]),
// helpers ([Config.FallbackColor], [Config.ThemePath]), serialization
// round-trips ([Config.Save]), and [ConfigDocs] completeness.

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/colorlit/csscolor"
	"tools.zach/dev/colorlit/internal/logger"
)

// ///////////////////////////////////////////////
// Load
// ///////////////////////////////////////////////

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		config  string // config file content; empty means no file written
		noFile  bool   // if true, skip writing a config file
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:   "defaults from minimal config",
			config: "version = 1\n",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				def := DefaultConfig()
				if cfg.Output.Format != def.Output.Format {
					t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, def.Output.Format)
				}
				if cfg.Theme.PollSeconds != def.Theme.PollSeconds {
					t.Errorf("PollSeconds = %d, want %d", cfg.Theme.PollSeconds, def.Theme.PollSeconds)
				}
			},
		},
		{
			name: "user overrides applied",
			config: `
version = 1

[output]
format = "bytes"
swatch = false
fallback = "#ff00ff"

[theme]
source = "url"
url = "https://example.com/theme.toml"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Output.Format != "bytes" {
					t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "bytes")
				}
				if cfg.Output.Swatch {
					t.Error("Output.Swatch = true, want false")
				}
				if got := cfg.FallbackColor(); got != csscolor.Parse("magenta") {
					t.Errorf("FallbackColor() = %v, want magenta", got)
				}
				if cfg.Theme.Source != "url" || cfg.Theme.URL != "https://example.com/theme.toml" {
					t.Errorf("Theme = %+v, want url source", cfg.Theme)
				}
			},
		},
		{
			name: "partial override preserves other defaults",
			config: `
version = 1

[log]
level = "debug"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Log.Level != "debug" {
					t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
				}
				def := DefaultConfig()
				if cfg.Log.MaxSizeMB != def.Log.MaxSizeMB {
					t.Errorf("MaxSizeMB = %d, want %d", cfg.Log.MaxSizeMB, def.Log.MaxSizeMB)
				}
				if len(cfg.Lint.Include) != len(def.Lint.Include) {
					t.Errorf("Lint.Include = %v, want %v", cfg.Lint.Include, def.Lint.Include)
				}
			},
		},
		{
			name:   "missing file returns defaults",
			noFile: true,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if !reflect.DeepEqual(cfg, DefaultConfig()) {
					t.Errorf("Load() = %+v, want defaults", cfg)
				}
			},
		},
		{
			name:    "malformed TOML",
			config:  "version = 1\n[output\nformat = ",
			wantErr: true,
		},
		{
			name:    "invalid value fails validation",
			config:  "version = 1\n[output]\nformat = \"rgb\"\n",
			wantErr: true,
		},
		{
			name:    "invalid fallback literal fails validation",
			config:  "version = 1\n[output]\nfallback = \"notacolor\"\n",
			wantErr: true,
		},
		{
			name:    "newer version rejected",
			config:  "version = 99\n",
			wantErr: true,
		},
		{
			name: "unknown keys are ignored",
			config: `
version = 1
colour = "red"

[output]
format = "channels"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Output.Format != "channels" {
					t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "channels")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if !tt.noFile {
				writeConfig(t, dir, tt.config)
			}

			cfg, err := Load(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// ///////////////////////////////////////////////
// Migration integration
// ///////////////////////////////////////////////

func TestLoad_Migration(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantVersion int
	}{
		{
			name: "missing version normalized",
			config: `
[output]
format = "hex"
`,
			wantVersion: 1,
		},
		{
			name:        "skips migration when current",
			config:      "version = 1",
			wantVersion: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.config)

			cfg, err := Load(dir)
			if err != nil {
				t.Fatalf("Load: %v", err)
				return
			}
			if cfg.Version != tt.wantVersion {
				t.Errorf("Version = %d, want %d", cfg.Version, tt.wantVersion)
			}
		})
	}
}

// ///////////////////////////////////////////////
// PeekVersion
// ///////////////////////////////////////////////

func TestPeekVersion(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{
			name: "reads version from TOML",
			data: "version = 3\n[output]\nformat = \"hex\"\n",
			want: 3,
		},
		{
			name: "missing version returns 1",
			data: "[output]\nformat = \"hex\"\n",
			want: 1, // normalized from 0
		},
		{
			name: "garbage returns 1",
			data: "version = = =",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeekVersion([]byte(tt.data))
			if got != tt.want {
				t.Errorf("PeekVersion() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// ExampleConfig
// ///////////////////////////////////////////////

func TestExampleConfig(t *testing.T) {
	cfg := ExampleConfig()
	if cfg == nil {
		t.Fatal("ExampleConfig returned nil")
		return
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("ExampleConfig does not validate: %v", err)
	}
	var buf strings.Builder
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		t.Fatalf("failed to marshal ExampleConfig: %v", err)
	}
}

// ///////////////////////////////////////////////
// ConfigDocs completeness
// ///////////////////////////////////////////////

func TestConfigDocsComplete(t *testing.T) {
	fields := collectTOMLFields(reflect.TypeOf(Config{}), "")
	for _, field := range fields {
		if _, ok := ConfigDocs[field]; !ok {
			t.Errorf("ConfigDocs missing entry for field %q", field)
		}
	}
}

// collectTOMLFields recursively walks a struct type and returns the
// dot-separated TOML key path for every tagged field. Used by
// TestConfigDocsComplete to verify that [ConfigDocs] covers all fields.
func collectTOMLFields(typ reflect.Type, prefix string) []string {
	var fields []string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("toml")
		if tag == "" || tag == "-" {
			continue
		}
		// Strip options like ",omitempty"
		if idx := strings.Index(tag, ","); idx != -1 {
			tag = tag[:idx]
		}
		path := tag
		if prefix != "" {
			path = prefix + "." + tag
		}
		if f.Type.Kind() == reflect.Struct {
			fields = append(fields, collectTOMLFields(f.Type, path)...)
		} else {
			fields = append(fields, path)
		}
	}
	return fields
}

// ///////////////////////////////////////////////
// Marshal field order
// ///////////////////////////////////////////////

func TestConfigMarshalFieldOrder(t *testing.T) {
	cfg := DefaultConfig()
	var buf strings.Builder
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := buf.String()

	tests := []struct {
		name   string
		before string
		after  string
	}{
		{name: "version before [log]", before: "version", after: "[log]"},
		{name: "[log] before [output]", before: "[log]", after: "[output]"},
		{name: "[output] before [theme]", before: "[output]", after: "[theme]"},
		{name: "[theme] before [lint]", before: "[theme]", after: "[lint]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bIdx := strings.Index(out, tt.before)
			aIdx := strings.Index(out, tt.after)
			if bIdx < 0 || aIdx < 0 || bIdx > aIdx {
				t.Errorf("expected %q before %q in marshaled output", tt.before, tt.after)
			}
		})
	}
}

func TestConfigMarshalOmitsEmptyURL(t *testing.T) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(DefaultConfig()); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(buf.String(), "url =") {
		t.Errorf("empty theme.url should be omitted:\n%s", buf.String())
	}
}

// ///////////////////////////////////////////////
// Save
// ///////////////////////////////////////////////

func TestConfig_Save_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	orig := DefaultConfig()
	orig.Output.Format = "channels"
	orig.Output.Fallback = "rebeccapurple"
	orig.Lint.Exclude = []string{"vendor/**"}

	if err := orig.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
		return
	}

	loaded := DefaultConfig()
	if err := toml.Unmarshal(data, loaded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
		return
	}

	if !reflect.DeepEqual(loaded, orig) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", loaded, orig)
	}
}

// ///////////////////////////////////////////////
// Validate
// ///////////////////////////////////////////////

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "default config passes",
			setup:   func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid log.level",
			setup:   func(cfg *Config) { cfg.Log.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "uppercase log.level accepted",
			setup:   func(cfg *Config) { cfg.Log.Level = "WARN" },
			wantErr: false,
		},
		{
			name:    "max_size_mb = 0",
			setup:   func(cfg *Config) { cfg.Log.MaxSizeMB = 0 },
			wantErr: true,
		},
		{
			name:    "invalid output.format",
			setup:   func(cfg *Config) { cfg.Output.Format = "rgb" },
			wantErr: true,
		},
		{
			name:    "invalid output.fallback",
			setup:   func(cfg *Config) { cfg.Output.Fallback = "#12" },
			wantErr: true,
		},
		{
			name:    "named fallback",
			setup:   func(cfg *Config) { cfg.Output.Fallback = "Black" },
			wantErr: false,
		},
		{
			name:    "invalid theme.source",
			setup:   func(cfg *Config) { cfg.Theme.Source = "git" },
			wantErr: true,
		},
		{
			name:    "url source without url",
			setup:   func(cfg *Config) { cfg.Theme.Source = "url" },
			wantErr: true,
		},
		{
			name:    "file source without file",
			setup:   func(cfg *Config) { cfg.Theme.File = "" },
			wantErr: true,
		},
		{
			name:    "negative watch_poll_seconds",
			setup:   func(cfg *Config) { cfg.Theme.PollSeconds = -1 },
			wantErr: true,
		},
		{
			name:    "bad include pattern",
			setup:   func(cfg *Config) { cfg.Lint.Include = []string{"[a-"} },
			wantErr: true,
		},
		{
			name:    "bad exclude pattern",
			setup:   func(cfg *Config) { cfg.Lint.Exclude = []string{"{a,b"} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.setup(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_EnumPositive(t *testing.T) {
	tests := []struct {
		name  string
		setup func(cfg *Config)
	}{
		// output.format
		{name: "output.format hex", setup: func(cfg *Config) { cfg.Output.Format = "hex" }},
		{name: "output.format channels", setup: func(cfg *Config) { cfg.Output.Format = "channels" }},
		{name: "output.format bytes", setup: func(cfg *Config) { cfg.Output.Format = "bytes" }},
		// theme.source
		{name: "theme.source file", setup: func(cfg *Config) { cfg.Theme.Source = "file" }},
		{name: "theme.source url", setup: func(cfg *Config) {
			cfg.Theme.Source = "url"
			cfg.Theme.URL = "https://example.com/t.toml"
		}},
		// log.level
		{name: "log.level trace", setup: func(cfg *Config) { cfg.Log.Level = "trace" }},
		{name: "log.level error", setup: func(cfg *Config) { cfg.Log.Level = "error" }},
		{name: "log.level fail", setup: func(cfg *Config) { cfg.Log.Level = "fail" }},
		{name: "log.level warning", setup: func(cfg *Config) { cfg.Log.Level = "warning" }},
		{name: "log.level padded", setup: func(cfg *Config) { cfg.Log.Level = " Debug " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.setup(cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() returned error for valid enum: %v", err)
			}
		})
	}
}

// ///////////////////////////////////////////////
// Helpers
// ///////////////////////////////////////////////

func TestConfig_FallbackColor(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FallbackColor(); got != csscolor.White {
		t.Errorf("default FallbackColor() = %v, want white", got)
	}
	cfg.Output.Fallback = "#00000080"
	if got := cfg.FallbackColor().Hex(); got != "#00000080" {
		t.Errorf("FallbackColor().Hex() = %q, want %q", got, "#00000080")
	}
}

func TestConfig_ThemePath(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	if got, want := cfg.ThemePath(dir), filepath.Join(dir, "theme.toml"); got != want {
		t.Errorf("ThemePath() = %q, want %q", got, want)
	}
	abs := filepath.Join(t.TempDir(), "elsewhere.toml")
	cfg.Theme.File = abs
	if got := cfg.ThemePath(dir); got != abs {
		t.Errorf("ThemePath() = %q, want %q", got, abs)
	}
}

// writeConfig writes a TOML config string to config.toml in dir for use
// by [Load] in test cases.
func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

// Every level Validate accepts must map to a real logger level, so a config
// that loads never silently falls back to info.
func TestValidLogLevelsMatchLogger(t *testing.T) {
	for level := range validLogLevels {
		if level != "info" && logger.ParseLevel(level) == logger.ParseLevel("info") {
			t.Errorf("log.level %q passes Validate but logger.ParseLevel treats it as info", level)
		}
	}
	for _, level := range []string{"fail", "warning", "FAIL"} {
		cfg := DefaultConfig()
		cfg.Log.Level = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(log.level %q) = %v, want nil", level, err)
		}
	}
}
