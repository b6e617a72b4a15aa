package config

// ///////////////////////////////////////////////
// Documentation Types
// ///////////////////////////////////////////////

// FieldDoc holds documentation and alternative examples for a single config field.
// The genconfig tool uses [FieldDoc] values to annotate the generated config.default.toml.
type FieldDoc struct {
	// Comment is shown as a header comment above the field in the example config.
	Comment string

	// Alternatives are shown as commented-out lines below the active value.
	Alternatives []string
}

// ///////////////////////////////////////////////
// Field Documentation Map
// ///////////////////////////////////////////////

// ConfigDocs maps TOML field paths (dot-separated, e.g. "output.format")
// to their [FieldDoc] entries. The genconfig tool uses this map to annotate the
// generated config.default.toml with inline comments and alternative examples.
var ConfigDocs = map[string]FieldDoc{
	// ── Root ──────────────────────────────────────────────────────
	"version": {
		Comment: "Config schema version. Do not edit.",
	},

	// ── Log ──────────────────────────────────────────────────────
	"log": {
		Comment: "Logging configuration",
	},
	"log.level": {
		Comment: "Minimum log level. Options: \"trace\", \"debug\", \"info\", \"warn\", \"error\", \"fail\"",
		Alternatives: []string{
			`level = "debug"`,
			`level = "warn"`,
		},
	},
	"log.file": {
		Comment: "Write logs to colorlit.log in the data directory instead of stderr.",
	},
	"log.max_size_mb": {
		Comment: "Maximum log file size in megabytes before rotation.",
	},

	// ── Output ───────────────────────────────────────────────────
	"output": {
		Comment: "How parsed colors are printed",
	},
	"output.format": {
		Comment: "Color output format. Options: \"hex\", \"channels\", \"bytes\"\n  hex:      \"#ff8000\"\n  channels: \"1.0000 0.5020 0.0000 1.0000\"\n  bytes:    \"255 128 0 255\"",
		Alternatives: []string{
			`format = "channels"`,
			`format = "bytes"`,
		},
	},
	"output.swatch": {
		Comment: "Print a colored block next to each color when the terminal supports it.",
	},
	"output.fallback": {
		Comment: "Color used in place of unparseable literals when --strict is off.\nAccepts any hex literal or CSS color name.",
		Alternatives: []string{
			`fallback = "#ff00ff"`,
		},
	},

	// ── Theme ────────────────────────────────────────────────────
	"theme": {
		Comment: "Theme file used by the theme commands",
	},
	"theme.source": {
		Comment: "Where to read the theme from. Options: \"file\", \"url\"\n  file: read theme.file from disk\n  url:  fetch theme.url, falling back to the last cached copy",
		Alternatives: []string{
			`source = "url"`,
		},
	},
	"theme.file": {
		Comment: "Theme path. Relative paths resolve against the data directory.",
	},
	"theme.url": {
		Comment: "Remote theme location (for source = \"url\").",
		Alternatives: []string{
			`url = "https://example.com/themes/dark.toml"`,
		},
	},
	"theme.watch_poll_seconds": {
		Comment: "How often to stat the theme file (seconds) when file events are unavailable.",
	},

	// ── Lint ─────────────────────────────────────────────────────
	"lint": {
		Comment: "Files scanned by `colorlit lint`",
	},
	"lint.include": {
		Comment: "Glob patterns (relative to the lint root) of files to scan. ** matches any depth.",
	},
	"lint.exclude": {
		Comment: "Glob patterns skipped even when they match include.",
	},
}
