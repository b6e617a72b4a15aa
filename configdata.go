// Package colorlit provides embedded assets for the colorlit command.
//
// The root package exists solely to embed [config.default.toml] via
// [DefaultConfigTOML]. The command writes it to the data directory on first
// run so users start from a documented config.
package colorlit

import _ "embed"

// DefaultConfigTOML holds the raw bytes of config.default.toml, embedded at
// build time.
//
//go:embed config.default.toml
var DefaultConfigTOML []byte
