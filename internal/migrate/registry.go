package migrate

import "fmt"

// Registry holds the schema version and migrations for one document kind.
type Registry struct {
	// Name labels the document kind in errors, e.g. "config".
	Name string
	// CurrentVersion is the schema version this build reads and writes.
	CurrentVersion int
	// Migrations is the list of versioned upgrades. Exported so tests can
	// swap it out.
	Migrations []Migration
}

// Register adds m to the registry. It panics on a duplicate version.
func (r *Registry) Register(m Migration) {
	for _, existing := range r.Migrations {
		if existing.Version == m.Version {
			panic(fmt.Sprintf("migrate: duplicate %s migration version %d (description: %q)", r.Name, m.Version, m.Description))
		}
	}
	r.Migrations = append(r.Migrations, m)
}

// NeedsMigration reports whether a document at fileVersion must be upgraded.
func (r *Registry) NeedsMigration(fileVersion int) bool {
	return NeedsMigration(fileVersion, r.CurrentVersion, r.Migrations)
}

// Run upgrades data from fromVersion. A document newer than CurrentVersion
// is rejected rather than silently downgraded.
func (r *Registry) Run(data []byte, fromVersion int) ([]byte, int, error) {
	if fromVersion > r.CurrentVersion {
		return nil, fromVersion, fmt.Errorf("%s version %d is newer than supported version %d", r.Name, fromVersion, r.CurrentVersion)
	}
	return Run(data, fromVersion, r.Migrations)
}

// Config is the migration registry for config.toml.
var Config = &Registry{Name: "config", CurrentVersion: 1}

// Theme is the migration registry for theme files. Version 0 is the legacy
// flat layout without a [colors] table; see the theme package.
var Theme = &Registry{Name: "theme", CurrentVersion: 1}
