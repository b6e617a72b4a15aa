// Package theme loads, resolves, and normalizes color theme files.
//
// A theme is a TOML document mapping role names to color literals:
//
//	version = 1
//	name = "dusk"
//
//	[colors]
//	background = "#1e1e2e"
//	accent = "rebeccapurple"
//
// Literals are resolved through [csscolor.TryParse]. Themes can be read from a
// local file or fetched from a URL with an on-disk cache as fallback (see
// [Load]), rewritten into canonical hex (see [Normalize]), and watched for
// changes (see [Watcher]).
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/colorlit/csscolor"
	"tools.zach/dev/colorlit/internal/migrate"
)

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Theme is the decoded form of a theme file.
type Theme struct {
	// Version is the theme schema version.
	Version int `toml:"version"`
	// Name is an optional display name.
	Name string `toml:"name,omitempty"`
	// Colors maps role names to color literals.
	Colors map[string]string `toml:"colors"`
}

// Palette maps role names to resolved colors.
type Palette map[string]csscolor.Color

// Roles returns the palette's role names in sorted order.
func (p Palette) Roles() []string {
	roles := make([]string, 0, len(p))
	for r := range p {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}

// RoleError records a role whose literal could not be parsed.
type RoleError struct {
	Role    string
	Literal string
	Err     error
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("role %q: %v", e.Role, e.Err)
}

func (e *RoleError) Unwrap() error { return e.Err }

// ResolveError collects every invalid role in a theme. It unwraps to each
// [RoleError], so errors.Is(err, csscolor.ErrInvalidColorLiteral) holds.
type ResolveError struct {
	Roles []*RoleError
}

func (e *ResolveError) Error() string {
	msgs := make([]string, len(e.Roles))
	for i, r := range e.Roles {
		msgs[i] = r.Error()
	}
	return fmt.Sprintf("%d invalid color(s): %s", len(e.Roles), strings.Join(msgs, "; "))
}

func (e *ResolveError) Unwrap() []error {
	errs := make([]error, len(e.Roles))
	for i, r := range e.Roles {
		errs[i] = r
	}
	return errs
}

// ///////////////////////////////////////////////
// Decoding and Encoding
// ///////////////////////////////////////////////

// Parse decodes a theme document, upgrading older layouts first. A legacy
// file that cannot be upgraded in place is still read, keeping only its
// string values.
func Parse(data []byte) (*Theme, error) {
	upgraded, err := upgrade(data)
	if errors.Is(err, ErrNotInPlace) {
		return readLegacy(data)
	}
	if err != nil {
		return nil, err
	}
	return decode(upgraded)
}

// upgrade runs the theme migrations needed to bring data to the current
// version. Current documents are returned as is.
func upgrade(data []byte) ([]byte, error) {
	version := peekVersion(data)
	if !migrate.Theme.NeedsMigration(version) {
		return data, nil
	}
	data, _, err := migrate.Theme.Run(data, version)
	if err != nil {
		return nil, fmt.Errorf("migrate theme: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*Theme, error) {
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	t.Version = migrate.Theme.CurrentVersion
	if t.Colors == nil {
		t.Colors = map[string]string{}
	}
	return &t, nil
}

// peekVersion reads the version field. Files without one are the legacy
// flat layout, version 0.
func peekVersion(data []byte) int {
	var v struct {
		Version int `toml:"version"`
	}
	if err := toml.Unmarshal(data, &v); err != nil {
		return 0
	}
	return v.Version
}

// ///////////////////////////////////////////////
// Resolution
// ///////////////////////////////////////////////

// Resolve parses every role's literal. Valid roles are always returned in
// the palette; invalid ones are reported together in a *[ResolveError].
func (t *Theme) Resolve() (Palette, error) {
	p := make(Palette, len(t.Colors))
	var bad []*RoleError
	for _, role := range t.roles() {
		lit := t.Colors[role]
		c, err := csscolor.TryParse(lit)
		if err != nil {
			bad = append(bad, &RoleError{Role: role, Literal: lit, Err: err})
			continue
		}
		p[role] = c
	}
	if len(bad) > 0 {
		return p, &ResolveError{Roles: bad}
	}
	return p, nil
}

// Canonicalize rewrites each valid literal to its hex form in place. Invalid
// literals are left untouched and reported as a *[ResolveError].
func (t *Theme) Canonicalize() error {
	p, err := t.Resolve()
	for role, c := range p {
		t.Colors[role] = csscolor.Format(c)
	}
	return err
}

func (t *Theme) roles() []string {
	roles := make([]string, 0, len(t.Colors))
	for r := range t.Colors {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}
