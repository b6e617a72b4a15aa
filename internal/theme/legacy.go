package theme

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/colorlit/internal/migrate"
)

func init() {
	migrate.Theme.Register(migrate.Migration{
		Version:     1,
		Description: "move flat role keys into [colors]",
		Upgrade:     upgradeFlatLayout,
	})
}

// upgradeFlatLayout converts a version 0 theme, where roles were top-level
// string keys, into the [colors] table layout. A top-level "name" stays the
// theme name.
//
// Role lines are moved as written, with their trailing comments. Everything
// else in the file stays where it was. Files whose roles cannot be moved
// line by line fail with [ErrNotInPlace].
func upgradeFlatLayout(data []byte) ([]byte, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse legacy theme: %w", err)
	}

	lines := splitLines(string(data))
	var head, roles []string
	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if _, ok := tableHeader(line); ok {
			break
		}
		if versionZeroRe.MatchString(trimEOL(line)) {
			continue
		}
		if e, ok := parseStringEntry(line); ok && e.key != "name" {
			if e.key != "version" {
				roles = append(roles, withEOL(line))
			}
			continue
		}
		head = append(head, withEOL(line))
	}
	rest := lines[i:]

	colorsAt := -1
	for j, line := range rest {
		if name, ok := tableHeader(line); ok && name == "colors" {
			colorsAt = j
			break
		}
	}

	n := len(head)
	for n > 0 && strings.TrimSpace(head[n-1]) == "" {
		n--
	}

	var b strings.Builder
	b.WriteString(strings.Join(head[:n], ""))
	b.WriteString("version = 1\n")
	if len(roles) > 0 && colorsAt < 0 {
		b.WriteString("\n[colors]\n")
		b.WriteString(strings.Join(roles, ""))
	}
	if len(rest) > 0 {
		b.WriteString("\n")
		if colorsAt >= 0 {
			b.WriteString(strings.Join(rest[:colorsAt], ""))
			b.WriteString(withEOL(rest[colorsAt]))
			b.WriteString(strings.Join(roles, ""))
			b.WriteString(strings.Join(rest[colorsAt+1:], ""))
		} else {
			b.WriteString(strings.Join(rest, ""))
		}
	}
	out := []byte(b.String())

	if err := sameDocument(upgradedDocument(raw), out); err != nil {
		return nil, err
	}
	return out, nil
}

// upgradedDocument is raw as it should decode after the flat layout upgrade.
func upgradedDocument(raw map[string]any) map[string]any {
	doc := make(map[string]any, len(raw)+1)
	colors := map[string]any{}
	nested, hasNested := raw["colors"].(map[string]any)
	for role, v := range nested {
		colors[role] = v
	}
	for key, v := range raw {
		switch key {
		case "colors", "version":
			continue
		}
		if s, ok := v.(string); ok && key != "name" {
			colors[key] = s
			continue
		}
		doc[key] = v
	}
	doc["version"] = int64(1)
	if hasNested || len(colors) > 0 {
		doc["colors"] = colors
	}
	return doc
}

// readLegacy decodes a version 0 theme without rewriting it. Only string
// values are kept. Used when the file cannot be upgraded in place.
func readLegacy(data []byte) (*Theme, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse legacy theme: %w", err)
	}
	t := &Theme{Version: migrate.Theme.CurrentVersion, Colors: map[string]string{}}
	if nested, ok := raw["colors"].(map[string]any); ok {
		for role, v := range nested {
			if s, ok := v.(string); ok {
				t.Colors[role] = s
			}
		}
	}
	for key, v := range raw {
		s, ok := v.(string)
		if !ok || key == "version" {
			continue
		}
		if key == "name" {
			t.Name = s
			continue
		}
		t.Colors[key] = s
	}
	return t, nil
}
