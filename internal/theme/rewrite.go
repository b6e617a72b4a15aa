package theme

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNotInPlace is returned when a theme file cannot be edited line by line
// without changing anything besides its color literals. Such files are left
// untouched.
var ErrNotInPlace = errors.New("theme cannot be rewritten in place")

var (
	// stringEntryRe matches a single-line `key = "value"` pair. Submatch 1
	// is the value token.
	stringEntryRe = regexp.MustCompile(`^\s*(?:[A-Za-z0-9_-]+|"(?:[^"\\]|\\.)*"|'[^']*')\s*=\s*("(?:[^"\\]|\\.)*"|'[^']*')\s*(?:#.*)?$`)

	// tableNameRe matches a single-segment standard table header.
	tableNameRe = regexp.MustCompile(`^\s*\[\s*([A-Za-z0-9_-]+|"(?:[^"\\]|\\.)*"|'[^']*')\s*\]\s*(?:#.*)?$`)

	versionZeroRe = regexp.MustCompile(`^\s*version\s*=\s*0\s*(?:#.*)?$`)
)

// ///////////////////////////////////////////////
// Line Scanning
// ///////////////////////////////////////////////

// stringEntry is a `key = "value"` line. start and end bound the value token.
type stringEntry struct {
	key        string
	value      string
	start, end int
}

// splitLines splits s after each newline, so joining the result restores s.
func splitLines(s string) []string {
	return strings.SplitAfter(s, "\n")
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

func withEOL(line string) string {
	if line == "" || strings.HasSuffix(line, "\n") {
		return line
	}
	return line + "\n"
}

// tableHeader reports whether line opens a table. name is the table's key
// for a plain `[name]` header and empty for dotted or array headers.
func tableHeader(line string) (name string, ok bool) {
	body := trimEOL(line)
	if !strings.HasPrefix(strings.TrimSpace(body), "[") {
		return "", false
	}
	m := tableNameRe.FindStringSubmatch(body)
	if m == nil {
		return "", true
	}
	if strings.HasPrefix(m[1], `"`) || strings.HasPrefix(m[1], `'`) {
		name, _ = decodeString(m[1])
		return name, true
	}
	return m[1], true
}

// parseStringEntry recognizes a line holding exactly one key with a
// single-line string value.
func parseStringEntry(line string) (stringEntry, bool) {
	body := trimEOL(line)
	loc := stringEntryRe.FindStringSubmatchIndex(body)
	if loc == nil {
		return stringEntry{}, false
	}
	var kv map[string]any
	if err := toml.Unmarshal([]byte(body), &kv); err != nil || len(kv) != 1 {
		return stringEntry{}, false
	}
	for k, v := range kv {
		s, ok := v.(string)
		if !ok {
			return stringEntry{}, false
		}
		return stringEntry{key: k, value: s, start: loc[2], end: loc[3]}, true
	}
	return stringEntry{}, false
}

func decodeString(token string) (string, bool) {
	var v struct {
		S string `toml:"s"`
	}
	if _, err := toml.Decode("s = "+token, &v); err != nil {
		return "", false
	}
	return v.S, true
}

// ///////////////////////////////////////////////
// Rewriting
// ///////////////////////////////////////////////

// rewriteColors replaces the literal of every role in the [colors] table
// whose value differs from colors[role]. Every other byte of data is kept.
// When a role cannot be reached that way, or the result would decode to
// anything but data with the new colors, it returns [ErrNotInPlace].
func rewriteColors(data []byte, colors map[string]string) ([]byte, error) {
	lines := splitLines(string(data))
	inColors := false
	for i, line := range lines {
		if name, ok := tableHeader(line); ok {
			inColors = name == "colors"
			continue
		}
		if !inColors {
			continue
		}
		e, ok := parseStringEntry(line)
		if !ok {
			continue
		}
		want, ok := colors[e.key]
		if !ok || want == e.value {
			continue
		}
		lines[i] = line[:e.start] + strconv.Quote(want) + line[e.end:]
	}
	out := []byte(strings.Join(lines, ""))

	var want map[string]any
	if err := toml.Unmarshal(data, &want); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if want == nil {
		want = map[string]any{}
	}
	if len(colors) > 0 || want["colors"] != nil {
		table := make(map[string]any, len(colors))
		for role, lit := range colors {
			table[role] = lit
		}
		want["colors"] = table
	}
	if err := sameDocument(want, out); err != nil {
		return nil, err
	}
	return out, nil
}

// sameDocument checks that out decodes to exactly want. A differing color
// role is named in the error.
func sameDocument(want map[string]any, out []byte) error {
	var got map[string]any
	if err := toml.Unmarshal(out, &got); err != nil {
		return fmt.Errorf("%w: %v", ErrNotInPlace, err)
	}
	if reflect.DeepEqual(want, got) {
		return nil
	}
	wantColors, _ := want["colors"].(map[string]any)
	gotColors, _ := got["colors"].(map[string]any)
	for role, lit := range wantColors {
		if !reflect.DeepEqual(gotColors[role], lit) {
			return fmt.Errorf("%w: role %q is not a single-line string under [colors]", ErrNotInPlace, role)
		}
	}
	return fmt.Errorf("%w: content outside [colors] would change", ErrNotInPlace)
}
