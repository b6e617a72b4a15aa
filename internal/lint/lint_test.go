// Tests for the literal linter: candidate detection, reader scanning, file
// selection with include/exclude patterns, and full directory scans.
package lint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"tools.zach/dev/colorlit/csscolor"
)

// ///////////////////////////////////////////////
// Candidate Detection
// ///////////////////////////////////////////////

func TestCandidates(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []token
	}{
		{"valid six digit", "color: #ff8800;", []token{{"#ff8800", 8}}},
		{"short form", "a{color:#fff}", []token{{"#fff", 9}}},
		{"several", "#000 #111 #222", []token{{"#000", 1}, {"#111", 6}, {"#222", 11}}},
		{"wrong length hex", "border: #12345", []token{{"#12345", 9}}},
		{"typo with digit", "fill=\"#ff00zz\"", []token{{"#ff00zz", 7}}},
		{"css id selector", "#main { }", nil},
		{"markdown heading", "# Title", nil},
		{"toml comment", "bg = \"red\" # comment", nil},
		{"html entity", "&#123; &#x41;", nil},
		{"mid word", "issue#42", nil},
		{"digit id too short", "#h1", nil},
		{"double hash", "##fff", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := candidates(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("candidates(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// ScanReader
// ///////////////////////////////////////////////

func TestScanReader(t *testing.T) {
	src := strings.Join([]string{
		"body { background: #1e1e2e; }",
		"a { color: #12; }",
		"# heading",
		"b { color: #abcdeg1; border-color: #ABCDEF80 }",
	}, "\n")

	count, findings, err := ScanReader("style.css", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ScanReader: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if len(findings) != 2 {
		t.Fatalf("findings = %v, want 2", findings)
	}

	first := findings[0]
	if first.Path != "style.css" || first.Line != 2 || first.Column != 12 || first.Literal != "#12" {
		t.Errorf("first finding = %+v", first)
	}
	if !errors.Is(first.Err, csscolor.ErrInvalidColorLiteral) {
		t.Errorf("finding error %v does not match ErrInvalidColorLiteral", first.Err)
	}
	if got, want := first.String(), `style.css:2:12: #12: can't parse color from "#12"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if findings[1].Line != 4 || findings[1].Literal != "#abcdeg1" {
		t.Errorf("second finding = %+v", findings[1])
	}
}

func TestScanReaderEmpty(t *testing.T) {
	count, findings, err := ScanReader("empty", strings.NewReader(""))
	if err != nil || count != 0 || findings != nil {
		t.Errorf("ScanReader(empty) = %d, %v, %v", count, findings, err)
	}
}

// ///////////////////////////////////////////////
// Scan
// ///////////////////////////////////////////////

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.css", "x { color: #fff; }\ny { color: #ggg1; }\n")
	writeFile(t, root, "sub/b.scss", "$c: #12345;\n")
	writeFile(t, root, "sub/ok.css", "z { color: #000000ff; }\n")
	writeFile(t, root, "node_modules/dep/c.css", "q { color: #1; }\n")
	writeFile(t, root, "notes.txt", "#12\n")

	rep, err := Scan(context.Background(), root, Options{
		Include: []string{"**/*.css", "**/*.scss"},
		Exclude: []string{"**/node_modules/**"},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if rep.Files != 3 {
		t.Errorf("Files = %d, want 3", rep.Files)
	}
	if rep.Literals != 4 {
		t.Errorf("Literals = %d, want 4", rep.Literals)
	}

	var got []string
	for _, f := range rep.Findings {
		got = append(got, f.Path+":"+f.Literal)
	}
	want := []string{"a.css:#ggg1", "sub/b.scss:#12345"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findings = %v, want %v", got, want)
	}
}

func TestScanOverlappingIncludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.css", "#12\n")

	rep, err := Scan(context.Background(), root, Options{
		Include: []string{"*.css", "**/*.css"},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if rep.Files != 1 || len(rep.Findings) != 1 {
		t.Errorf("report = %+v, want one file scanned once", rep)
	}
}

func TestScanBadPattern(t *testing.T) {
	_, err := Scan(context.Background(), t.TempDir(), Options{Include: []string{"[a-"}})
	if err == nil {
		t.Error("Scan with bad include pattern returned nil error")
	}
}

func TestScanCanceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.css", "#fff\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, root, Options{Include: []string{"*.css"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Scan() error = %v, want context.Canceled", err)
	}
}

// writeFile creates root/rel with content, making parent directories.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}
