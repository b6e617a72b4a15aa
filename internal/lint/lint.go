// Package lint scans source files for malformed hex color literals.
//
// Files are selected with doublestar include and exclude patterns relative to
// a root directory. Within each file, a '#' followed by a run of letters and
// digits is treated as a color candidate when the run is entirely hex digits,
// or when it is 3 to 8 characters long and contains a digit. Candidates that
// fail [csscolor.TryParse] are reported with their position.
package lint

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"tools.zach/dev/colorlit/csscolor"
)

// maxLineBytes bounds a single scanned line.
const maxLineBytes = 1 << 20

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Options selects the files to scan. Patterns use doublestar syntax and
// are matched against slash-separated paths relative to the root.
type Options struct {
	Include []string
	Exclude []string
}

// Finding is a malformed literal at a position in a file.
type Finding struct {
	Path    string
	Line    int // 1-based
	Column  int // 1-based byte offset of the '#'
	Literal string
	Err     error
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %v", f.Path, f.Line, f.Column, f.Literal, f.Err)
}

// Report summarizes a scan.
type Report struct {
	// Files is the number of files scanned.
	Files int
	// Literals is the number of color candidates seen, valid or not.
	Literals int
	// Findings lists the invalid candidates, ordered by path then position.
	Findings []Finding
}

// ///////////////////////////////////////////////
// Public API
// ///////////////////////////////////////////////

// Scan walks root and checks every file selected by opts.
func Scan(ctx context.Context, root string, opts Options) (*Report, error) {
	fsys := os.DirFS(root)
	files, err := selectFiles(fsys, opts)
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		n, findings, err := scanFile(fsys, name)
		if err != nil {
			return rep, err
		}
		rep.Files++
		rep.Literals += n
		rep.Findings = append(rep.Findings, findings...)
	}
	slog.Debug("lint scan complete", "root", root, "files", rep.Files, "literals", rep.Literals, "findings", len(rep.Findings))
	return rep, nil
}

// ScanReader checks the text in r, labelling findings with name. It returns
// the number of candidates seen and the invalid ones.
func ScanReader(name string, r io.Reader) (int, []Finding, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		count    int
		findings []Finding
		line     int
	)
	for sc.Scan() {
		line++
		for _, tok := range candidates(sc.Text()) {
			count++
			if _, err := csscolor.TryParse(tok.text); err != nil {
				findings = append(findings, Finding{
					Path:    name,
					Line:    line,
					Column:  tok.col,
					Literal: tok.text,
					Err:     err,
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return count, findings, fmt.Errorf("scan %s: %w", name, err)
	}
	return count, findings, nil
}

// ///////////////////////////////////////////////
// File Selection
// ///////////////////////////////////////////////

// selectFiles expands each include pattern and drops excluded matches.
// The result is sorted and free of duplicates.
func selectFiles(fsys fs.FS, opts Options) ([]string, error) {
	seen := map[string]bool{}
	for _, pattern := range opts.Include {
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d fs.DirEntry) error {
			if seen[path] {
				return nil
			}
			excluded, err := matchAny(opts.Exclude, path)
			if err != nil {
				return err
			}
			if !excluded {
				seen[path] = true
			}
			return nil
		}, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand include pattern %q: %w", pattern, err)
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

func matchAny(patterns []string, path string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, path)
		if err != nil {
			return false, fmt.Errorf("bad exclude pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func scanFile(fsys fs.FS, name string) (int, []Finding, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return 0, nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return ScanReader(name, f)
}

// ///////////////////////////////////////////////
// Tokenizing
// ///////////////////////////////////////////////

type token struct {
	text string // includes the leading '#'
	col  int
}

// candidates returns the color-like '#' tokens on one line.
func candidates(line string) []token {
	var toks []token
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i > 0 && (isAlnum(line[i-1]) || line[i-1] == '&' || line[i-1] == '#') {
			continue
		}
		j := i + 1
		for j < len(line) && isAlnum(line[j]) {
			j++
		}
		run := line[i+1 : j]
		if looksLikeColor(run) {
			toks = append(toks, token{text: line[i:j], col: i + 1})
		}
		i = j - 1
	}
	return toks
}

func looksLikeColor(run string) bool {
	if run == "" {
		return false
	}
	allHex, hasDigit := true, false
	for i := 0; i < len(run); i++ {
		c := run[i]
		if c >= '0' && c <= '9' {
			hasDigit = true
			continue
		}
		if !(c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			allHex = false
		}
	}
	if allHex {
		return true
	}
	return hasDigit && len(run) >= 3 && len(run) <= 8
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
