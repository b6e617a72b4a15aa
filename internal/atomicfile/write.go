// Package atomicfile writes theme and config files through a temporary file
// and a rename, so readers and file watchers never see a half-written file.
package atomicfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Write replaces path with data. The parent directory is created if needed.
// Data goes to a sibling temp file which is synced, chmod'ed to perm, and
// renamed over path. The temp file is removed on any failure.
func Write(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := f.Name()

	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if err := writeAndSync(f, data); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	committed = true
	return nil
}

// writeAndSync writes data to f, flushes it to disk, and closes f.
func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return nil
}

// Update reads path, passes its contents to fn, and atomically writes the
// result back with the file's existing permissions. Nothing is written when
// fn returns the contents unchanged. The returned bool reports whether the
// file was rewritten.
func Update(path string, fn func([]byte) ([]byte, error)) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	updated, err := fn(old)
	if err != nil {
		return false, err
	}
	if bytes.Equal(old, updated) {
		return false, nil
	}
	if err := Write(path, updated, info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}
