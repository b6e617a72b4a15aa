// Package filelock provides an exclusive, non-blocking advisory lock on a
// file. The theme watcher holds one per theme so two watchers never
// normalize the same file at once.
package filelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrLocked is returned by [Acquire] when another holder owns the lock.
var ErrLocked = errors.New("file is locked by another process")

// Lock is a held lock. The zero value is not usable; see [Acquire].
type Lock struct {
	f *os.File
}

// Acquire opens (creating if needed) the lock file at path and takes an
// exclusive lock on it without blocking. The current PID is written into the
// file for diagnostics. If the lock is held elsewhere the returned error
// wraps [ErrLocked].
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.Truncate(0); err == nil {
		_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}
	return &Lock{f: f}, nil
}

// Release unlocks and closes the lock file. The file itself is left in
// place. Release is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	f := l.f
	l.f = nil
	unlockErr := unlockFile(f)
	if err := f.Close(); err != nil && unlockErr == nil {
		return fmt.Errorf("close lock file: %w", err)
	}
	return unlockErr
}

// Holder returns the PID recorded in the lock file at path, or 0 if none
// can be read.
func Holder(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
