// Package lock guards the history file against concurrent writers in
// separate processes.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FileName is the lock file created in the data directory.
	FileName = "pastor.lock"

	lockDirPerm  = 0o700
	lockFilePerm = 0o600
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("history is locked by another pastor process (watcher is running)")

// Lock is a held instance lock.
type Lock struct {
	f    *os.File
	path string
}

// Acquire takes the exclusive instance lock in dir without blocking.
func Acquire(dir string) (*Lock, error) {
	if dir == "" {
		return nil, errors.New("lock dir is empty")
	}
	if err := os.MkdirAll(dir, lockDirPerm); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFilePerm)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	locked, err := tryLockExclusive(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		_ = f.Close()
		return nil, ErrLocked
	}
	return &Lock{f: f, path: path}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. The lock file is left in place.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	unlock(l.f)
	err := l.f.Close()
	l.f = nil
	return err
}
