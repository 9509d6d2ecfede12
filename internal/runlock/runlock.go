// Package runlock guards an output directory against concurrent runs.
//
// Two seasonbrake processes writing the same season would interleave episode
// numbers and overwrite each other's files, so a run takes a file lock inside
// the output directory before any job is emitted.
package runlock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".seasonbrake.lock"

// ErrHeld reports that another run already holds the output directory.
var ErrHeld = errors.New("output directory is locked by another run")

// Lock holds an acquired output-directory lock until Release is called.
type Lock struct {
	flock *flock.Flock
}

// Acquire takes the lock for outputDir without blocking. The directory must
// already exist.
func Acquire(outputDir string) (*Lock, error) {
	path := filepath.Join(outputDir, lockFileName)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHeld, outputDir)
	}
	return &Lock{flock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.flock.Path()
}

// Release drops the lock. Safe to call once per acquired lock.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("release run lock: %w", err)
	}
	return nil
}
