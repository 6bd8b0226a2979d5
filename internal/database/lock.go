package database

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Lock is an advisory file lock making the single-active-session assumption
// explicit: the store has no locking discipline of its own, so a second
// process must be refused before it can touch the database.
type Lock struct {
	path  string
	token string
}

// AcquireLock claims exclusive use of the store. It fails with ErrLocked if
// the lock file already exists, e.g. a crashed session left it behind.
func AcquireLock(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w (lock file: %s)", ErrLocked, path)
		}
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}
	defer f.Close()

	token := uuid.New().String()
	if _, err := fmt.Fprintf(f, "%d %s\n", os.Getpid(), token); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write lock file: %w", err)
	}

	return &Lock{path: path, token: token}, nil
}

// Release removes the lock file.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}
