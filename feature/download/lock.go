package download

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run is downloading into the same folder.
var ErrLocked = errors.New("another download is already running for this folder")

// LockPath returns the lock file guarding root. It sits next to the folder, never inside it,
// so it never shows up in a manifest check.
func LockPath(root string) string {
	return filepath.Clean(root) + ".lock"
}

// Lock acquires the folder lock without waiting.
func Lock(root string) (*flock.Flock, error) {
	path := LockPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return lock, nil
}
