package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryInterval = 50 * time.Millisecond

// WithLock runs fn while holding an exclusive advisory lock on a sibling of
// the registry file. The lock file is a sibling because the atomic save
// replaces the registry file itself. Acquisition is bounded by timeout;
// exceeding it fails with a locked error instead of hanging.
func (s *FileStore) WithLock(timeout time.Duration, fn func() error) error {
	lockPath := s.path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return NewError(KindIOFailure, s.path, err)
	}

	fl := flock.New(lockPath)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ok, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return NewError(KindLocked, s.path, err)
		}
		return NewError(KindIOFailure, s.path, err)
	}
	if !ok {
		return NewError(KindLocked, s.path, nil)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}
