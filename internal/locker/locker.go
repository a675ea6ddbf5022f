// Package locker serializes mutations per container. Services hold the lock
// for a board or list while they read a snapshot, reorder and write it back.
package locker

import (
	"context"
	"errors"

	"github.com/thenoetrevino/boardly/internal/types"
)

// ErrNotAcquired is returned when the context ends before the lock is free.
var ErrNotAcquired = errors.New("lock not acquired")

// Release gives a lock back. It is safe to call once.
type Release func(ctx context.Context) error

// Locker hands out exclusive locks by key.
type Locker interface {
	// Acquire blocks until key is free or ctx is done.
	Acquire(ctx context.Context, key string) (Release, error)
}

// BoardKey is the lock key guarding the list order of a board.
func BoardKey(id types.BoardID) string {
	return "board:" + string(id)
}

// ListKey is the lock key guarding the card order of a list.
func ListKey(id types.ListID) string {
	return "list:" + string(id)
}

// AcquireAll takes the locks for keys in sorted order so two callers locking
// overlapping sets cannot deadlock. Duplicate keys are locked once. On
// failure every lock already taken is released.
func AcquireAll(ctx context.Context, l Locker, keys ...string) (Release, error) {
	sorted := sortedUnique(keys)
	releases := make([]Release, 0, len(sorted))

	releaseAll := func(ctx context.Context) error {
		var errs []error
		for i := len(releases) - 1; i >= 0; i-- {
			if err := releases[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	for _, key := range sorted {
		release, err := l.Acquire(ctx, key)
		if err != nil {
			_ = releaseAll(context.WithoutCancel(ctx))
			return nil, err
		}
		releases = append(releases, release)
	}
	return releaseAll, nil
}
