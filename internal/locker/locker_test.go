package locker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, ttl), s
}

// lockers runs fn against every Locker implementation.
func lockers(t *testing.T, fn func(t *testing.T, l Locker)) {
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryLocker()) })
	t.Run("redis", func(t *testing.T) {
		l, _ := newRedisLocker(t, time.Second)
		fn(t, l)
	})
}

func TestLocker_MutualExclusion(t *testing.T) {
	lockers(t, func(t *testing.T, l Locker) {
		ctx := context.Background()
		var inside, maxInside atomic.Int32
		var wg sync.WaitGroup

		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := l.Acquire(ctx, BoardKey("b1"))
				if !assert.NoError(t, err) {
					return
				}
				n := inside.Add(1)
				for {
					m := maxInside.Load()
					if n <= m || maxInside.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				inside.Add(-1)
				assert.NoError(t, release(ctx))
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), maxInside.Load())
	})
}

func TestLocker_TimesOutWhileHeld(t *testing.T) {
	lockers(t, func(t *testing.T, l Locker) {
		release, err := l.Acquire(context.Background(), ListKey("l1"))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = l.Acquire(ctx, ListKey("l1"))
		require.ErrorIs(t, err, ErrNotAcquired)

		// other keys are independent
		other, err := l.Acquire(context.Background(), ListKey("l2"))
		require.NoError(t, err)
		require.NoError(t, other(context.Background()))

		require.NoError(t, release(context.Background()))
		again, err := l.Acquire(context.Background(), ListKey("l1"))
		require.NoError(t, err)
		require.NoError(t, again(context.Background()))
	})
}

func TestAcquireAll_DeduplicatesAndReleases(t *testing.T) {
	lockers(t, func(t *testing.T, l Locker) {
		ctx := context.Background()
		release, err := AcquireAll(ctx, l, ListKey("b"), ListKey("a"), ListKey("b"))
		require.NoError(t, err)
		require.NoError(t, release(ctx))

		release, err = AcquireAll(ctx, l, ListKey("a"), ListKey("b"))
		require.NoError(t, err)
		require.NoError(t, release(ctx))
	})
}

func TestAcquireAll_ReleasesOnFailure(t *testing.T) {
	l := NewMemoryLocker()
	held, err := l.Acquire(context.Background(), ListKey("b"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = AcquireAll(ctx, l, ListKey("a"), ListKey("b"))
	require.ErrorIs(t, err, ErrNotAcquired)

	// "a" must have been given back
	a, err := l.Acquire(context.Background(), ListKey("a"))
	require.NoError(t, err)
	require.NoError(t, a(context.Background()))
	require.NoError(t, held(context.Background()))
}

func TestMemoryLocker_ForgetsIdleKeys(t *testing.T) {
	l := NewMemoryLocker()
	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))
	require.NoError(t, release(context.Background()), "second release is a no-op")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.slots)
}

func TestRedisLocker_ExpiredHolderCannotReleaseNewOwner(t *testing.T) {
	l, s := newRedisLocker(t, 100*time.Millisecond)
	ctx := context.Background()

	stale, err := l.Acquire(ctx, "k")
	require.NoError(t, err)

	s.FastForward(200 * time.Millisecond)

	fresh, err := l.Acquire(ctx, "k")
	require.NoError(t, err)

	require.NoError(t, stale(ctx))
	assert.True(t, s.Exists(keyPrefix+"k"), "stale release must not delete the new owner's lock")

	require.NoError(t, fresh(ctx))
	assert.False(t, s.Exists(keyPrefix+"k"))
}
