package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisTestStore(t *testing.T, threshold int, window time.Duration) (*RedisAttemptStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisAttemptStore(rdb, threshold, window), mr
}

func TestRedisStoreLocksAtThreshold(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t, 3, time.Minute)

	for i := 1; i <= 2; i++ {
		count, err := store.Fail(ctx, "ana@gym.test")
		require.NoError(t, err)
		assert.Equal(t, i, count)
		locked, err := store.Locked(ctx, "ana@gym.test")
		require.NoError(t, err)
		assert.False(t, locked)
	}

	count, err := store.Fail(ctx, "ana@gym.test")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	locked, err := store.Locked(ctx, "ana@gym.test")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestRedisStoreLockLastsFullWindowFromLockingFailure(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisTestStore(t, 3, time.Minute)

	_, err := store.Fail(ctx, "ana@gym.test")
	require.NoError(t, err)

	// two more failures near the end of the first window; the third crosses
	// the threshold and must hold the lock for a full window of its own
	mr.FastForward(50 * time.Second)
	_, err = store.Fail(ctx, "ana@gym.test")
	require.NoError(t, err)
	_, err = store.Fail(ctx, "ana@gym.test")
	require.NoError(t, err)

	mr.FastForward(50 * time.Second)
	locked, err := store.Locked(ctx, "ana@gym.test")
	require.NoError(t, err)
	assert.True(t, locked, "lock must outlive the original window")

	mr.FastForward(11 * time.Second)
	locked, err = store.Locked(ctx, "ana@gym.test")
	require.NoError(t, err)
	assert.False(t, locked, "lock lapses a window after the locking failure")

	// the counter starts over once the window passed
	count, err := store.Fail(ctx, "ana@gym.test")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRedisStoreResetClearsCounter(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		_, err := store.Fail(ctx, "ana@gym.test")
		require.NoError(t, err)
	}
	require.NoError(t, store.Reset(ctx, "ana@gym.test"))

	locked, err := store.Locked(ctx, "ana@gym.test")
	require.NoError(t, err)
	assert.False(t, locked)

	count, err := store.Fail(ctx, "ana@gym.test")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
