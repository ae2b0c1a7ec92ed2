package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(threshold int, window time.Duration) (*MemoryAttemptStore, *time.Time) {
	store := NewMemoryAttemptStore(threshold, window)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func TestLockoutAfterThreshold(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(5, 15*time.Minute)

	for i := 1; i <= 4; i++ {
		count, err := store.Fail(ctx, "a@b.c")
		require.NoError(t, err)
		assert.Equal(t, i, count)

		locked, err := store.Locked(ctx, "a@b.c")
		require.NoError(t, err)
		assert.False(t, locked, "attempt %d should not lock yet", i)
	}

	count, err := store.Fail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// locked now, even a correct password must be rejected upstream
	locked, err := store.Locked(ctx, "a@b.c")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestLockoutExpiresAfterWindow(t *testing.T) {
	ctx := context.Background()
	store, now := newTestStore(3, 10*time.Minute)

	for i := 0; i < 3; i++ {
		_, err := store.Fail(ctx, "a@b.c")
		require.NoError(t, err)
	}
	locked, _ := store.Locked(ctx, "a@b.c")
	require.True(t, locked)

	// still locked just inside the window
	*now = now.Add(9 * time.Minute)
	locked, _ = store.Locked(ctx, "a@b.c")
	assert.True(t, locked)

	// window elapsed: unlocked and counter starts over
	*now = now.Add(2 * time.Minute)
	locked, _ = store.Locked(ctx, "a@b.c")
	assert.False(t, locked)

	count, err := store.Fail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLockoutResetOnSuccess(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(3, 10*time.Minute)

	_, _ = store.Fail(ctx, "a@b.c")
	_, _ = store.Fail(ctx, "a@b.c")
	require.NoError(t, store.Reset(ctx, "a@b.c"))

	count, err := store.Fail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLockoutKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(2, 10*time.Minute)

	_, _ = store.Fail(ctx, "a@b.c")
	_, _ = store.Fail(ctx, "a@b.c")

	locked, _ := store.Locked(ctx, "a@b.c")
	assert.True(t, locked)
	locked, _ = store.Locked(ctx, "other@b.c")
	assert.False(t, locked)
}
