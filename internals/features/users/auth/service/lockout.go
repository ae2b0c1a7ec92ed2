package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// AttemptStore tracks consecutive failed logins per identifier. Hitting the
// threshold locks the identifier for the window; subsequent attempts are
// rejected until the window passes, after which the counter resets.
type AttemptStore interface {
	// Fail registers one failed attempt and returns the running count.
	Fail(ctx context.Context, key string) (int, error)
	// Reset clears the counter (called on successful login).
	Reset(ctx context.Context, key string) error
	// Locked reports whether the identifier is currently locked out.
	Locked(ctx context.Context, key string) (bool, error)
}

/* ==========================
   In-process store
========================== */

type attemptEntry struct {
	count       int
	lockedUntil time.Time
}

// MemoryAttemptStore guards its map with a mutex so concurrent failed logins
// for the same identifier count correctly. State does not survive a restart
// and is not shared across instances; use the Redis store for that.
type MemoryAttemptStore struct {
	mu        sync.Mutex
	threshold int
	window    time.Duration
	entries   map[string]*attemptEntry
	now       func() time.Time
}

func NewMemoryAttemptStore(threshold int, window time.Duration) *MemoryAttemptStore {
	return &MemoryAttemptStore{
		threshold: threshold,
		window:    window,
		entries:   map[string]*attemptEntry{},
		now:       time.Now,
	}
}

func (s *MemoryAttemptStore) Fail(ctx context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	if e == nil {
		e = &attemptEntry{}
		s.entries[key] = e
	}
	// an elapsed lockout resets the counter before the new failure counts
	if !e.lockedUntil.IsZero() && !s.now().Before(e.lockedUntil) {
		e.count = 0
		e.lockedUntil = time.Time{}
	}
	e.count++
	if e.count >= s.threshold && e.lockedUntil.IsZero() {
		e.lockedUntil = s.now().Add(s.window)
	}
	return e.count, nil
}

func (s *MemoryAttemptStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryAttemptStore) Locked(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	if e == nil || e.lockedUntil.IsZero() {
		return false, nil
	}
	if s.now().Before(e.lockedUntil) {
		return true, nil
	}
	// window elapsed: counter starts over
	delete(s.entries, key)
	return false, nil
}

/* ==========================
   Redis-backed store
   (shared across instances; atomic INCR + expiry)
========================== */

type RedisAttemptStore struct {
	rdb       *redis.Client
	threshold int
	window    time.Duration
}

func NewRedisAttemptStore(rdb *redis.Client, threshold int, window time.Duration) *RedisAttemptStore {
	return &RedisAttemptStore{rdb: rdb, threshold: threshold, window: window}
}

func (s *RedisAttemptStore) redisKey(key string) string {
	return "login_attempts:" + key
}

func (s *RedisAttemptStore) Fail(ctx context.Context, key string) (int, error) {
	k := s.redisKey(key)
	count, err := s.rdb.Incr(ctx, k).Result()
	if err != nil {
		return 0, err
	}
	// first failure starts the window; crossing the threshold re-arms it so
	// the lock lasts a full window from the locking failure, same as the
	// in-process store
	if count == 1 || int(count) == s.threshold {
		if err := s.rdb.Expire(ctx, k, s.window).Err(); err != nil {
			return int(count), err
		}
	}
	return int(count), nil
}

func (s *RedisAttemptStore) Reset(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.redisKey(key)).Err()
}

func (s *RedisAttemptStore) Locked(ctx context.Context, key string) (bool, error) {
	count, err := s.rdb.Get(ctx, s.redisKey(key)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= s.threshold, nil
}
