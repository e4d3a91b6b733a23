package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/queryform/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Limiter, *ratelimiter.MemoryStore, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithClock(clock.Now),
		ratelimiter.WithCleanupInterval(0),
	)
	t.Cleanup(store.Close)

	l, err := ratelimiter.New(store, cfg)
	require.NoError(t, err)
	return l, store, clock
}

func TestNew(t *testing.T) {
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second}},
		{"zero refill", ratelimiter.Config{Capacity: 1, RefillRate: 0, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ratelimiter.New(store, tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}

	t.Run("nil store", func(t *testing.T) {
		_, err := ratelimiter.New(nil, ratelimiter.DefaultConfig())
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	})

	t.Run("default config", func(t *testing.T) {
		_, err := ratelimiter.New(store, ratelimiter.DefaultConfig())
		assert.NoError(t, err)
	})
}

func TestLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: 10 * time.Second}

	t.Run("burst then deny", func(t *testing.T) {
		l, _, _ := newLimiter(t, cfg)

		for i := range 3 {
			res, err := l.Allow(ctx, "ip")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, 2-i, res.Remaining)
			assert.Equal(t, 3, res.Limit)
			assert.Zero(t, res.RetryAfter())
		}

		res, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, 10*time.Second, res.RetryAfter())
	})

	t.Run("denials do not drain the bucket", func(t *testing.T) {
		l, _, clock := newLimiter(t, cfg)

		for range 10 {
			_, err := l.Allow(ctx, "ip")
			require.NoError(t, err)
		}

		clock.Advance(10 * time.Second)
		res, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		l, _, clock := newLimiter(t, cfg)

		_, err := l.Allow(ctx, "ip")
		require.NoError(t, err)

		clock.Advance(time.Hour)
		res, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("retry after rounds up", func(t *testing.T) {
		l, _, clock := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 10 * time.Second})

		_, err := l.Allow(ctx, "ip")
		require.NoError(t, err)

		clock.Advance(2500 * time.Millisecond)
		res, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, 8*time.Second, res.RetryAfter())
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, store, _ := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

		res, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed())

		res, err = l.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())

		res, err = l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		assert.Equal(t, 2, store.Len())
	})

	t.Run("reset restores the bucket", func(t *testing.T) {
		l, _, _ := newLimiter(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})

		_, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		require.NoError(t, l.Reset(ctx, "ip"))

		res, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("invalid token count", func(t *testing.T) {
		l, _, _ := newLimiter(t, cfg)
		_, err := l.AllowN(ctx, "ip", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _, _ := newLimiter(t, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := l.Allow(context.Background(), "ip")
			if err != nil || !res.Allowed() {
				return
			}
			mu.Lock()
			allowed++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestMemoryStore_Sweep(t *testing.T) {
	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithClock(clock.Now),
		ratelimiter.WithCleanupInterval(10*time.Millisecond),
		ratelimiter.WithIdleTTL(time.Minute),
	)
	defer store.Close()

	l, err := ratelimiter.New(store, ratelimiter.DefaultConfig())
	require.NoError(t, err)

	_, err = l.Allow(context.Background(), "ip")
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	clock.Advance(2 * time.Minute)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestLimiter_RetryAfterUsesStoreClock(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithClock(func() time.Time { return past }),
		ratelimiter.WithCleanupInterval(0),
	)
	defer store.Close()

	l, err := ratelimiter.New(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 10 * time.Second})
	require.NoError(t, err)

	_, err = l.Allow(context.Background(), "ip")
	require.NoError(t, err)

	res, err := l.Allow(context.Background(), "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, 10*time.Second, res.RetryAfter())
}
