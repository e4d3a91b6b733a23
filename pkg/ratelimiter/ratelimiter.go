package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config describes a token bucket. The zero value is invalid; use
// DefaultConfig or load it with pkg/config.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"10s"`
}

// DefaultConfig allows a burst of five submissions, then one every ten seconds.
func DefaultConfig() Config {
	return Config{Capacity: 5, RefillRate: 1, RefillInterval: 10 * time.Second}
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of a single Allow call.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	now       time.Time
}

// Allowed reports whether the request fit into the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is zero for allowed requests, otherwise the time until the
// next refill on the store's clock, rounded up to whole seconds.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	now := r.now
	if now.IsZero() {
		now = time.Now()
	}
	d := r.ResetAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return (d + time.Second - 1).Truncate(time.Second)
}

// State is the bucket for one key right after a ConsumeTokens call.
// Now is the store's clock at that call; ResetAt is measured on the same clock.
type State struct {
	Remaining int
	ResetAt   time.Time
	Now       time.Time
}

// Store persists bucket state per key.
type Store interface {
	// ConsumeTokens takes tokens from the bucket for key. A negative
	// remaining count means the request must be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (State, error)
	Reset(ctx context.Context, key string) error
}

// Limiter applies one bucket configuration to many keys.
type Limiter struct {
	store  Store
	config Config
}

func New(store Store, cfg Config) (*Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Limiter{store: store, config: cfg}, nil
}

func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	return l.AllowN(ctx, key, 1)
}

func (l *Limiter) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	st, err := l.store.ConsumeTokens(ctx, key, n, l.config)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: l.config.Capacity, Remaining: st.Remaining, ResetAt: st.ResetAt, now: st.Now}, nil
}

func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
