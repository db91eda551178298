package redisad

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripplanner/internal/adapters/observability"
)

// Limiter is a fixed-window request counter shared by every API replica.
type Limiter struct {
	c      *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// Decision is the result of one Allow call.
type Decision struct {
	Allowed   bool
	Remaining int64
	Reset     time.Time
}

func New(addr, pass string, db int, limit int, window time.Duration) *Limiter {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), limit, window)
}

func NewWithClient(c *redis.Client, limit int, window time.Duration) *Limiter {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &Limiter{c: c, limit: int64(limit), window: window, now: time.Now}
}

func (l *Limiter) Limit() int64 { return l.limit }

// Allow counts one request for key in the current window. Redis errors are returned
// alongside an allowing decision; callers fail open.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	start := l.now().Truncate(l.window)
	reset := start.Add(l.window)
	if l.limit <= 0 {
		return Decision{Allowed: true, Reset: reset}, nil
	}
	k := fmt.Sprintf("ratelimit:%s:%d", key, start.Unix())

	pipe := l.c.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		observability.ObserveRateLimit("error")
		return Decision{Allowed: true, Remaining: l.limit, Reset: reset}, err
	}

	n := incr.Val()
	if n > l.limit {
		observability.ObserveRateLimit("rejected")
		return Decision{Allowed: false, Remaining: 0, Reset: reset}, nil
	}
	observability.ObserveRateLimit("allowed")
	return Decision{Allowed: true, Remaining: l.limit - n, Reset: reset}, nil
}

func (l *Limiter) Ping(ctx context.Context) error { return l.c.Ping(ctx).Err() }

func (l *Limiter) Close() error { return l.c.Close() }
