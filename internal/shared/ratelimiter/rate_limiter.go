// Package ratelimiter throttles outbound API calls to stay inside the
// upstream provider's per-minute quota.
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface limits the frequency of an operation such as an API call.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter counts calls per interval and blocks once the limit is hit.
// Safe for concurrent use by the analysis worker pool.
type RateLimiter struct {
	limit    int           // calls allowed per interval
	interval time.Duration // window after which the count resets

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded checks whether the limit has been reached and sleeps until
// the current window expires if so.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Warn("rate limit hit, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
