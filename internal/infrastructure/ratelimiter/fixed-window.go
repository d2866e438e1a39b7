// Package ratelimiter implements a per-client fixed-window request limiter.
// Counters live in process memory only: behind multiple instances each
// process enforces its own quota. Known limitation, not silently fixed with
// a shared store.
package ratelimiter

import (
	"sync"
	"sync/atomic"
	"time"
)

type FixedWindowRateLimiter struct {
	counts      sync.Map // string -> *clientData
	limit       int64
	window      time.Duration
	cleanupTick *time.Ticker
	done        chan struct{}
}

type clientData struct {
	count   int64        // atomic
	resetAt atomic.Value // stores time.Time
	mu      sync.Mutex   // only for reset (rare)
}

// Result reports the outcome of a single admission decision.
type Result struct {
	Allowed    bool
	Remaining  int64
	ResetAfter time.Duration
}

func NewFixedWindowRateLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		limit:       int64(limit),
		window:      window,
		cleanupTick: time.NewTicker(window),
		done:        make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

func (rl *FixedWindowRateLimiter) Limit() int64 {
	return rl.limit
}

func (rl *FixedWindowRateLimiter) Window() time.Duration {
	return rl.window
}

func (rl *FixedWindowRateLimiter) Allow(ip string) Result {
	now := time.Now()
	windowStart := now.Truncate(rl.window)
	nextReset := windowStart.Add(rl.window)

	// Load or create
	val, _ := rl.counts.LoadOrStore(ip, &clientData{})
	data := val.(*clientData)

	// Initialize resetAt if first time
	if data.resetAt.Load() == nil {
		data.mu.Lock()
		if data.resetAt.Load() == nil {
			data.resetAt.Store(nextReset)
			atomic.StoreInt64(&data.count, 1)
			data.mu.Unlock()
			return Result{Allowed: true, Remaining: rl.limit - 1, ResetAfter: time.Until(nextReset)}
		}
		data.mu.Unlock()
	}

	currentReset := data.resetAt.Load().(time.Time)

	if now.Before(currentReset) {
		// Still in current window
		return rl.consume(data, currentReset)
	}

	// --- Window expired: reset ---
	data.mu.Lock()
	defer data.mu.Unlock()

	// Double-check after lock
	if currentReset := data.resetAt.Load().(time.Time); now.Before(currentReset) {
		// Another goroutine already handled reset
		return rl.consume(data, currentReset)
	}

	// Perform reset
	atomic.StoreInt64(&data.count, 1)
	data.resetAt.Store(nextReset)
	return Result{Allowed: true, Remaining: rl.limit - 1, ResetAfter: time.Until(nextReset)}
}

func (rl *FixedWindowRateLimiter) consume(data *clientData, resetAt time.Time) Result {
	newCount := atomic.AddInt64(&data.count, 1)
	if newCount > rl.limit {
		atomic.AddInt64(&data.count, -1) // rollback
		return Result{Allowed: false, Remaining: 0, ResetAfter: time.Until(resetAt)}
	}
	return Result{Allowed: true, Remaining: rl.limit - newCount, ResetAfter: time.Until(resetAt)}
}

func (rl *FixedWindowRateLimiter) startCleanup() {
	for {
		select {
		case <-rl.cleanupTick.C:
			rl.cleanup()
		case <-rl.done:
			return
		}
	}
}

func (rl *FixedWindowRateLimiter) cleanup() {
	now := time.Now()
	rl.counts.Range(func(key, value interface{}) bool {
		data := value.(*clientData)
		if resetAt := data.resetAt.Load(); resetAt != nil {
			if now.After(resetAt.(time.Time)) {
				rl.counts.Delete(key)
			}
		}
		return true
	})
}

func (rl *FixedWindowRateLimiter) Close() {
	close(rl.done)
	rl.cleanupTick.Stop()
}
