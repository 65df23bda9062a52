package ratelimit

import (
	"sync"
	"time"
)

const slidingWindow = time.Minute

// MemoryLimiter keeps a per-key sliding window of request timestamps
// plus a temporary block list. All state is process-local and guarded
// by a single mutex; cleanup is lazy, performed inline during lookups.
type MemoryLimiter struct {
	mu      sync.Mutex
	cfg     Config
	history map[string][]time.Time
	blocked map[string]time.Time

	// now is swappable for tests.
	now func() time.Time
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.BlockDuration <= 0 {
		cfg.BlockDuration = 5 * time.Minute
	}
	return &MemoryLimiter{
		cfg:     cfg,
		history: make(map[string][]time.Time),
		blocked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Allow implements Limiter. A key over the sliding-window limit is
// rejected; a key over limit+burst is additionally blocked for the
// configured duration, during which every request is rejected
// regardless of the window count.
func (l *MemoryLimiter) Allow(key string) (bool, error) {
	now := l.now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Lazy block expiry.
	if until, ok := l.blocked[key]; ok {
		if now.Before(until) {
			return false, nil
		}
		delete(l.blocked, key)
	}

	cutoff := now.Add(-slidingWindow)
	window := l.history[key]
	live := window[:0]
	for _, ts := range window {
		if ts.After(cutoff) {
			live = append(live, ts)
		}
	}
	live = append(live, now)
	l.history[key] = live

	count := len(live)
	if count > l.cfg.RequestsPerMinute+l.cfg.Burst {
		l.blocked[key] = now.Add(l.cfg.BlockDuration)
		// Drop the history so memory does not grow while blocked.
		delete(l.history, key)
		return false, nil
	}
	if count > l.cfg.RequestsPerMinute {
		return false, nil
	}

	return true, nil
}

// Blocked reports whether the key is currently under a temporary block.
func (l *MemoryLimiter) Blocked(key string) bool {
	now := l.now().UTC()
	l.mu.Lock()
	defer l.mu.Unlock()
	until, ok := l.blocked[key]
	if !ok {
		return false
	}
	if now.Before(until) {
		return true
	}
	delete(l.blocked, key)
	return false
}
