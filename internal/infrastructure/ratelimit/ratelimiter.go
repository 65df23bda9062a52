// Package ratelimit provides the per-client request limiters used by
// the HTTP middleware chain.
package ratelimit

import "time"

// Config tunes a limiter instance.
type Config struct {
	// RequestsPerMinute is the sliding-window limit per client key.
	RequestsPerMinute int
	// Burst is the headroom above the limit; exceeding limit+burst
	// triggers a temporary block of the key.
	Burst int
	// BlockDuration is how long a blocked key stays rejected.
	BlockDuration time.Duration
}

// Limiter decides whether a request from a client key may proceed.
// Implementations must be safe for concurrent use from many
// simultaneously handled requests.
type Limiter interface {
	// Allow records one request for key and reports whether it may
	// proceed.
	Allow(key string) (bool, error)
}
