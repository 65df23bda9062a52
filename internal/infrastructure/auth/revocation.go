package auth

import (
	"sync"
	"time"
)

// RevocationList is the in-memory set of token identifiers invalidated
// before their natural expiry. Entries are purged lazily on lookup once
// the underlying token would have expired anyway, so no sweeper
// goroutine is needed. Safe for concurrent use.
type RevocationList struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		entries: make(map[string]time.Time),
	}
}

// Revoke records a token identifier until the given expiry.
func (l *RevocationList) Revoke(jti string, expiresAt time.Time) {
	if jti == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[jti] = expiresAt
}

// IsRevoked reports whether the identifier is in the revocation set,
// purging any entries whose tokens have since expired.
func (l *RevocationList) IsRevoked(jti string) bool {
	now := time.Now().UTC()
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, exp := range l.entries {
		if now.After(exp) {
			delete(l.entries, id)
		}
	}

	_, revoked := l.entries[jti]
	return revoked
}

// Len returns the number of live revocation entries.
func (l *RevocationList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
