// Package limiter implements a fixed-window request limiter keyed by an
// opaque string (typically client IP, or client IP plus content id).
//
// The table is process-local: in a multi-instance deployment each instance
// throttles independently, so the limit is best-effort rather than a global
// guarantee.
package limiter

import (
	"sync"
	"time"
)

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter allows at most limit requests per key inside a fixed window.
// Once the window expires the count starts over.
type Limiter struct {
	mu         sync.Mutex
	entries    map[string]*entry
	window     time.Duration
	limit      int
	maxEntries int
	now        func() time.Time
}

// New creates a limiter allowing limit requests per window per key.
// maxEntries bounds the in-memory table: when an Allow call observes more
// entries, expired ones are swept as housekeeping.
func New(limit int, window time.Duration, maxEntries int) *Limiter {
	return &Limiter{
		entries:    make(map[string]*entry),
		window:     window,
		limit:      limit,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Allow records a request for key and reports whether it is within the
// window's limit. Check and update happen atomically under one lock so two
// concurrent requests cannot both consume the same remaining slot.
func (l *Limiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if len(l.entries) > l.maxEntries {
		l.sweepLocked(now)
	}

	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return Decision{Allowed: true}
	}

	if e.count < l.limit {
		e.count++
		return Decision{Allowed: true}
	}

	return Decision{Allowed: false, RetryAfter: e.resetAt.Sub(now)}
}

// Sweep removes expired entries. Allow already sweeps when the table grows
// past maxEntries; this is for periodic background maintenance.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sweepLocked(l.now())
}

// Len returns the current number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Limiter) sweepLocked(now time.Time) {
	for key, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, key)
		}
	}
}
