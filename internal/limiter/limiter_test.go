package limiter

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, window time.Duration, maxEntries int) (*Limiter, *time.Time) {
	l := New(limit, window, maxEntries)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := &now
	l.now = func() time.Time { return *current }
	return l, current
}

func TestAllow_WithinLimit(t *testing.T) {
	l, _ := newTestLimiter(3, time.Hour, 5000)

	for i := 1; i <= 3; i++ {
		d := l.Allow("1.2.3.4:manga-1")
		require.True(t, d.Allowed, "request %d should be allowed", i)
	}

	d := l.Allow("1.2.3.4:manga-1")
	require.False(t, d.Allowed, "4th request in the window must be denied")
	require.Greater(t, d.RetryAfter, time.Duration(0))
	require.LessOrEqual(t, d.RetryAfter, time.Hour)
}

func TestAllow_IndependentKeys(t *testing.T) {
	l, _ := newTestLimiter(3, time.Hour, 5000)

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("1.2.3.4:manga-1").Allowed)
	}
	require.False(t, l.Allow("1.2.3.4:manga-1").Allowed)

	// Different manga and different client each get their own window.
	require.True(t, l.Allow("1.2.3.4:manga-2").Allowed)
	require.True(t, l.Allow("5.6.7.8:manga-1").Allowed)
}

func TestAllow_WindowReset(t *testing.T) {
	l, now := newTestLimiter(3, time.Hour, 5000)

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("key").Allowed)
	}
	require.False(t, l.Allow("key").Allowed)

	// Just before expiry the request is still denied.
	*now = now.Add(time.Hour - time.Second)
	d := l.Allow("key")
	require.False(t, d.Allowed)
	require.LessOrEqual(t, d.RetryAfter, time.Second)

	// Once the window has passed, the counter starts over.
	*now = now.Add(2 * time.Second)
	require.True(t, l.Allow("key").Allowed)
	require.True(t, l.Allow("key").Allowed)
	require.True(t, l.Allow("key").Allowed)
	require.False(t, l.Allow("key").Allowed)
}

func TestAllow_RetryAfterShrinksOverTime(t *testing.T) {
	l, now := newTestLimiter(1, time.Hour, 5000)

	require.True(t, l.Allow("key").Allowed)

	first := l.Allow("key")
	require.False(t, first.Allowed)
	require.Equal(t, time.Hour, first.RetryAfter)

	*now = now.Add(30 * time.Minute)
	second := l.Allow("key")
	require.False(t, second.Allowed)
	require.Equal(t, 30*time.Minute, second.RetryAfter)
}

func TestAllow_SweepsExpiredEntriesPastThreshold(t *testing.T) {
	l, now := newTestLimiter(3, time.Hour, 10)

	for i := 0; i < 11; i++ {
		require.True(t, l.Allow(fmt.Sprintf("key-%d", i)).Allowed)
	}
	require.Equal(t, 11, l.Len())

	// All 11 entries expire; the next Allow notices the oversized table
	// and sweeps them before inserting the new key.
	*now = now.Add(2 * time.Hour)
	require.True(t, l.Allow("fresh").Allowed)
	require.Equal(t, 1, l.Len())
}

func TestSweep(t *testing.T) {
	l, now := newTestLimiter(3, time.Hour, 5000)

	l.Allow("a")
	l.Allow("b")
	require.Equal(t, 2, l.Len())

	l.Sweep()
	require.Equal(t, 2, l.Len(), "live entries must survive a sweep")

	*now = now.Add(2 * time.Hour)
	l.Sweep()
	require.Equal(t, 0, l.Len())
}

func TestAllow_Concurrent(t *testing.T) {
	l := New(100, time.Hour, 5000)

	const goroutines = 20
	const perGoroutine = 10

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				if l.Allow("shared").Allowed {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	// 200 attempts against a limit of 100: exactly 100 may pass.
	require.Equal(t, 100, allowed)
}
