package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"truyen/backend/internal/limiter"
	"truyen/backend/internal/scheduler"
)

func TestScheduler_SweepsExpiredEntries(t *testing.T) {
	l := limiter.New(3, 50*time.Millisecond, 5000)
	l.Allow("a")
	l.Allow("b")
	require.Equal(t, 2, l.Len())

	s := scheduler.New(25*time.Millisecond, l)
	s.Start()

	require.Eventually(t, func() bool {
		return l.Len() == 0
	}, time.Second, 10*time.Millisecond)

	s.Stop()
}

func TestScheduler_StopTerminates(t *testing.T) {
	l := limiter.New(3, time.Hour, 5000)
	s := scheduler.New(10*time.Millisecond, l)

	s.Start()
	time.Sleep(30 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
