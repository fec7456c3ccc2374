package scheduler

import (
	"sync"
	"time"

	"truyen/backend/pkg/logger"
)

// Sweeper is anything holding an expirable in-memory table that wants
// periodic cleanup. Both rate limiter tables implement it.
type Sweeper interface {
	Sweep()
	Len() int
}

// Scheduler periodically sweeps expired entries out of the registered
// limiter tables so idle keys do not accumulate between bursts.
type Scheduler struct {
	sweepers []Sweeper
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(interval time.Duration, sweepers ...Sweeper) *Scheduler {
	return &Scheduler{
		sweepers: sweepers,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("limiter maintenance started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("limiter maintenance stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	for _, sweeper := range s.sweepers {
		before := sweeper.Len()
		sweeper.Sweep()
		if removed := before - sweeper.Len(); removed > 0 {
			logger.Debug("limiter entries swept", "removed", removed, "remaining", sweeper.Len())
		}
	}
}
