// Package scheduler provides the repeating reminder timer.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler fires a callback at a fixed interval.
type Scheduler struct {
	mu     sync.Mutex
	onTick func()
	stopCh chan struct{}
}

// New creates a scheduler that calls onTick at each interval.
func New(onTick func()) *Scheduler {
	return &Scheduler{onTick: onTick}
}

// Start begins ticking at the given interval. A running scheduler is
// restarted, so a changed interval takes effect immediately.
func (s *Scheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh != nil {
		close(s.stopCh)
	}
	s.stopCh = make(chan struct{})

	go s.run(interval, s.stopCh)
}

// Stop halts the scheduler. Safe to call when not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
}

// IsRunning reports whether the scheduler is ticking.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopCh != nil
}

func (s *Scheduler) run(interval time.Duration, stopCh chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if s.onTick != nil {
				s.onTick()
			}
		}
	}
}
