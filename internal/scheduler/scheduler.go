package scheduler

import (
	"context"
	"sync"
	"time"

	"promptcraft/backend/internal/logger"
)

// Purger removes prompts that have sat in Trash longer than olderThan.
// service.TrashService satisfies it.
type Purger interface {
	PurgeExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Scheduler runs the trash purge on a fixed interval.
type Scheduler struct {
	purger     Purger
	interval   time.Duration
	retention  time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current purge
	mu         sync.Mutex         // protects cancelFunc and started
	started    bool
}

func New(purger Purger, interval, retention time.Duration) *Scheduler {
	return &Scheduler{
		purger:    purger,
		interval:  interval,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the purge loop. A zero retention or interval leaves the
// scheduler idle.
func (s *Scheduler) Start() {
	if s.retention <= 0 || s.interval <= 0 {
		logger.Info("scheduler disabled", "module", "scheduler", "action", "purge", "resource", "trash", "result", "skipped")
		return
	}

	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "purge", "resource", "trash", "result", "ok",
		"interval_ms", s.interval.Milliseconds(),
		"retention_ms", s.retention.Milliseconds(),
	)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	started := s.started
	s.started = false
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	if !started {
		return
	}
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "purge", "resource", "trash", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.purge()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purge()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	removed, err := s.purger.PurgeExpired(ctx, s.retention)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("trash purge cancelled", "module", "scheduler", "action", "purge", "resource", "trash", "result", "cancelled")
			return
		}
		logger.Error("trash purge failed", "module", "scheduler", "action", "purge", "resource", "trash", "result", "failed", "error", err)
		return
	}
	if removed > 0 {
		logger.Info("trash purged", "module", "scheduler", "action", "purge", "resource", "trash", "result", "ok", "count", removed)
	}
}
