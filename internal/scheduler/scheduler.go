package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CatchCup_Go/internal/logger"
	"github.com/osse101/CatchCup_Go/internal/worker"
)

const (
	LogMsgJobSkipped       = "Scheduled job skipped, worker queue full"
	LogMsgScheduleDisabled = "Scheduled job disabled, interval must be positive"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A tick is dropped
// when the previous run is still queued.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, false)
}

// ScheduleNow is Schedule with one extra run enqueued right away, so a
// restarted process catches up without waiting a full interval.
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, true)
}

func (s *Scheduler) schedule(interval time.Duration, job worker.Job, immediate bool) {
	if interval <= 0 {
		logger.FromContext(context.Background()).Warn(LogMsgScheduleDisabled, "interval", interval)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if immediate {
			s.enqueue(job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(job worker.Job) {
	if !s.workerPool.TryEnqueue(job) {
		logger.FromContext(context.Background()).Warn(LogMsgJobSkipped)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
