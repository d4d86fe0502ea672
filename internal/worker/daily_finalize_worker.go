package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/logger"
	"github.com/osse101/CatchCup_Go/internal/voting"
)

// DailyFinalizeWorker finalizes elapsed voting days shortly after each
// contest-timezone midnight.
type DailyFinalizeWorker struct {
	votingService voting.Service
	bus           event.Bus
	loc           *time.Location
	grace         time.Duration
	now           func() time.Time

	timer    *time.Timer
	nextRun  time.Time
	lastRun  time.Time
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyFinalizeWorker creates a new DailyFinalizeWorker. bus may be nil.
func NewDailyFinalizeWorker(votingService voting.Service, bus event.Bus, loc *time.Location, grace time.Duration) *DailyFinalizeWorker {
	if loc == nil {
		loc = time.UTC
	}
	if grace < 0 {
		grace = DefaultFinalizeGrace
	}
	return &DailyFinalizeWorker{
		votingService: votingService,
		bus:           bus,
		loc:           loc,
		grace:         grace,
		now:           time.Now,
		shutdown:      make(chan struct{}),
	}
}

// Start schedules the first sweep
func (w *DailyFinalizeWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next run. Far-off runs first get a
// standby wake-up so the final timer is always armed less than an hour ahead.
func (w *DailyFinalizeWorker) scheduleNext() {
	log := logger.FromContext(context.Background())
	now := w.now()

	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// A run that fired a little early must not be scheduled again
	from := now
	if !w.lastRun.IsZero() && !from.After(w.lastRun) {
		from = w.lastRun
	}
	runAt := nextRunTime(from, w.loc, w.grace)
	w.nextRun = runAt
	duration := runAt.Sub(now)

	if duration > StandbyThreshold {
		waitDuration := duration - StandbyLead
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		w.mu.Unlock()

		log.Info(LogMsgFinalizeSweepStandby, "next_check_at", now.Add(waitDuration).In(w.loc))
		return
	}

	w.timer = time.AfterFunc(duration, func() { w.fire(runAt) })
	w.mu.Unlock()

	log.Info(LogMsgFinalizeSweepApproach, "next_run_at", runAt)
}

// fire runs the sweep armed for runAt. A timer that went off more than
// EarlyFireTolerance ahead of runAt is re-armed instead.
func (w *DailyFinalizeWorker) fire(runAt time.Time) {
	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.now().Before(runAt.Add(-EarlyFireTolerance)) {
		w.scheduleNext()
		return
	}

	w.mu.Lock()
	w.lastRun = runAt
	w.mu.Unlock()

	w.executeSweep()
	w.scheduleNext()
}

// executeSweep runs FinalizePending in a tracked goroutine. It does nothing
// once Shutdown has begun.
func (w *DailyFinalizeWorker) executeSweep() {
	w.mu.Lock()
	select {
	case <-w.shutdown:
		w.mu.Unlock()
		return
	default:
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		_ = RunFinalizeSweep(context.Background(), w.votingService, w.bus, voting.SourceWorker)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight sweep
func (w *DailyFinalizeWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFinalizeWorkerStopping)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info(LogMsgFinalizeWorkerCancelled)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgFinalizeWorkerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgFinalizeWorkerTimeout)
		return ctx.Err()
	}
}

// RunFinalizeSweep finalizes every pending day and publishes a
// voting.sweep_complete summary. A partial report is still published when
// the sweep is cut short.
func RunFinalizeSweep(ctx context.Context, svc voting.Service, bus event.Bus, source string) error {
	ctx = voting.WithSource(ctx, source)
	log := logger.FromContext(ctx)
	log.Info(LogMsgFinalizeSweepStarting, "source", source)

	report, err := svc.FinalizePending(ctx)
	if err != nil {
		log.Error(LogMsgFinalizeSweepFailed, "source", source, "error", err)
	}
	if report == nil {
		return err
	}

	log.Info(LogMsgFinalizeSweepCompleted,
		"source", source,
		"finalized", len(report.Finalized),
		"failed", len(report.Failed))

	if bus != nil {
		if pubErr := bus.Publish(ctx, event.NewVotingSweepCompleteEvent(*report)); pubErr != nil {
			log.Warn(LogMsgSweepPublishFailed, "event_type", event.VotingSweepDone, "error", pubErr)
		}
	}
	return err
}

// nextRunTime returns the first contest midnight plus grace strictly after now
func nextRunTime(now time.Time, loc *time.Location, grace time.Duration) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).Add(grace)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc).Add(grace)
	}
	return next
}
