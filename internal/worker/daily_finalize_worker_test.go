package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/testing/leaktest"
	"github.com/osse101/CatchCup_Go/internal/voting"
	"github.com/osse101/CatchCup_Go/mocks"
)

func parisLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func TestNextRunTime(t *testing.T) {
	paris := parisLocation(t)
	grace := 30 * time.Second

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "morning waits until next midnight",
			now:  time.Date(2025, 6, 15, 10, 0, 0, 0, paris),
			want: 14*time.Hour + 30*time.Second,
		},
		{
			name: "one minute before midnight",
			now:  time.Date(2025, 6, 15, 23, 59, 0, 0, paris),
			want: time.Minute + 30*time.Second,
		},
		{
			name: "inside the grace period runs today",
			now:  time.Date(2025, 6, 15, 0, 0, 10, 0, paris),
			want: 20 * time.Second,
		},
		{
			name: "exactly at the run time waits a full day",
			now:  time.Date(2025, 6, 15, 0, 0, 30, 0, paris),
			want: 24 * time.Hour,
		},
		{
			name: "spring forward day is 23 hours long",
			now:  time.Date(2025, 3, 30, 0, 0, 30, 0, paris),
			want: 23 * time.Hour,
		},
		{
			name: "utc instant is read in the contest zone",
			now:  time.Date(2025, 6, 15, 21, 30, 0, 0, time.UTC),
			want: 30*time.Minute + 30*time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextRunTime(tt.now, paris, grace).Sub(tt.now))
		})
	}
}

// armedRun reads the run time the worker is waiting for
func armedRun(w *DailyFinalizeWorker) time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nextRun
}

func TestDailyFinalizeWorker_Fire(t *testing.T) {
	paris := parisLocation(t)
	grace := 30 * time.Second

	tests := []struct {
		name      string
		runAt     time.Time
		firedAt   time.Time
		wantSweep bool
		wantNext  time.Time
	}{
		{
			name:      "on time before the 23 hour spring forward day",
			runAt:     time.Date(2026, 3, 29, 0, 0, 30, 0, paris),
			firedAt:   time.Date(2026, 3, 29, 0, 0, 29, 950_000_000, paris),
			wantSweep: true,
			wantNext:  time.Date(2026, 3, 30, 0, 0, 30, 0, paris),
		},
		{
			name:      "on time before the 25 hour fall back day",
			runAt:     time.Date(2026, 10, 25, 0, 0, 30, 0, paris),
			firedAt:   time.Date(2026, 10, 25, 0, 0, 30, 2_000_000, paris),
			wantSweep: true,
			wantNext:  time.Date(2026, 10, 26, 0, 0, 30, 0, paris),
		},
		{
			name:      "early within tolerance runs once",
			runAt:     time.Date(2025, 6, 16, 0, 0, 30, 0, paris),
			firedAt:   time.Date(2025, 6, 16, 0, 0, 25, 0, paris),
			wantSweep: true,
			wantNext:  time.Date(2025, 6, 17, 0, 0, 30, 0, paris),
		},
		{
			name:      "late fire still runs",
			runAt:     time.Date(2025, 6, 16, 0, 0, 30, 0, paris),
			firedAt:   time.Date(2025, 6, 16, 0, 5, 0, 0, paris),
			wantSweep: true,
			wantNext:  time.Date(2025, 6, 17, 0, 0, 30, 0, paris),
		},
		{
			name:      "too early re-arms for the same run",
			runAt:     time.Date(2025, 6, 16, 0, 0, 30, 0, paris),
			firedAt:   time.Date(2025, 6, 15, 23, 58, 0, 0, paris),
			wantSweep: false,
			wantNext:  time.Date(2025, 6, 16, 0, 0, 30, 0, paris),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockVotingService(t)
			if tt.wantSweep {
				svc.On("FinalizePending", mock.Anything).Return(&domain.FinalizeReport{}, nil).Once()
			}

			w := NewDailyFinalizeWorker(svc, nil, paris, grace)
			w.now = func() time.Time { return tt.firedAt }

			w.fire(tt.runAt)
			assert.True(t, tt.wantNext.Equal(armedRun(w)), "next run %s, want %s", armedRun(w), tt.wantNext)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			require.NoError(t, w.Shutdown(ctx))
			if !tt.wantSweep {
				svc.AssertNotCalled(t, "FinalizePending", mock.Anything)
			}
		})
	}
}

func TestDailyFinalizeWorker_NoSweepAfterShutdown(t *testing.T) {
	svc := mocks.NewMockVotingService(t)
	w := NewDailyFinalizeWorker(svc, nil, time.UTC, 0)
	require.NoError(t, w.Shutdown(context.Background()))

	w.executeSweep()
	w.fire(time.Now())

	require.NoError(t, w.Shutdown(context.Background()))
	svc.AssertNotCalled(t, "FinalizePending", mock.Anything)
}

func TestRunFinalizeSweep(t *testing.T) {
	day := domain.NewVotingDay(2025, 6, 13)
	report := &domain.FinalizeReport{
		Finalized: []domain.VotingResult{{Day: day, CatchID: 7, TeamID: 2, VoteCount: 12, Processed: true}},
		NoVotes:   []domain.VotingDay{day.AddDays(-1)},
		Failed:    map[domain.VotingDay]string{},
	}

	t.Run("publishes summary with the caller's source", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		bus := mocks.NewMockEventBus(t)

		svc.On("FinalizePending", mock.MatchedBy(func(ctx context.Context) bool {
			return voting.SourceFromContext(ctx) == voting.SourceScheduler
		})).Return(report, nil).Once()
		bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			payload, ok := e.Payload.(domain.VotingSweepCompletePayload)
			return ok && e.Type == event.VotingSweepDone && payload.Finalized == 1 && payload.NoVotes == 1
		})).Return(nil).Once()

		err := RunFinalizeSweep(context.Background(), svc, bus, voting.SourceScheduler)
		assert.NoError(t, err)
	})

	t.Run("listing failure publishes nothing", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		bus := mocks.NewMockEventBus(t)
		svc.On("FinalizePending", mock.Anything).Return(nil, errors.New("db down")).Once()

		err := RunFinalizeSweep(context.Background(), svc, bus, voting.SourceWorker)
		assert.EqualError(t, err, "db down")
		bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("cancelled sweep still publishes partial report", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		bus := mocks.NewMockEventBus(t)
		svc.On("FinalizePending", mock.Anything).Return(report, context.Canceled).Once()
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		err := RunFinalizeSweep(context.Background(), svc, bus, voting.SourceWorker)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("publish failure is not a sweep failure", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		bus := mocks.NewMockEventBus(t)
		svc.On("FinalizePending", mock.Anything).Return(report, nil).Once()
		bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("handler failed")).Once()

		assert.NoError(t, RunFinalizeSweep(context.Background(), svc, bus, voting.SourceWorker))
	})

	t.Run("nil bus", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		svc.On("FinalizePending", mock.Anything).Return(report, nil).Once()

		assert.NoError(t, RunFinalizeSweep(context.Background(), svc, nil, voting.SourceCLI))
	})
}

func TestFinalizeSweepJob_Process(t *testing.T) {
	svc := mocks.NewMockVotingService(t)
	svc.On("FinalizePending", mock.MatchedBy(func(ctx context.Context) bool {
		return voting.SourceFromContext(ctx) == voting.SourceScheduler
	})).Return(&domain.FinalizeReport{}, nil).Once()

	job := NewFinalizeSweepJob(svc, nil)
	assert.NoError(t, job.Process(context.Background()))
}

func TestDailyFinalizeWorker_FiresAtRunTime(t *testing.T) {
	paris := parisLocation(t)
	svc := mocks.NewMockVotingService(t)
	ran := make(chan struct{}, 1)
	svc.On("FinalizePending", mock.Anything).
		Run(func(mock.Arguments) { ran <- struct{}{} }).
		Return(&domain.FinalizeReport{}, nil).Once()

	w := NewDailyFinalizeWorker(svc, nil, paris, 0)
	// Armed a few ms before midnight, every later reading is just after it,
	// so the reschedule parks in standby for the next day.
	var calls atomic.Int32
	w.now = func() time.Time {
		if calls.Add(1) == 1 {
			return time.Date(2025, 6, 15, 23, 59, 59, 990_000_000, paris)
		}
		return time.Date(2025, 6, 16, 0, 0, 0, 1_000_000, paris)
	}
	w.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
}

func TestDailyFinalizeWorker_StartAndShutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	svc := mocks.NewMockVotingService(t)
	w := NewDailyFinalizeWorker(svc, nil, parisLocation(t), DefaultFinalizeGrace)
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))

	// Second shutdown is a no-op
	assert.NoError(t, w.Shutdown(ctx))
	svc.AssertNotCalled(t, "FinalizePending", mock.Anything)
	checker.Check(0)
}

func TestDailyFinalizeWorker_ShutdownTimeout(t *testing.T) {
	svc := mocks.NewMockVotingService(t)
	release := make(chan struct{})
	svc.On("FinalizePending", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&domain.FinalizeReport{}, nil).Once()

	w := NewDailyFinalizeWorker(svc, nil, time.UTC, 0)
	w.executeSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	assert.NoError(t, w.Shutdown(ctx2))
}
