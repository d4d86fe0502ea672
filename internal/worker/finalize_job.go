package worker

import (
	"context"

	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/voting"
)

// FinalizeSweepJob is the pool job form of the daily sweep, used by the
// scheduler to catch up on days the daily worker missed.
type FinalizeSweepJob struct {
	VotingService voting.Service
	Bus           event.Bus
}

// NewFinalizeSweepJob creates a new FinalizeSweepJob
func NewFinalizeSweepJob(svc voting.Service, bus event.Bus) *FinalizeSweepJob {
	return &FinalizeSweepJob{VotingService: svc, Bus: bus}
}

func (j *FinalizeSweepJob) Name() string { return "finalize_sweep" }

// Process runs one sweep
func (j *FinalizeSweepJob) Process(ctx context.Context) error {
	return RunFinalizeSweep(ctx, j.VotingService, j.Bus, voting.SourceScheduler)
}
