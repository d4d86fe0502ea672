package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/mocks"
)

func TestFinalizeOne(t *testing.T) {
	day := domain.NewVotingDay(2025, time.April, 29)

	tests := []struct {
		name     string
		result   *domain.VotingResult
		err      error
		wantCode int
	}{
		{"finalized", &domain.VotingResult{ID: 1, CatchID: 7, TeamID: 2, VoteCount: 3, Day: day, Processed: true}, nil, exitOK},
		{"already processed", nil, domain.ErrAlreadyProcessed, exitNothingToDo},
		{"no votes", nil, domain.ErrNoVotes, exitNothingToDo},
		{"still open", nil, domain.ErrDayStillOpen, exitUsage},
		{"database down", nil, errors.New("connection refused"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockVotingService(t)
			svc.On("FinalizeDay", mock.Anything, day).Return(tt.result, tt.err)
			if errors.Is(tt.err, domain.ErrDayStillOpen) {
				svc.On("OpenDay").Return(day)
			}

			assert.Equal(t, tt.wantCode, finalizeOne(context.Background(), svc, day))
		})
	}
}

func TestSweep(t *testing.T) {
	day := domain.NewVotingDay(2025, time.April, 28)

	t.Run("clean sweep publishes summary", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		bus := mocks.NewMockEventBus(t)
		report := &domain.FinalizeReport{NoVotes: []domain.VotingDay{day}}
		svc.On("FinalizePending", mock.Anything).Return(report, nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		assert.Equal(t, exitOK, sweep(context.Background(), svc, bus))
	})

	t.Run("failed day is a failure", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		bus := mocks.NewMockEventBus(t)
		report := &domain.FinalizeReport{Failed: map[domain.VotingDay]string{day: "boom"}}
		svc.On("FinalizePending", mock.Anything).Return(report, nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		assert.Equal(t, exitFailure, sweep(context.Background(), svc, bus))
	})

	t.Run("no report", func(t *testing.T) {
		svc := mocks.NewMockVotingService(t)
		bus := mocks.NewMockEventBus(t)
		svc.On("FinalizePending", mock.Anything).Return(nil, errors.New("db down"))

		assert.Equal(t, exitFailure, sweep(context.Background(), svc, bus))
	})
}

func TestRun_InvalidDay(t *testing.T) {
	assert.Equal(t, exitUsage, run(context.Background(), nil, "29/04/2025"))
}
