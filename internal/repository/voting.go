package repository

import (
	"context"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

// Voting defines the persistence boundary of the daily voting aggregator.
// Lookups return (nil, nil) when the row does not exist.
type Voting interface {
	TallyVotes(ctx context.Context, day domain.VotingDay) (domain.Tally, error)
	GetResult(ctx context.Context, day domain.VotingDay) (*domain.VotingResult, error)
	ListResults(ctx context.Context, limit int) ([]domain.VotingResult, error)
	ListPendingDays(ctx context.Context, before domain.VotingDay) ([]domain.VotingDay, error)
	GetVote(ctx context.Context, voterID string, day domain.VotingDay) (*domain.Vote, error)
	GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)

	// BeginFinalizeTx opens a transaction holding the exclusive lock for day.
	// Concurrent finalizations and vote casts for the same day block until it ends.
	BeginFinalizeTx(ctx context.Context, day domain.VotingDay) (FinalizeTx, error)

	// BeginVoteTx opens a transaction holding the shared lock for day.
	// Vote casts for a day run in parallel but never overlap its finalization.
	BeginVoteTx(ctx context.Context, day domain.VotingDay) (VoteTx, error)
}

// FinalizeTx is the unit of work that closes a voting day
type FinalizeTx interface {
	Tx

	ResultExists(ctx context.Context, day domain.VotingDay) (bool, error)
	TallyVotes(ctx context.Context, day domain.VotingDay) (domain.Tally, error)
	GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error)

	// InsertResultIfAbsent stores r and fills its ID and CreatedAt.
	// It returns false when the day already has a result.
	InsertResultIfAbsent(ctx context.Context, r *domain.VotingResult) (bool, error)

	// IncrementTeamWins adds one win in place. Returns domain.ErrTeamNotFound
	// if no row was updated.
	IncrementTeamWins(ctx context.Context, teamID int64) error
}

// VoteTx is the unit of work that records a single ballot
type VoteTx interface {
	Tx

	ResultExists(ctx context.Context, day domain.VotingDay) (bool, error)

	// InsertVoteIfAbsent stores v and fills its ID and CreatedAt.
	// It returns false when the voter already has a ballot for the day.
	InsertVoteIfAbsent(ctx context.Context, v *domain.Vote) (bool, error)
}
