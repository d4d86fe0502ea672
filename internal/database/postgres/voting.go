package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CatchCup_Go/internal/database/generated"
	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// VotingRepository implements repository.Voting for PostgreSQL.
//
// Per-day serialization uses transaction-scoped advisory locks keyed by
// (VotingDayLockNamespace, day.LockKey()): finalization takes the lock
// exclusively, vote casts take it shared. The unique keys on
// voting_results(voting_day) and votes(voter_id, voting_day) back both paths.
type VotingRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewVotingRepository creates a new VotingRepository
func NewVotingRepository(pool *pgxpool.Pool) repository.Voting {
	return &VotingRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

func (r *VotingRepository) TallyVotes(ctx context.Context, day domain.VotingDay) (domain.Tally, error) {
	return tallyVotes(ctx, r.q, day)
}

func (r *VotingRepository) GetResult(ctx context.Context, day domain.VotingDay) (*domain.VotingResult, error) {
	row, err := r.q.GetVotingResultByDay(ctx, dayToDate(day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get voting result: %w", err)
	}
	return mapVotingResult(row), nil
}

func (r *VotingRepository) ListResults(ctx context.Context, limit int) ([]domain.VotingResult, error) {
	if limit <= 0 || limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	rows, err := r.q.ListVotingResults(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list voting results: %w", err)
	}
	results := make([]domain.VotingResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, *mapVotingResult(row))
	}
	return results, nil
}

// ListPendingDays returns days strictly before `before` that have votes but no result
func (r *VotingRepository) ListPendingDays(ctx context.Context, before domain.VotingDay) ([]domain.VotingDay, error) {
	rows, err := r.q.ListPendingVotingDays(ctx, dayToDate(before))
	if err != nil {
		return nil, fmt.Errorf("failed to list pending voting days: %w", err)
	}
	days := make([]domain.VotingDay, 0, len(rows))
	for _, d := range rows {
		days = append(days, dateToDay(d))
	}
	return days, nil
}

func (r *VotingRepository) GetVote(ctx context.Context, voterID string, day domain.VotingDay) (*domain.Vote, error) {
	row, err := r.q.GetVoteByVoterAndDay(ctx, generated.GetVoteByVoterAndDayParams{
		VoterID:   voterID,
		VotingDay: dayToDate(day),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &domain.Vote{
		ID:        row.VoteID,
		CatchID:   row.CatchID,
		VoterID:   row.VoterID,
		Day:       dateToDay(row.VotingDay),
		CreatedAt: row.CreatedAt.Time,
	}, nil
}

func (r *VotingRepository) GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error) {
	return getCatch(ctx, r.q, id)
}

func (r *VotingRepository) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return getTeam(ctx, r.q, id)
}

// BeginFinalizeTx starts a transaction and blocks until the exclusive day lock is held
func (r *VotingRepository) BeginFinalizeTx(ctx context.Context, day domain.VotingDay) (repository.FinalizeTx, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return nil, err
	}
	if err := h.q.LockVotingDay(ctx, generated.LockVotingDayParams{
		Namespace: VotingDayLockNamespace,
		DayKey:    int32(day.LockKey()),
	}); err != nil {
		SafeRollback(ctx, h.tx)
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToLockVotingDay, day, err)
	}
	return &finalizeTx{txHelper: h}, nil
}

// BeginVoteTx starts a transaction and blocks until the shared day lock is held
func (r *VotingRepository) BeginVoteTx(ctx context.Context, day domain.VotingDay) (repository.VoteTx, error) {
	h, err := beginTx(ctx, r.pool, r.q)
	if err != nil {
		return nil, err
	}
	if err := h.q.LockVotingDayShared(ctx, generated.LockVotingDaySharedParams{
		Namespace: VotingDayLockNamespace,
		DayKey:    int32(day.LockKey()),
	}); err != nil {
		SafeRollback(ctx, h.tx)
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToLockVotingDay, day, err)
	}
	return &voteTx{txHelper: h}, nil
}

// finalizeTx implements repository.FinalizeTx
type finalizeTx struct {
	*txHelper
}

func (t *finalizeTx) ResultExists(ctx context.Context, day domain.VotingDay) (bool, error) {
	return resultExists(ctx, t.q, day)
}

func (t *finalizeTx) TallyVotes(ctx context.Context, day domain.VotingDay) (domain.Tally, error) {
	return tallyVotes(ctx, t.q, day)
}

func (t *finalizeTx) GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error) {
	return getCatch(ctx, t.q, id)
}

// InsertResultIfAbsent relies on ON CONFLICT (voting_day) DO NOTHING; an empty
// RETURNING set means another transaction owns the day.
func (t *finalizeTx) InsertResultIfAbsent(ctx context.Context, res *domain.VotingResult) (bool, error) {
	row, err := t.q.InsertVotingResult(ctx, generated.InsertVotingResultParams{
		CatchID:   res.CatchID,
		TeamID:    res.TeamID,
		VoteCount: res.VoteCount,
		VotingDay: dayToDate(res.Day),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertVotingResult, err)
	}
	res.ID = row.VotingResultID
	res.CreatedAt = row.CreatedAt.Time
	res.Processed = true
	return true, nil
}

func (t *finalizeTx) IncrementTeamWins(ctx context.Context, teamID int64) error {
	n, err := t.q.IncrementTeamVotingWins(ctx, teamID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToIncrementTeamWins, err)
	}
	if n == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

// voteTx implements repository.VoteTx
type voteTx struct {
	*txHelper
}

func (t *voteTx) ResultExists(ctx context.Context, day domain.VotingDay) (bool, error) {
	return resultExists(ctx, t.q, day)
}

func (t *voteTx) InsertVoteIfAbsent(ctx context.Context, v *domain.Vote) (bool, error) {
	row, err := t.q.InsertVote(ctx, generated.InsertVoteParams{
		CatchID:   v.CatchID,
		VoterID:   v.VoterID,
		VotingDay: dayToDate(v.Day),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return false, nil
		}
		if isForeignKeyViolation(err) {
			return false, domain.ErrCatchNotFound
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertVote, err)
	}
	v.ID = row.VoteID
	v.CreatedAt = row.CreatedAt.Time
	return true, nil
}
