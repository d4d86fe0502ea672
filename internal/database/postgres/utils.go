package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CatchCup_Go/internal/database/generated"
	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// txHelper wraps common transaction begin logic.
// Returns a transaction and queries instance with the transaction applied.
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a new transaction and returns a txHelper for common operations.
// Use SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &txHelper{
		tx: tx,
		q:  q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (h *txHelper) Commit(ctx context.Context) error {
	return h.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (h *txHelper) Rollback(ctx context.Context) error {
	return h.tx.Rollback(ctx)
}

// isUniqueViolation reports whether err is a Postgres unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// isForeignKeyViolation reports whether err is a Postgres foreign key violation
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}

// dayToDate converts a voting day to a DATE parameter
func dayToDate(d domain.VotingDay) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: !d.IsZero()}
}

// dateToDay converts a DATE column to a voting day
func dateToDay(d pgtype.Date) domain.VotingDay {
	if !d.Valid {
		return domain.VotingDay{}
	}
	return domain.VotingDayFromDate(d.Time)
}

func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

// strToText converts a string to pgtype.Text
func strToText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func mapTeam(row generated.Team) *domain.Team {
	return &domain.Team{
		ID:         row.TeamID,
		Name:       row.Name,
		VotingWins: row.VotingWins,
		CreatedAt:  row.CreatedAt.Time,
	}
}

func mapMember(row generated.Member) *domain.Member {
	return &domain.Member{
		ID:        row.MemberID,
		Username:  row.Username,
		TeamID:    row.TeamID,
		CreatedAt: row.CreatedAt.Time,
	}
}

func mapFishType(row generated.FishType) *domain.FishType {
	return &domain.FishType{
		ID:          row.FishTypeID,
		Name:        row.Name,
		Coefficient: row.Coefficient,
	}
}

func mapVotingResult(row generated.VotingResult) *domain.VotingResult {
	return &domain.VotingResult{
		ID:        row.VotingResultID,
		CatchID:   row.CatchID,
		TeamID:    row.TeamID,
		VoteCount: row.VoteCount,
		Day:       dateToDay(row.VotingDay),
		Processed: row.Processed,
		CreatedAt: row.CreatedAt.Time,
	}
}

func mapCatchFields(id, teamID int64, teamName string, fishTypeID int64, fishTypeName string,
	weight, points int64, imageURL pgtype.Text, boosted bool, caughtAt, createdAt pgtype.Timestamptz) domain.CatchEntry {
	return domain.CatchEntry{
		ID:           id,
		TeamID:       teamID,
		TeamName:     teamName,
		FishTypeID:   fishTypeID,
		FishTypeName: fishTypeName,
		WeightGrams:  weight,
		Points:       points,
		ImageURL:     imageURL.String,
		Boosted:      boosted,
		CaughtAt:     caughtAt.Time,
		CreatedAt:    createdAt.Time,
	}
}

// getCatch is shared by the catch and voting repositories, in and out of transactions
func getCatch(ctx context.Context, q *generated.Queries, id int64) (*domain.CatchEntry, error) {
	row, err := q.GetCatch(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catch: %w", err)
	}
	c := mapCatchFields(row.CatchID, row.TeamID, row.TeamName, row.FishTypeID, row.FishTypeName,
		row.WeightGrams, row.Points, row.ImageUrl, row.Boosted, row.CaughtAt, row.CreatedAt)
	return &c, nil
}

func getTeam(ctx context.Context, q *generated.Queries, id int64) (*domain.Team, error) {
	row, err := q.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return mapTeam(row), nil
}

func tallyVotes(ctx context.Context, q *generated.Queries, day domain.VotingDay) (domain.Tally, error) {
	rows, err := q.TallyVotesByDay(ctx, dayToDate(day))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToTallyVotes, err)
	}
	tally := make(domain.Tally, len(rows))
	for _, row := range rows {
		tally[row.CatchID] = row.VoteCount
	}
	return tally, nil
}

func resultExists(ctx context.Context, q *generated.Queries, day domain.VotingDay) (bool, error) {
	exists, err := q.VotingResultExists(ctx, dayToDate(day))
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckVotingResult, err)
	}
	return exists, nil
}

// ---- End Common Helper Functions ----
