package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CatchCup_Go/internal/database/generated"
	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// CatchRepository implements repository.Catch for PostgreSQL
type CatchRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewCatchRepository creates a new CatchRepository
func NewCatchRepository(pool *pgxpool.Pool) repository.Catch {
	return &CatchRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// CreateCatch inserts a scored catch and fills its ID and CreatedAt
func (r *CatchRepository) CreateCatch(ctx context.Context, c *domain.CatchEntry) error {
	row, err := r.q.CreateCatch(ctx, generated.CreateCatchParams{
		TeamID:      c.TeamID,
		FishTypeID:  c.FishTypeID,
		WeightGrams: c.WeightGrams,
		Points:      c.Points,
		ImageUrl:    strToText(c.ImageURL),
		Boosted:     c.Boosted,
		CaughtAt:    timeToTimestamptz(c.CaughtAt),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: unknown team or fish type", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create catch: %w", err)
	}

	c.ID = row.CatchID
	c.CreatedAt = row.CreatedAt.Time
	return nil
}

func (r *CatchRepository) GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error) {
	return getCatch(ctx, r.q, id)
}

// ListCatchesBetween returns catches with start <= caught_at < end
func (r *CatchRepository) ListCatchesBetween(ctx context.Context, start, end time.Time) ([]domain.CatchEntry, error) {
	rows, err := r.q.ListCatchesBetween(ctx, generated.ListCatchesBetweenParams{
		StartAt: timeToTimestamptz(start),
		EndAt:   timeToTimestamptz(end),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list catches: %w", err)
	}

	catches := make([]domain.CatchEntry, 0, len(rows))
	for _, row := range rows {
		catches = append(catches, mapCatchFields(row.CatchID, row.TeamID, row.TeamName, row.FishTypeID, row.FishTypeName,
			row.WeightGrams, row.Points, row.ImageUrl, row.Boosted, row.CaughtAt, row.CreatedAt))
	}
	return catches, nil
}

func (r *CatchRepository) ListCatchesByTeam(ctx context.Context, teamID int64) ([]domain.CatchEntry, error) {
	rows, err := r.q.ListCatchesByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team catches: %w", err)
	}

	catches := make([]domain.CatchEntry, 0, len(rows))
	for _, row := range rows {
		catches = append(catches, mapCatchFields(row.CatchID, row.TeamID, row.TeamName, row.FishTypeID, row.FishTypeName,
			row.WeightGrams, row.Points, row.ImageUrl, row.Boosted, row.CaughtAt, row.CreatedAt))
	}
	return catches, nil
}

func (r *CatchRepository) GetFishType(ctx context.Context, id int64) (*domain.FishType, error) {
	row, err := r.q.GetFishType(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fish type: %w", err)
	}
	return mapFishType(row), nil
}

func (r *CatchRepository) ListFishTypes(ctx context.Context) ([]domain.FishType, error) {
	rows, err := r.q.ListFishTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fish types: %w", err)
	}
	types := make([]domain.FishType, 0, len(rows))
	for _, row := range rows {
		types = append(types, *mapFishType(row))
	}
	return types, nil
}

func (r *CatchRepository) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return getTeam(ctx, r.q, id)
}
