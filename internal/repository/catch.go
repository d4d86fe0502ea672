package repository

import (
	"context"
	"time"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

// Catch defines the data access required by the catch service.
// Lookups return (nil, nil) when the row does not exist.
type Catch interface {
	CreateCatch(ctx context.Context, c *domain.CatchEntry) error
	GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error)
	ListCatchesBetween(ctx context.Context, start, end time.Time) ([]domain.CatchEntry, error)
	ListCatchesByTeam(ctx context.Context, teamID int64) ([]domain.CatchEntry, error)

	GetFishType(ctx context.Context, id int64) (*domain.FishType, error)
	ListFishTypes(ctx context.Context) ([]domain.FishType, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
}
