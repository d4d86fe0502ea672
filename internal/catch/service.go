package catch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/logger"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// Service manages the catch log
type Service interface {
	LogCatch(ctx context.Context, req LogCatchRequest) (*domain.CatchEntry, error)
	GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error)
	ListCatchesByDay(ctx context.Context, day domain.VotingDay) ([]domain.CatchEntry, error)
	ListCatchesByTeam(ctx context.Context, teamID int64) ([]domain.CatchEntry, error)
	ListFishTypes(ctx context.Context) ([]domain.FishType, error)
}

// LogCatchRequest describes a new catch. A zero CaughtAt means now.
type LogCatchRequest struct {
	TeamID      int64
	FishTypeID  int64
	WeightGrams int64
	ImageURL    string
	Boosted     bool
	CaughtAt    time.Time
}

type service struct {
	repo repository.Catch
	bus  event.Bus
	loc  *time.Location
	now  func() time.Time
}

// NewService creates a new catch service. Days are computed in loc.
func NewService(repo repository.Catch, bus event.Bus, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo: repo,
		bus:  bus,
		loc:  loc,
		now:  time.Now,
	}
}

// LogCatch scores and stores a catch. Points come from the fish type
// coefficient and are fixed at creation.
func (s *service) LogCatch(ctx context.Context, req LogCatchRequest) (*domain.CatchEntry, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	team, err := s.repo.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrTeamNotFound, req.TeamID)
	}

	fishType, err := s.repo.GetFishType(ctx, req.FishTypeID)
	if err != nil {
		return nil, err
	}
	if fishType == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrFishTypeNotFound, req.FishTypeID)
	}

	c := &domain.CatchEntry{
		TeamID:       team.ID,
		TeamName:     team.Name,
		FishTypeID:   fishType.ID,
		FishTypeName: fishType.Name,
		WeightGrams:  req.WeightGrams,
		Points:       domain.ComputePoints(req.WeightGrams, fishType.Coefficient),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		Boosted:      req.Boosted,
		CaughtAt:     req.CaughtAt,
	}
	if err := s.repo.CreateCatch(ctx, c); err != nil {
		return nil, err
	}

	day := domain.VotingDayOf(c.CaughtAt, s.loc)
	logger.FromContext(ctx).Info(LogMsgCatchLogged,
		"catch_id", c.ID,
		"team_id", c.TeamID,
		"fish_type", c.FishTypeName,
		"weight_grams", c.WeightGrams,
		"points", c.Points,
		"day", day.String())

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewCatchLoggedEvent(*c, day)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "catch_id", c.ID, "error", err)
		}
	}
	return c, nil
}

func (s *service) validate(req *LogCatchRequest) error {
	if req.TeamID <= 0 || req.FishTypeID <= 0 {
		return fmt.Errorf("%w: team_id and fish_type_id are required", domain.ErrInvalidInput)
	}
	if req.WeightGrams <= 0 || req.WeightGrams > domain.MaxCatchWeightGrams {
		return fmt.Errorf("%w: weight must be between 1 and %d grams", domain.ErrInvalidInput, domain.MaxCatchWeightGrams)
	}
	now := s.now()
	if req.CaughtAt.IsZero() {
		req.CaughtAt = now
	}
	if req.CaughtAt.After(now.Add(MaxClockSkew)) {
		return fmt.Errorf("%w: caught_at is in the future", domain.ErrInvalidInput)
	}
	return nil
}

func (s *service) GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error) {
	c, err := s.repo.GetCatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrCatchNotFound, id)
	}
	return c, nil
}

// ListCatchesByDay returns the catches made on day in the contest time zone
func (s *service) ListCatchesByDay(ctx context.Context, day domain.VotingDay) ([]domain.CatchEntry, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", domain.ErrInvalidInput)
	}
	start, end := day.Bounds(s.loc)
	return s.repo.ListCatchesBetween(ctx, start, end)
}

func (s *service) ListCatchesByTeam(ctx context.Context, teamID int64) ([]domain.CatchEntry, error) {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrTeamNotFound, teamID)
	}
	return s.repo.ListCatchesByTeam(ctx, teamID)
}

func (s *service) ListFishTypes(ctx context.Context) ([]domain.FishType, error) {
	return s.repo.ListFishTypes(ctx)
}
