package drinks

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/logger"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// Service records drinks logged by team members
type Service interface {
	LogDrinks(ctx context.Context, req LogDrinksRequest) (*domain.DrinkEntry, error)
	ListDrinksByDay(ctx context.Context, day domain.VotingDay) ([]domain.DrinkEntry, error)
}

// LogDrinksRequest adds Count drinks for a member. A zero Day means today.
type LogDrinksRequest struct {
	MemberID int64
	Count    int32
	Day      domain.VotingDay
}

type service struct {
	repo repository.Team
	bus  event.Bus
	loc  *time.Location
	now  func() time.Time
}

// NewService creates a new drinks service
func NewService(repo repository.Team, bus event.Bus, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{repo: repo, bus: bus, loc: loc, now: time.Now}
}

func (s *service) LogDrinks(ctx context.Context, req LogDrinksRequest) (*domain.DrinkEntry, error) {
	if req.MemberID <= 0 {
		return nil, fmt.Errorf("%w: member_id is required", domain.ErrInvalidInput)
	}
	if req.Count <= 0 || req.Count > domain.MaxDrinksPerEntry {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", domain.ErrInvalidInput, domain.MaxDrinksPerEntry)
	}

	today := domain.VotingDayOf(s.now(), s.loc)
	day := req.Day
	if day.IsZero() {
		day = today
	}
	if day.After(today) {
		return nil, fmt.Errorf("%w: drinks cannot be logged for %s yet", domain.ErrInvalidInput, day)
	}

	member, err := s.repo.GetMember(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrMemberNotFound, req.MemberID)
	}

	entry := &domain.DrinkEntry{
		MemberID: member.ID,
		TeamID:   member.TeamID,
		Count:    req.Count,
		Day:      day,
	}
	if err := s.repo.CreateDrinkEntry(ctx, entry); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("Drinks logged", "member", member.Username, "team_id", entry.TeamID, "count", entry.Count, "day", day.String())

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewDrinkLoggedEvent(*entry)); err != nil {
			log.Warn("Failed to publish drink event", "error", err)
		}
	}
	return entry, nil
}

func (s *service) ListDrinksByDay(ctx context.Context, day domain.VotingDay) ([]domain.DrinkEntry, error) {
	if day.IsZero() {
		day = domain.VotingDayOf(s.now(), s.loc)
	}
	return s.repo.ListDrinksByDay(ctx, day)
}
