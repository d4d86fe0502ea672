package standings

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/logger"
	"github.com/osse101/CatchCup_Go/internal/metrics"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// Cache defaults
const (
	DefaultCacheSize = 4
	DefaultCacheTTL  = 30 * time.Second
)

// Service serves the team scoreboard
type Service interface {
	GetStandings(ctx context.Context) ([]domain.TeamStanding, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	Invalidate()
}

type service struct {
	repo  repository.Team
	cache *standingsCache
}

// NewService creates a standings service with a TTL cache. Pass a zero ttl
// for DefaultCacheTTL.
func NewService(repo repository.Team, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newStandingsCache(DefaultCacheSize, ttl),
	}
}

// Subscribe drops the cached scoreboard whenever a score-changing event fires
func Subscribe(bus event.Bus, svc Service) {
	handler := func(ctx context.Context, evt event.Event) error {
		logger.FromContext(ctx).Debug("Invalidating standings cache", "event", evt.Type)
		svc.Invalidate()
		return nil
	}
	bus.Subscribe(event.VotingDayFinalized, handler)
	bus.Subscribe(event.CatchLogged, handler)
	bus.Subscribe(event.DrinkLogged, handler)
}

// GetStandings returns one row per team ordered by wins, then points, then name
func (s *service) GetStandings(ctx context.Context) ([]domain.TeamStanding, error) {
	if rows, ok := s.cache.Get(); ok {
		metrics.StandingsCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return rows, nil
	}
	metrics.StandingsCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()

	gen := s.cache.Generation()
	rows, err := s.repo.GetTeamStandings(ctx)
	if err != nil {
		return nil, err
	}
	SortStandings(rows)
	if !s.cache.SetIfCurrent(gen, rows) {
		logger.FromContext(ctx).Debug("Standings changed during read, not caching")
	}
	return rows, nil
}

func (s *service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.repo.ListTeams(ctx)
}

func (s *service) Invalidate() {
	s.cache.Clear()
}

// SortStandings orders rows by VotingWins desc, TotalPoints desc, TeamName asc
func SortStandings(rows []domain.TeamStanding) {
	slices.SortStableFunc(rows, func(a, b domain.TeamStanding) int {
		if a.VotingWins != b.VotingWins {
			if a.VotingWins > b.VotingWins {
				return -1
			}
			return 1
		}
		if a.TotalPoints != b.TotalPoints {
			if a.TotalPoints > b.TotalPoints {
				return -1
			}
			return 1
		}
		return strings.Compare(a.TeamName, b.TeamName)
	})
}
