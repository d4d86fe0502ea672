package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/CatchCup_Go/internal/catch"
	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/drinks"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// FishTypeFixture is a species and its score multiplier
type FishTypeFixture struct {
	Name        string
	Coefficient float64
}

// TeamFixture is a team and the usernames of its members
type TeamFixture struct {
	Name    string
	Members []string
}

// DefaultFishTypes are the species scored by the contest
var DefaultFishTypes = []FishTypeFixture{
	{Name: "Carpe commune", Coefficient: 1},
	{Name: "Carpe miroir", Coefficient: 1},
	{Name: "Carpe koi", Coefficient: 2},
	{Name: "Amour blanc", Coefficient: 1},
	{Name: "Esturgeon", Coefficient: 1},
}

// DefaultTeams are the contest teams
var DefaultTeams = []TeamFixture{
	{Name: "Lils & Matt", Members: []string{"lils", "math"}},
	{Name: "Nath & Liam", Members: []string{"nath", "liam"}},
	{Name: "Flow et Pabli", Members: []string{"flow", "pabli"}},
}

// SeededFixtures is what SeedFixtures wrote, in fixture order
type SeededFixtures struct {
	FishTypes []domain.FishType
	Teams     []domain.Team
	Members   []domain.Member
}

// SeedFixtures upserts fish types, teams and members. Running it twice
// leaves the database unchanged.
func SeedFixtures(ctx context.Context, repo repository.Setup, fish []FishTypeFixture, teams []TeamFixture) (*SeededFixtures, error) {
	slog.Info(LogMsgSeedingFixtures, "fish_types", len(fish), "teams", len(teams))

	out := &SeededFixtures{}
	for _, f := range fish {
		ft, err := repo.UpsertFishType(ctx, f.Name, f.Coefficient)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedSeedFish, f.Name, err)
		}
		out.FishTypes = append(out.FishTypes, *ft)
	}

	for _, t := range teams {
		team, err := repo.UpsertTeam(ctx, t.Name)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedSeedTeam, t.Name, err)
		}
		out.Teams = append(out.Teams, *team)

		for _, username := range t.Members {
			m, err := repo.UpsertMember(ctx, username, team.ID)
			if err != nil {
				return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedSeedMember, username, err)
			}
			out.Members = append(out.Members, *m)
		}
	}

	slog.Info(LogMsgFixturesSeeded,
		"fish_types", len(out.FishTypes),
		"teams", len(out.Teams),
		"members", len(out.Members))
	return out, nil
}

// SeedDemoData logs one catch per team and a round of drinks per member for
// each of the days days before today, so the open voting day has entries. Weights are derived from the
// team and day indexes so reruns produce the same scoreboard shape.
func SeedDemoData(ctx context.Context, seeded *SeededFixtures, catches catch.Service, drinkSvc drinks.Service, loc *time.Location, today domain.VotingDay, days int) error {
	if len(seeded.FishTypes) == 0 || len(seeded.Teams) == 0 {
		return nil
	}
	slog.Info(LogMsgSeedingDemoData, "days", days)

	var logged, poured int
	for d := days; d >= 1; d-- {
		day := today.AddDays(-d)
		start, _ := day.Bounds(loc)

		for i, team := range seeded.Teams {
			fish := seeded.FishTypes[(i+d)%len(seeded.FishTypes)]
			_, err := catches.LogCatch(ctx, catch.LogCatchRequest{
				TeamID:      team.ID,
				FishTypeID:  fish.ID,
				WeightGrams: int64(2000 + 1500*((i*3+d)%9)),
				CaughtAt:    start.Add(time.Duration(8+2*i) * time.Hour),
			})
			if err != nil {
				return fmt.Errorf("failed to log demo catch for %s: %w", team.Name, err)
			}
			logged++
		}

		for j, m := range seeded.Members {
			_, err := drinkSvc.LogDrinks(ctx, drinks.LogDrinksRequest{
				MemberID: m.ID,
				Count:    int32(1 + (j+d)%3),
				Day:      day,
			})
			if err != nil {
				return fmt.Errorf("failed to log demo drinks for %s: %w", m.Username, err)
			}
			poured++
		}
	}

	slog.Info(LogMsgDemoDataSeeded, "catches", logged, "drink_entries", poured)
	return nil
}
