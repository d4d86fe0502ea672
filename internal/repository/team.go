package repository

import (
	"context"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

// Team defines data access for teams, members, drinks and standings
type Team interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	GetMember(ctx context.Context, id int64) (*domain.Member, error)
	ListMembersByTeam(ctx context.Context, teamID int64) ([]domain.Member, error)
	GetTeamStandings(ctx context.Context) ([]domain.TeamStanding, error)

	CreateDrinkEntry(ctx context.Context, d *domain.DrinkEntry) error
	ListDrinksByDay(ctx context.Context, day domain.VotingDay) ([]domain.DrinkEntry, error)
}

// Setup covers the idempotent fixture writes used when provisioning a contest
type Setup interface {
	UpsertFishType(ctx context.Context, name string, coefficient float64) (*domain.FishType, error)
	UpsertTeam(ctx context.Context, name string) (*domain.Team, error)
	UpsertMember(ctx context.Context, username string, teamID int64) (*domain.Member, error)
}
