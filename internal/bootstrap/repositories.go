package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CatchCup_Go/internal/database/postgres"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// Repositories holds the Postgres-backed data access used by the services
type Repositories struct {
	Catch  repository.Catch
	Team   repository.Team
	Setup  repository.Setup
	Voting repository.Voting
}

// InitializeRepositories creates all repository implementations on one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	teams := postgres.NewTeamRepository(dbPool)
	return &Repositories{
		Catch:  postgres.NewCatchRepository(dbPool),
		Team:   teams,
		Setup:  teams,
		Voting: postgres.NewVotingRepository(dbPool),
	}
}
