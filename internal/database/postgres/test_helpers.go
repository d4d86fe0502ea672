package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CatchCup_Go/internal/database"
	"github.com/osse101/CatchCup_Go/internal/domain"
)

// setupTestDB starts a disposable Postgres, applies the embedded migrations
// and returns a pool that is closed when the test ends.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, 25, 5*time.Minute, 30*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return pool
}

// seedCatch creates a team and a catch caught at caughtAt using the first seeded fish type
func seedCatch(t *testing.T, ctx context.Context, pool *pgxpool.Pool, teamName string, caughtAt time.Time) *domain.CatchEntry {
	t.Helper()

	teams := NewTeamRepository(pool)
	team, err := teams.UpsertTeam(ctx, teamName)
	if err != nil {
		t.Fatalf("failed to seed team: %v", err)
	}

	catches := NewCatchRepository(pool)
	types, err := catches.ListFishTypes(ctx)
	if err != nil || len(types) == 0 {
		t.Fatalf("expected seeded fish types, got %d (err=%v)", len(types), err)
	}

	c := &domain.CatchEntry{
		TeamID:      team.ID,
		FishTypeID:  types[0].ID,
		WeightGrams: 8200,
		Points:      domain.ComputePoints(8200, types[0].Coefficient),
		CaughtAt:    caughtAt,
	}
	if err := catches.CreateCatch(ctx, c); err != nil {
		t.Fatalf("failed to seed catch: %v", err)
	}
	return c
}
