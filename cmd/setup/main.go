// Command setup provisions a contest database: it creates the database if
// needed, applies migrations and seeds fish types, teams and members.
// Pass -demo to also log a few days of sample catches and drinks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CatchCup_Go/internal/bootstrap"
	"github.com/osse101/CatchCup_Go/internal/catch"
	"github.com/osse101/CatchCup_Go/internal/config"
	"github.com/osse101/CatchCup_Go/internal/database"
	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/drinks"
)

func main() {
	demo := flag.Bool("demo", false, "seed sample catches and drinks")
	demoDays := flag.Int("demo-days", 3, "number of past days to fill with demo data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// 1. Create the database from the maintenance connection
	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	// 2. Migrate
	pool, err := database.NewPool(cfg.GetDBConnString(), 4, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	fmt.Printf("Schema at version %d.\n", version)

	// 3. Fixtures
	repos := bootstrap.InitializeRepositories(pool)
	seeded, err := bootstrap.SeedFixtures(ctx, repos.Setup, bootstrap.DefaultFishTypes, bootstrap.DefaultTeams)
	if err != nil {
		log.Fatalf("Failed to seed fixtures: %v", err)
	}
	fmt.Printf("Seeded %d fish types, %d teams and %d members.\n",
		len(seeded.FishTypes), len(seeded.Teams), len(seeded.Members))

	if !*demo {
		return
	}

	// 4. Demo data, logged through the services so points are scored the usual way
	loc := cfg.Location()
	catchService := catch.NewService(repos.Catch, nil, loc)
	drinksService := drinks.NewService(repos.Team, nil, loc)
	today := domain.VotingDayOf(time.Now(), loc)

	if err := bootstrap.SeedDemoData(ctx, seeded, catchService, drinksService, loc, today, *demoDays); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	fmt.Printf("Demo data logged for the %d days before %s.\n", *demoDays, today)
}

// ensureDatabase creates cfg.DBName when it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	adminConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}
