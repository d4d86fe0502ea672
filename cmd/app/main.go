package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/CatchCup_Go/docs"
	"github.com/osse101/CatchCup_Go/internal/bootstrap"
	"github.com/osse101/CatchCup_Go/internal/catch"
	"github.com/osse101/CatchCup_Go/internal/config"
	"github.com/osse101/CatchCup_Go/internal/database"
	"github.com/osse101/CatchCup_Go/internal/drinks"
	"github.com/osse101/CatchCup_Go/internal/scheduler"
	"github.com/osse101/CatchCup_Go/internal/server"
	"github.com/osse101/CatchCup_Go/internal/standings"
	"github.com/osse101/CatchCup_Go/internal/voting"
	"github.com/osse101/CatchCup_Go/internal/worker"
)

const (
	// Sweeps are serialized by the day lock, so one worker is enough
	sweepWorkers   = 1
	sweepQueueSize = 2

	shutdownTimeout = 30 * time.Second
)

// @title CatchCup API
// @version 1.0
// @description Fishing contest scoreboard: catches, drinks and the daily best-catch vote.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	version, err := database.Migrate(ctx, dbPool)
	if err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "version", version)

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	loc := cfg.Location()

	standingsService := standings.NewService(repos.Team, standings.DefaultCacheTTL)
	catchService := catch.NewService(repos.Catch, events.Publisher, loc)
	drinksService := drinks.NewService(repos.Team, events.Publisher, loc)
	votingService := voting.NewService(repos.Voting, events.Publisher, voting.Options{
		Location:  loc,
		DayOffset: cfg.VotingDayOffset,
		VoterSalt: cfg.VoterSalt,
	})

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:         events.Bus,
		StandingsService: standingsService,
		Config:           cfg,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	slog.Info("Voting calendar",
		"timezone", loc.String(),
		"open_day", votingService.OpenDay().String(),
		"day_offset", cfg.VotingDayOffset)

	pool := worker.NewPool(sweepWorkers, sweepQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.ScheduleNow(cfg.FinalizeSweepInterval, worker.NewFinalizeSweepJob(votingService, events.Publisher))

	finalizeWorker := worker.NewDailyFinalizeWorker(votingService, events.Publisher, loc, worker.DefaultFinalizeGrace)
	finalizeWorker.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, server.Services{
		Voting:    votingService,
		Catch:     catchService,
		Drinks:    drinksService,
		Standings: standingsService,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	slog.Info("Received shutdown signal", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		FinalizeWorker:     finalizeWorker,
		ResilientPublisher: events.Publisher,
	})
}
