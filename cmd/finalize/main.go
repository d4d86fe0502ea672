// Command finalize closes voting days from the command line. With -day it
// finalizes that single day; otherwise it sweeps every elapsed day that has
// votes but no result. It is safe to run while the server is up.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/CatchCup_Go/internal/bootstrap"
	"github.com/osse101/CatchCup_Go/internal/config"
	"github.com/osse101/CatchCup_Go/internal/database"
	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/voting"
)

// Exit codes
const (
	exitOK = iota
	exitFailure
	exitUsage
	exitNothingToDo
)

func main() {
	dayFlag := flag.String("day", "", "voting day to finalize (YYYY-MM-DD); sweeps all pending days when empty")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	os.Exit(run(ctx, cfg, *dayFlag))
}

func run(ctx context.Context, cfg *config.Config, dayArg string) int {
	var day domain.VotingDay
	if dayArg != "" {
		d, err := domain.ParseVotingDay(dayArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -day %q: expected YYYY-MM-DD\n", dayArg)
			return exitUsage
		}
		day = d
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitFailure
	}
	defer dbPool.Close()

	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		return exitFailure
	}
	defer func() {
		if err := events.Publisher.Shutdown(context.Background()); err != nil {
			slog.Warn("Event publisher shutdown failed", "error", err)
		}
	}()

	repos := bootstrap.InitializeRepositories(dbPool)
	svc := voting.NewService(repos.Voting, events.Publisher, voting.Options{
		Location:  cfg.Location(),
		DayOffset: cfg.VotingDayOffset,
		VoterSalt: cfg.VoterSalt,
	})

	// Announcements only; the API server owns the standings cache
	if err := bootstrap.RegisterAnnouncer(events.Bus, cfg); err != nil {
		slog.Warn("Discord announcer unavailable", "error", err)
	}

	ctx = voting.WithSource(ctx, voting.SourceCLI)

	if day.IsZero() {
		return sweep(ctx, svc, events.Publisher)
	}
	return finalizeOne(ctx, svc, day)
}

func finalizeOne(ctx context.Context, svc voting.Service, day domain.VotingDay) int {
	result, err := svc.FinalizeDay(ctx, day)
	switch {
	case err == nil:
		printJSON(result)
		return exitOK
	case errors.Is(err, domain.ErrAlreadyProcessed), errors.Is(err, domain.ErrNoVotes):
		slog.Info("Nothing to finalize", "day", day.String(), "reason", err.Error())
		return exitNothingToDo
	case errors.Is(err, domain.ErrDayStillOpen):
		slog.Warn("Day is still open", "day", day.String(), "open_day", svc.OpenDay().String())
		return exitUsage
	default:
		slog.Error("Finalize failed", "day", day.String(), "error", err)
		return exitFailure
	}
}

func sweep(ctx context.Context, svc voting.Service, bus event.Bus) int {
	report, err := svc.FinalizePending(ctx)
	if report == nil {
		slog.Error("Sweep failed", "error", err)
		return exitFailure
	}
	if pubErr := bus.Publish(ctx, event.NewVotingSweepCompleteEvent(*report)); pubErr != nil {
		slog.Warn("Failed to publish sweep summary", "error", pubErr)
	}
	printJSON(report)
	if err != nil || len(report.Failed) > 0 {
		return exitFailure
	}
	return exitOK
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("Failed to write report", "error", err)
	}
}
