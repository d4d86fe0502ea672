package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/scheduler"
	"github.com/osse101/CatchCup_Go/internal/server"
	"github.com/osse101/CatchCup_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	FinalizeWorker     *worker.DailyFinalizeWorker
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and finalize worker (no new sweeps, wait for a running one)
// 3. Worker pool
// 4. Event publisher (flush pending retries to the dead letter)
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.FinalizeWorker != nil {
		if err := components.FinalizeWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgFinalizeWorkerFailed, "error", err)
		}
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
