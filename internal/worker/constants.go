package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgWorkerJobDone     = "Worker job done"
)

// ============================================================================
// Log Messages - Daily Finalize Worker
// ============================================================================

// Log messages for daily finalize worker operations
const (
	LogMsgFinalizeSweepStarting   = "Finalize sweep starting"
	LogMsgFinalizeSweepCompleted  = "Finalize sweep completed"
	LogMsgFinalizeSweepFailed     = "Finalize sweep failed"
	LogMsgFinalizeSweepStandby    = "Finalize sweep standby"
	LogMsgFinalizeSweepApproach   = "Finalize sweep scheduled"
	LogMsgFinalizeWorkerStopping  = "Shutting down daily finalize worker"
	LogMsgFinalizeWorkerCancelled = "Cancelled pending finalize sweep"
	LogMsgFinalizeWorkerStopped   = "Daily finalize worker shutdown complete"
	LogMsgFinalizeWorkerTimeout   = "Daily finalize worker shutdown timeout, a sweep may still be running"
	LogMsgSweepPublishFailed      = "Failed to publish sweep summary"
)

// ============================================================================
// Scheduling
// ============================================================================

const (
	// DefaultFinalizeGrace is how long after contest midnight the sweep runs
	DefaultFinalizeGrace = 30 * time.Second

	// StandbyThreshold switches the worker from a standby wake-up to the final timer
	StandbyThreshold = 1 * time.Hour

	// StandbyLead is how long before the run the standby timer wakes up
	StandbyLead = 45 * time.Minute

	// EarlyFireTolerance is the largest early trigger that still counts as on time
	EarlyFireTolerance = 10 * time.Second
)
