package voting

import "time"

// Trigger sources recorded on voting.day_finalized events
const (
	SourceAPI       = "api"
	SourceWorker    = "worker"
	SourceScheduler = "scheduler"
	SourceCLI       = "cli"
	SourceUnknown   = "unknown"
)

// DefaultDayOffset opens voting on yesterday's catches
const DefaultDayOffset = 1

// DefaultResultsLimit caps ListResults when the caller passes no limit
const DefaultResultsLimit = 100

// FinalizeTimeout bounds a single day's finalization inside a sweep
const FinalizeTimeout = 30 * time.Second

// Log messages
const (
	LogMsgDayFinalized        = "Voting day finalized"
	LogMsgDayAlreadyProcessed = "Voting day already processed, skipping"
	LogMsgDayNoVotes          = "Voting day has no votes, no result produced"
	LogMsgDayFinalizeFailed   = "Failed to finalize voting day"
	LogMsgSweepStarted        = "Finalizing pending voting days"
	LogMsgSweepComplete       = "Pending voting days sweep complete"
	LogMsgVoteCast            = "Vote cast"
	LogMsgPublishFailed       = "Failed to publish voting event"
)
