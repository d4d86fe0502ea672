package bootstrap

import "time"

const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Session log files: one per process start, the oldest pruned past the limit.
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionLimit  = 10
	LogFileRetentionCount  = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCatchCup    = "Starting CatchCup"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Event delivery fallbacks when the config leaves them unset
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Contest fixtures and demo data
const (
	LogMsgSeedingFixtures  = "Seeding contest fixtures..."
	LogMsgFixturesSeeded   = "Contest fixtures seeded"
	LogMsgSeedingDemoData  = "Seeding demo catches and drinks..."
	LogMsgDemoDataSeeded   = "Demo data seeded"
	ErrMsgFailedSeedFish   = "failed to seed fish type"
	ErrMsgFailedSeedTeam   = "failed to seed team"
	ErrMsgFailedSeedMember = "failed to seed member"
)

// Event subscribers
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStandingsSubscribed        = "Standings cache invalidation subscribed"
	LogMsgAnnouncerRegistered        = "Discord announcer registered"
	LogMsgAnnouncerDisabled          = "Discord webhook not configured, announcements disabled"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateAnnouncer      = "failed to create discord announcer"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgFinalizeWorkerFailed       = "Daily finalize worker shutdown failed"
)
