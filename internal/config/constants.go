package config

import "time"

const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "catchcup"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	// Votes are cast today for yesterday's catches
	DefaultContestTimezone       = "Europe/Paris"
	DefaultVotingDayOffset       = 1
	DefaultFinalizeSweepInterval = 15 * time.Minute

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
