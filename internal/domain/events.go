package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "catch.logged")
const (
	// EventTypeCatchLogged is published after a catch is scored and stored
	EventTypeCatchLogged = "catch.logged"

	// EventTypeDrinkLogged is published after drinks are recorded for a member
	EventTypeDrinkLogged = "drink.logged"

	// EventTypeVoteCast is published after a vote is committed
	EventTypeVoteCast = "vote.cast"

	// EventTypeVotingDayFinalized is published once per day, after the result commits
	EventTypeVotingDayFinalized = "voting.day_finalized"

	// EventTypeVotingSweepComplete is published by the daily worker after each sweep
	EventTypeVotingSweepComplete = "voting.sweep_complete"
)
