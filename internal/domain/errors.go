package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Finalization errors
	ErrMsgAlreadyProcessed = "voting day already processed"
	ErrMsgNoVotes          = "no votes cast for voting day"
	ErrMsgDayStillOpen     = "voting day is still open"

	// Ingestion errors
	ErrMsgDuplicateVote    = "voter already voted on this day"
	ErrMsgDayClosed        = "voting day is closed"
	ErrMsgDayNotOpen       = "voting day has not opened yet"
	ErrMsgCatchNotEligible = "catch is not eligible for this voting day"

	// Lookup errors
	ErrMsgCatchNotFound    = "catch not found"
	ErrMsgTeamNotFound     = "team not found"
	ErrMsgMemberNotFound   = "member not found"
	ErrMsgFishTypeNotFound = "fish type not found"
	ErrMsgResultNotFound   = "voting result not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrAlreadyProcessed is returned when a day already has a result.
	// Schedulers with at-least-once delivery treat it as a no-op.
	ErrAlreadyProcessed = errors.New(ErrMsgAlreadyProcessed)
	ErrNoVotes          = errors.New(ErrMsgNoVotes)
	ErrDayStillOpen     = errors.New(ErrMsgDayStillOpen)

	ErrDuplicateVote    = errors.New(ErrMsgDuplicateVote)
	ErrDayClosed        = errors.New(ErrMsgDayClosed)
	ErrDayNotOpen       = errors.New(ErrMsgDayNotOpen)
	ErrCatchNotEligible = errors.New(ErrMsgCatchNotEligible)

	ErrCatchNotFound    = errors.New(ErrMsgCatchNotFound)
	ErrTeamNotFound     = errors.New(ErrMsgTeamNotFound)
	ErrMemberNotFound   = errors.New(ErrMsgMemberNotFound)
	ErrFishTypeNotFound = errors.New(ErrMsgFishTypeNotFound)
	ErrResultNotFound   = errors.New(ErrMsgResultNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
