package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Advisory lock namespace for per-day voting locks. The second key is
// VotingDay.LockKey.
const VotingDayLockNamespace int32 = 0x766f7465 // "vote"

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction   = "failed to begin transaction"
	ErrMsgFailedToLockVotingDay      = "failed to lock voting day"
	ErrMsgFailedToCheckVotingResult  = "failed to check voting result"
	ErrMsgFailedToTallyVotes         = "failed to tally votes"
	ErrMsgFailedToInsertVotingResult = "failed to insert voting result"
	ErrMsgFailedToIncrementTeamWins  = "failed to increment team wins"
	ErrMsgFailedToInsertVote         = "failed to insert vote"
)
