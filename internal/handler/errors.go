package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidDayParam   = "Invalid day, expected YYYY-MM-DD"
	ErrMsgInvalidIDParam    = "Invalid id"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidTeamParam  = "Invalid team_id"
)

// Log messages for handler operations
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgServiceCallFailed = "Service call failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
)

// Success messages for API responses
const (
	MsgSweepCompleted  = "Pending voting days swept"
	HealthStatusOK     = "ok"
	HealthStatusDown   = "unavailable"
	HealthMsgDBFailure = "database connection failed"
)
