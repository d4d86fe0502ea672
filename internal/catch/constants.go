package catch

import "time"

// MaxClockSkew is how far in the future a reported catch time may be
const MaxClockSkew = 5 * time.Minute

// Log messages
const (
	LogMsgCatchLogged   = "Catch logged"
	LogMsgPublishFailed = "Failed to publish catch event"
)
