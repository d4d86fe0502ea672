package domain

// CatchLoggedPayload is the event payload for catch.logged events
type CatchLoggedPayload struct {
	CatchID     int64  `json:"catch_id"`
	TeamID      int64  `json:"team_id"`
	WeightGrams int64  `json:"weight_grams"`
	Points      int64  `json:"points"`
	Day         string `json:"day"`
	Timestamp   int64  `json:"timestamp"`
}

// DrinkLoggedPayload is the event payload for drink.logged events
type DrinkLoggedPayload struct {
	MemberID  int64  `json:"member_id"`
	TeamID    int64  `json:"team_id"`
	Count     int32  `json:"count"`
	Day       string `json:"day"`
	Timestamp int64  `json:"timestamp"`
}

// VoteCastPayload is the event payload for vote.cast events.
// The voter identity is deliberately absent.
type VoteCastPayload struct {
	CatchID   int64  `json:"catch_id"`
	Day       string `json:"day"`
	Timestamp int64  `json:"timestamp"`
}

// VotingDayFinalizedPayload is the event payload for voting.day_finalized events
type VotingDayFinalizedPayload struct {
	Day        string `json:"day"`
	CatchID    int64  `json:"catch_id"`
	TeamID     int64  `json:"team_id"`
	TeamName   string `json:"team_name"`
	VoteCount  int64  `json:"vote_count"`
	TotalVotes int64  `json:"total_votes"`
	Timestamp  int64  `json:"timestamp"`
}

// VotingSweepCompletePayload is the event payload for voting.sweep_complete events
type VotingSweepCompletePayload struct {
	Finalized        int   `json:"finalized"`
	AlreadyProcessed int   `json:"already_processed"`
	NoVotes          int   `json:"no_votes"`
	Failed           int   `json:"failed"`
	Timestamp        int64 `json:"timestamp"`
}
