package domain

import "time"

// Vote is a ballot cast for a catch on a voting day. VoterID is an opaque
// hash of the originating address; one vote per (VoterID, Day).
type Vote struct {
	ID        int64     `json:"id"`
	CatchID   int64     `json:"catch_id"`
	VoterID   string    `json:"-"`
	Day       VotingDay `json:"day"`
	CreatedAt time.Time `json:"created_at"`
}

// VotingResult is the finalized outcome of one voting day.
// At most one exists per day.
type VotingResult struct {
	ID        int64     `json:"id"`
	CatchID   int64     `json:"catch_id"`
	TeamID    int64     `json:"team_id"`
	VoteCount int64     `json:"vote_count"`
	Day       VotingDay `json:"day"`
	Processed bool      `json:"processed"`
	CreatedAt time.Time `json:"created_at"`
}

// Tally maps catch ID to the number of votes it received.
type Tally map[int64]int64

// Total returns the number of ballots in the tally.
func (t Tally) Total() int64 {
	var n int64
	for _, c := range t {
		n += c
	}
	return n
}

// TeamStanding is the aggregate scoreboard row for a team.
type TeamStanding struct {
	TeamID            int64  `json:"team_id"`
	TeamName          string `json:"team_name"`
	VotingWins        int64  `json:"voting_wins"`
	TotalPoints       int64  `json:"total_points"`
	CatchCount        int64  `json:"catch_count"`
	BiggestCatchGrams int64  `json:"biggest_catch_grams"`
	Drinks            int64  `json:"drinks"`
}

// FinalizeReport summarizes a sweep over pending voting days.
type FinalizeReport struct {
	Finalized        []VotingResult       `json:"finalized"`
	AlreadyProcessed []VotingDay          `json:"already_processed"`
	NoVotes          []VotingDay          `json:"no_votes"`
	Failed           map[VotingDay]string `json:"failed,omitempty"`
}
