package domain

import (
	"math"
	"time"
)

// FishType is a species with a scoring coefficient.
type FishType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
}

// Team competes in the contest. VotingWins is the team standing counter and
// only ever moves up, once per finalized voting day.
type Team struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	VotingWins int64     `json:"voting_wins"`
	CreatedAt  time.Time `json:"created_at"`
}

// Member is a contestant belonging to a team.
type Member struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	TeamID    int64     `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CatchEntry is one fish caught by a team. It is immutable once scored.
type CatchEntry struct {
	ID           int64     `json:"id"`
	TeamID       int64     `json:"team_id"`
	TeamName     string    `json:"team_name,omitempty"`
	FishTypeID   int64     `json:"fish_type_id"`
	FishTypeName string    `json:"fish_type_name,omitempty"`
	WeightGrams  int64     `json:"weight_grams"`
	Points       int64     `json:"points"`
	ImageURL     string    `json:"image_url,omitempty"`
	Boosted      bool      `json:"boosted"`
	CaughtAt     time.Time `json:"caught_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// DrinkEntry records drinks logged by a member on a given day.
type DrinkEntry struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"member_id"`
	TeamID    int64     `json:"team_id"`
	Count     int32     `json:"count"`
	Day       VotingDay `json:"day"`
	CreatedAt time.Time `json:"created_at"`
}

// ComputePoints scores a catch: one point per kilogram, weighted by species.
// Partial points are truncated.
func ComputePoints(weightGrams int64, coefficient float64) int64 {
	if weightGrams <= 0 || coefficient <= 0 {
		return 0
	}
	return int64(math.Floor(float64(weightGrams) * coefficient / GramsPerKilogram))
}
