package handler

import (
	"net/http"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/drinks"
)

// LogDrinksRequest is the body of POST /api/v1/drinks. Day defaults to today.
type LogDrinksRequest struct {
	MemberID int64  `json:"member_id" validate:"required,gt=0"`
	Count    int32  `json:"count" validate:"required,gt=0,lte=50"`
	Day      string `json:"day,omitempty" validate:"votingday"`
}

// HandleLogDrinks records drinks for a member
// @Summary Log drinks
// @Tags drinks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body LogDrinksRequest true "Drinks"
// @Success 201 {object} domain.DrinkEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/drinks [post]
func HandleLogDrinks(svc drinks.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogDrinksRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Log drinks"); err != nil {
			return
		}

		var day domain.VotingDay
		if req.Day != "" {
			// Already checked by the votingday tag
			day, _ = domain.ParseVotingDay(req.Day)
		}

		entry, err := svc.LogDrinks(r.Context(), drinks.LogDrinksRequest{
			MemberID: req.MemberID,
			Count:    req.Count,
			Day:      day,
		})
		if err != nil {
			respondServiceError(w, r, "log drinks", err)
			return
		}
		respondJSON(w, http.StatusCreated, entry)
	}
}

// HandleListDrinks lists drink entries for a day, today by default
// @Summary List drinks
// @Tags drinks
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} domain.DrinkEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/public/drinks [get]
func HandleListDrinks(svc drinks.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, ok := parseDayQuery(w, r)
		if !ok {
			return
		}
		entries, err := svc.ListDrinksByDay(r.Context(), day)
		if err != nil {
			respondServiceError(w, r, "list drinks", err)
			return
		}
		if entries == nil {
			entries = []domain.DrinkEntry{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
