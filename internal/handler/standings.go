package handler

import (
	"net/http"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/standings"
)

// HandleGetStandings returns the scoreboard
// @Summary Team standings
// @Description One row per team ordered by voting wins, then points, then name
// @Tags standings
// @Produce json
// @Success 200 {array} domain.TeamStanding
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/public/standings [get]
func HandleGetStandings(svc standings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.GetStandings(r.Context())
		if err != nil {
			respondServiceError(w, r, "get standings", err)
			return
		}
		if rows == nil {
			rows = []domain.TeamStanding{}
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// HandleListTeams returns every team with its win counter
// @Summary List teams
// @Tags standings
// @Produce json
// @Success 200 {array} domain.Team
// @Router /api/v1/public/teams [get]
func HandleListTeams(svc standings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := svc.ListTeams(r.Context())
		if err != nil {
			respondServiceError(w, r, "list teams", err)
			return
		}
		if teams == nil {
			teams = []domain.Team{}
		}
		respondJSON(w, http.StatusOK, teams)
	}
}
