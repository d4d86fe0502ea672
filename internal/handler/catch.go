package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/CatchCup_Go/internal/catch"
	"github.com/osse101/CatchCup_Go/internal/domain"
)

// LogCatchRequest is the body of POST /api/v1/catches
type LogCatchRequest struct {
	TeamID      int64      `json:"team_id" validate:"required,gt=0"`
	FishTypeID  int64      `json:"fish_type_id" validate:"required,gt=0"`
	WeightGrams int64      `json:"weight_grams" validate:"required,gt=0,lte=100000"`
	ImageURL    string     `json:"image_url,omitempty" validate:"omitempty,url,max=2048"`
	Boosted     bool       `json:"boosted"`
	CaughtAt    *time.Time `json:"caught_at,omitempty"`
}

// HandleLogCatch records a new catch
// @Summary Log a catch
// @Description Scores and stores a catch for a team. caught_at defaults to now.
// @Tags catches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body LogCatchRequest true "Catch details"
// @Success 201 {object} domain.CatchEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/catches [post]
func HandleLogCatch(svc catch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogCatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Log catch"); err != nil {
			return
		}

		in := catch.LogCatchRequest{
			TeamID:      req.TeamID,
			FishTypeID:  req.FishTypeID,
			WeightGrams: req.WeightGrams,
			ImageURL:    req.ImageURL,
			Boosted:     req.Boosted,
		}
		if req.CaughtAt != nil {
			in.CaughtAt = *req.CaughtAt
		}

		entry, err := svc.LogCatch(r.Context(), in)
		if err != nil {
			respondServiceError(w, r, "log catch", err)
			return
		}
		respondJSON(w, http.StatusCreated, entry)
	}
}

// HandleListCatches lists catches for a day or for a team
// @Summary List catches
// @Description Catches made on a contest day, or every catch of a team
// @Tags catches
// @Produce json
// @Param day query string false "Contest day (YYYY-MM-DD)"
// @Param team_id query int false "Team ID"
// @Success 200 {array} domain.CatchEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/public/catches [get]
func HandleListCatches(svc catch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			entries []domain.CatchEntry
			err     error
		)

		if raw := r.URL.Query().Get("team_id"); raw != "" {
			teamID, perr := strconv.ParseInt(raw, 10, 64)
			if perr != nil || teamID <= 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidTeamParam)
				return
			}
			entries, err = svc.ListCatchesByTeam(r.Context(), teamID)
		} else {
			day, ok := parseDayQuery(w, r)
			if !ok {
				return
			}
			if day.IsZero() {
				respondError(w, http.StatusBadRequest, missingParam("day"))
				return
			}
			entries, err = svc.ListCatchesByDay(r.Context(), day)
		}
		if err != nil {
			respondServiceError(w, r, "list catches", err)
			return
		}
		if entries == nil {
			entries = []domain.CatchEntry{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetCatch returns one catch
// @Summary Get a catch
// @Tags catches
// @Produce json
// @Param id path int true "Catch ID"
// @Success 200 {object} domain.CatchEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/public/catches/{id} [get]
func HandleGetCatch(svc catch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDPath(w, r)
		if !ok {
			return
		}
		entry, err := svc.GetCatch(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get catch", err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleListFishTypes returns the species table with coefficients
// @Summary List fish types
// @Tags catches
// @Produce json
// @Success 200 {array} domain.FishType
// @Router /api/v1/public/fish-types [get]
func HandleListFishTypes(svc catch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListFishTypes(r.Context())
		if err != nil {
			respondServiceError(w, r, "list fish types", err)
			return
		}
		if types == nil {
			types = []domain.FishType{}
		}
		respondJSON(w, http.StatusOK, types)
	}
}
