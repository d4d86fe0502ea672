package handler

import (
	"net/http"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/voting"
)

// MaxResultsLimit caps ?limit= on the results listing
const MaxResultsLimit = 366

// VotingHandler serves the public voting endpoints and the admin finalize triggers
type VotingHandler struct {
	service voting.Service
}

func NewVotingHandler(service voting.Service) *VotingHandler {
	return &VotingHandler{service: service}
}

// OpenDayResponse reports which day is accepting votes
type OpenDayResponse struct {
	OpenDay domain.VotingDay `json:"open_day"`
}

// CastVoteRequest is the body of POST /api/v1/public/votes.
// Day defaults to the open day.
type CastVoteRequest struct {
	CatchID int64  `json:"catch_id" validate:"required,gt=0"`
	Day     string `json:"day,omitempty" validate:"votingday"`
}

// FinalizeDayRequest is the body of POST /api/v1/admin/voting/finalize
type FinalizeDayRequest struct {
	Day string `json:"day" validate:"required,votingday"`
}

// HandleGetOpenDay reports the day currently accepting votes
// @Summary Open voting day
// @Tags voting
// @Produce json
// @Success 200 {object} OpenDayResponse
// @Router /api/v1/public/voting/open-day [get]
func (h *VotingHandler) HandleGetOpenDay(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, OpenDayResponse{OpenDay: h.service.OpenDay()})
}

// HandleCastVote records one vote per client address per day
// @Summary Cast a vote
// @Description Votes for a catch made on the open day. One vote per address per day.
// @Tags voting
// @Accept json
// @Produce json
// @Param request body CastVoteRequest true "Ballot"
// @Success 201 {object} domain.Vote
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/public/votes [post]
func (h *VotingHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	var req CastVoteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cast vote"); err != nil {
		return
	}

	day, ok := parseOptionalDay(w, req.Day)
	if !ok {
		return
	}

	vote, err := h.service.CastVote(r.Context(), voting.CastVoteRequest{
		CatchID:      req.CatchID,
		VoterAddress: ClientIP(r),
		Day:          day,
	})
	if err != nil {
		respondServiceError(w, r, "cast vote", err)
		return
	}
	respondJSON(w, http.StatusCreated, vote)
}

// HandleGetVoteStatus tells the caller whether their address already voted
// @Summary Vote status
// @Tags voting
// @Produce json
// @Param day query string false "Voting day (YYYY-MM-DD), defaults to the open day"
// @Success 200 {object} voting.VoteStatus
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/public/votes/status [get]
func (h *VotingHandler) HandleGetVoteStatus(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDayQuery(w, r)
	if !ok {
		return
	}
	status, err := h.service.GetVoteStatus(r.Context(), ClientIP(r), day)
	if err != nil {
		respondServiceError(w, r, "get vote status", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleListResults lists finalized days, newest first
// @Summary List voting results
// @Tags voting
// @Produce json
// @Param limit query int false "Maximum results"
// @Success 200 {array} domain.VotingResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/public/results [get]
func (h *VotingHandler) HandleListResults(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimitQuery(w, r, voting.DefaultResultsLimit, MaxResultsLimit)
	if !ok {
		return
	}
	results, err := h.service.ListResults(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "list results", err)
		return
	}
	if results == nil {
		results = []domain.VotingResult{}
	}
	respondJSON(w, http.StatusOK, results)
}

// HandleGetResult returns the result of one day
// @Summary Get a voting result
// @Tags voting
// @Produce json
// @Param day path string true "Voting day (YYYY-MM-DD)"
// @Success 200 {object} domain.VotingResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/public/results/{day} [get]
func (h *VotingHandler) HandleGetResult(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDayPath(w, r)
	if !ok {
		return
	}
	result, err := h.service.GetResult(r.Context(), day)
	if err != nil {
		respondServiceError(w, r, "get result", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleFinalizeDay finalizes one elapsed day
// @Summary Finalize a voting day
// @Description Tallies the day, records the winner and increments its team's wins. Runs at most once per day.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body FinalizeDayRequest true "Day"
// @Success 200 {object} domain.VotingResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/admin/voting/finalize [post]
func (h *VotingHandler) HandleFinalizeDay(w http.ResponseWriter, r *http.Request) {
	var req FinalizeDayRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Finalize day"); err != nil {
		return
	}
	day, err := domain.ParseVotingDay(req.Day)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDayParam)
		return
	}

	ctx := voting.WithSource(r.Context(), voting.SourceAPI)
	result, err := h.service.FinalizeDay(ctx, day)
	if err != nil {
		respondServiceError(w, r, "finalize day", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleFinalizePending sweeps every elapsed day that has votes but no result
// @Summary Finalize pending voting days
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.FinalizeReport
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/voting/finalize-pending [post]
func (h *VotingHandler) HandleFinalizePending(w http.ResponseWriter, r *http.Request) {
	ctx := voting.WithSource(r.Context(), voting.SourceAPI)
	report, err := h.service.FinalizePending(ctx)
	if err != nil && report == nil {
		respondServiceError(w, r, "finalize pending", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgSweepCompleted, Data: report})
}
