package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/i18n"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with its mapped status and a
// message in the request language. Internal details never reach the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status := statusForError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceCallFailed, "operation", opName, "error", err)
	} else {
		log.Info(LogMsgServiceCallFailed, "operation", opName, "status", status, "error", err)
	}
	respondError(w, status, i18n.LocalizeError(i18n.FromContext(r.Context()), err))
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateVote),
		errors.Is(err, domain.ErrDayClosed),
		errors.Is(err, domain.ErrAlreadyProcessed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDayStillOpen),
		errors.Is(err, domain.ErrDayNotOpen),
		errors.Is(err, domain.ErrCatchNotEligible),
		errors.Is(err, domain.ErrNoVotes):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCatchNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrFishTypeNotFound),
		errors.Is(err, domain.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
