package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req CastVoteRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Cast vote"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseDayQuery reads an optional ?day= parameter. A missing day is the zero
// VotingDay; a malformed one writes a 400 and returns ok=false.
func parseDayQuery(w http.ResponseWriter, r *http.Request) (domain.VotingDay, bool) {
	return parseOptionalDay(w, r.URL.Query().Get("day"))
}

// parseOptionalDay parses a YYYY-MM-DD value. An empty value is the zero day,
// which the services read as "the open day".
func parseOptionalDay(w http.ResponseWriter, raw string) (domain.VotingDay, bool) {
	if raw == "" {
		return domain.VotingDay{}, true
	}
	day, err := domain.ParseVotingDay(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDayParam)
		return domain.VotingDay{}, false
	}
	return day, true
}

// parseDayPath reads a required {day} path parameter
func parseDayPath(w http.ResponseWriter, r *http.Request) (domain.VotingDay, bool) {
	day, err := domain.ParseVotingDay(chi.URLParam(r, "day"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDayParam)
		return domain.VotingDay{}, false
	}
	return day, true
}

// parseIDPath reads a positive integer {id} path parameter
func parseIDPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIDParam)
		return 0, false
	}
	return id, true
}

// parseLimitQuery reads an optional positive ?limit= capped at maxLimit
func parseLimitQuery(w http.ResponseWriter, r *http.Request, defaultLimit, maxLimit int) (int, bool) {
	raw := GetOptionalQueryParam(r, "limit", "")
	if raw == "" {
		return defaultLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, true
}

type clientIPKey struct{}

// WithClientIP stores the resolved client address for handlers that key on it
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the address set by WithClientIP, falling back to the
// host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok && ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func missingParam(name string) string {
	return fmt.Sprintf(ErrMsgMissingQueryParam, name)
}
