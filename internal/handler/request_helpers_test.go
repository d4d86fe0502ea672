package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

func TestParseOptionalDay(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   domain.VotingDay
		wantOK bool
	}{
		{"empty means open day", "", domain.VotingDay{}, true},
		{"valid day", "2025-06-14", domain.NewVotingDay(2025, 6, 14), true},
		{"wrong layout", "14/06/2025", domain.VotingDay{}, false},
		{"impossible date", "2025-02-30", domain.VotingDay{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			day, ok := parseOptionalDay(rec, tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want.String(), day.String())
			if tt.wantOK {
				assert.Equal(t, http.StatusOK, rec.Code, "nothing written on success")
				assert.Zero(t, rec.Body.Len())
				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, ErrMsgInvalidDayParam, resp.Error)
		})
	}
}

func TestParseDayQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := parseDayQuery(rec, httptest.NewRequest(http.MethodGet, "/votes/status?day=yesterday", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	day, ok := parseDayQuery(rec, httptest.NewRequest(http.MethodGet, "/votes/status?day=2025-06-14", nil))
	assert.True(t, ok)
	assert.Equal(t, "2025-06-14", day.String())
}
