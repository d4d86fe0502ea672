package i18n

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
		want  language.Tag
	}{
		{"empty", nil, English},
		{"french header", []string{"fr-FR,fr;q=0.9,en;q=0.8"}, French},
		{"english header", []string{"en-GB"}, English},
		{"query wins over header", []string{"fr", "en-US"}, French},
		{"unsupported falls back", []string{"de-DE"}, English},
		{"garbage ignored", []string{"!!!", "fr"}, French},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.prefs...))
		})
	}
}

func TestCatalogCoversEveryKey(t *testing.T) {
	for key, byLang := range translations {
		for _, tag := range supported {
			_, ok := byLang[tag]
			assert.True(t, ok, "missing %s translation for %s", tag, key)
		}
	}
}

func TestLocalizeError(t *testing.T) {
	wrapped := fmt.Errorf("%w: 2025-06-14", domain.ErrDuplicateVote)

	assert.Equal(t, "You have already voted today.", LocalizeError(English, wrapped))
	assert.Equal(t, "Vous avez déjà voté aujourd'hui.", LocalizeError(French, wrapped))
	assert.Equal(t, KeyInternal, ErrorKey(fmt.Errorf("boom")))
	assert.Equal(t, "Une erreur est survenue.", LocalizeError(French, fmt.Errorf("boom")))
}

func TestAnnouncementPlurals(t *testing.T) {
	assert.Equal(t, "**Nath & Liam** wins the day with 1 vote out of 1.", T(English, KeyAnnounceBody, "Nath & Liam", 1, 1))
	assert.Equal(t, "**Nath & Liam** wins the day with 12 votes out of 22.", T(English, KeyAnnounceBody, "Nath & Liam", 12, 22))
	assert.Equal(t, "**Nath & Liam** remporte la journée avec 12 votes sur 22.", T(French, KeyAnnounceBody, "Nath & Liam", 12, 22))
	assert.Equal(t, "🏆 Meilleure prise du 2025-06-14", T(French, KeyAnnounceTitle, "2025-06-14"))
}

func TestMiddleware(t *testing.T) {
	var got language.Tag
	h := Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/standings", nil)
	req.Header.Set("Accept-Language", "fr-CA")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, French, got)
	assert.Equal(t, "fr", rec.Header().Get("Content-Language"))
	require.Equal(t, English, FromContext(context.Background()))
}
