// Package i18n holds the English and French message catalogs used for API
// error messages and contest announcements.
package i18n

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

// Supported languages, default first
var (
	English = language.English
	French  = language.French

	supported = []language.Tag{English, French}
	matcher   = language.NewMatcher(supported)
	cat       = newCatalog()
)

// Message keys
const (
	KeyAlreadyProcessed = "error.already_processed"
	KeyNoVotes          = "error.no_votes"
	KeyDayStillOpen     = "error.day_still_open"
	KeyDuplicateVote    = "error.duplicate_vote"
	KeyDayClosed        = "error.day_closed"
	KeyDayNotOpen       = "error.day_not_open"
	KeyCatchNotEligible = "error.catch_not_eligible"
	KeyCatchNotFound    = "error.catch_not_found"
	KeyTeamNotFound     = "error.team_not_found"
	KeyMemberNotFound   = "error.member_not_found"
	KeyFishTypeNotFound = "error.fish_type_not_found"
	KeyResultNotFound   = "error.result_not_found"
	KeyInvalidInput     = "error.invalid_input"
	KeyUnauthorized     = "error.unauthorized"
	KeyInternal         = "error.internal"

	KeyAnnounceTitle = "announce.title"
	KeyAnnounceBody  = "announce.body"
	KeyAnnounceTeam  = "announce.team"
	KeyAnnounceVotes = "announce.votes"
)

var translations = map[string]map[language.Tag]string{
	KeyAlreadyProcessed: {English: "This voting day has already been decided.", French: "Ce jour de vote a déjà été clôturé."},
	KeyNoVotes:          {English: "Nobody voted on this day.", French: "Personne n'a voté ce jour-là."},
	KeyDayStillOpen:     {English: "Voting for this day is still open.", French: "Le vote pour ce jour est encore ouvert."},
	KeyDuplicateVote:    {English: "You have already voted today.", French: "Vous avez déjà voté aujourd'hui."},
	KeyDayClosed:        {English: "Voting for this day is closed.", French: "Le vote pour ce jour est terminé."},
	KeyDayNotOpen:       {English: "Voting for this day has not started yet.", French: "Le vote pour ce jour n'a pas encore commencé."},
	KeyCatchNotEligible: {English: "This catch cannot be voted for on this day.", French: "Cette prise ne peut pas être votée ce jour-là."},
	KeyCatchNotFound:    {English: "Catch not found.", French: "Prise introuvable."},
	KeyTeamNotFound:     {English: "Team not found.", French: "Équipe introuvable."},
	KeyMemberNotFound:   {English: "Member not found.", French: "Membre introuvable."},
	KeyFishTypeNotFound: {English: "Unknown fish type.", French: "Espèce inconnue."},
	KeyResultNotFound:   {English: "No result for this day yet.", French: "Pas encore de résultat pour ce jour."},
	KeyInvalidInput:     {English: "Invalid request.", French: "Requête invalide."},
	KeyUnauthorized:     {English: "Unauthorized.", French: "Non autorisé."},
	KeyInternal:         {English: "Something went wrong.", French: "Une erreur est survenue."},

	KeyAnnounceTitle: {English: "🏆 Best catch of %s", French: "🏆 Meilleure prise du %s"},
	KeyAnnounceTeam:  {English: "Team", French: "Équipe"},
	KeyAnnounceVotes: {English: "Votes", French: "Votes"},
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(English))
	for key, byLang := range translations {
		for tag, msg := range byLang {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}

	// %[1]s team, %[2]d winning votes, %[3]d total votes
	mustSet(b.Set(English, KeyAnnounceBody, plural.Selectf(2, "%d",
		plural.One, "**%[1]s** wins the day with %[2]d vote out of %[3]d.",
		plural.Other, "**%[1]s** wins the day with %[2]d votes out of %[3]d.",
	)))
	mustSet(b.Set(French, KeyAnnounceBody, plural.Selectf(2, "%d",
		plural.One, "**%[1]s** remporte la journée avec %[2]d vote sur %[3]d.",
		plural.Other, "**%[1]s** remporte la journée avec %[2]d votes sur %[3]d.",
	)))
	return b
}

func mustSet(err error) {
	if err != nil {
		panic(err)
	}
}

// Supported returns the languages with a catalog
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match picks the best supported language for an Accept-Language header or
// a bare language code. Unknown input falls back to English.
func Match(preferences ...string) language.Tag {
	for _, pref := range preferences {
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := matcher.Match(tags...)
		if conf != language.No {
			return supported[idx]
		}
	}
	return English
}

// Printer returns a message printer bound to the catalogs
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// T translates key into tag, formatting args
func T(tag language.Tag, key string, args ...interface{}) string {
	return Printer(tag).Sprintf(key, args...)
}

type langKey struct{}

// WithLanguage stores the request language in ctx
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, langKey{}, tag)
}

// FromContext returns the request language, English if none was set
func FromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(langKey{}).(language.Tag); ok {
		return tag
	}
	return English
}

// Middleware resolves the language from ?lang= or Accept-Language
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Language", tag.String())
		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), tag)))
	})
}

var errorKeys = []struct {
	err error
	key string
}{
	{domain.ErrAlreadyProcessed, KeyAlreadyProcessed},
	{domain.ErrNoVotes, KeyNoVotes},
	{domain.ErrDayStillOpen, KeyDayStillOpen},
	{domain.ErrDuplicateVote, KeyDuplicateVote},
	{domain.ErrDayClosed, KeyDayClosed},
	{domain.ErrDayNotOpen, KeyDayNotOpen},
	{domain.ErrCatchNotEligible, KeyCatchNotEligible},
	{domain.ErrCatchNotFound, KeyCatchNotFound},
	{domain.ErrTeamNotFound, KeyTeamNotFound},
	{domain.ErrMemberNotFound, KeyMemberNotFound},
	{domain.ErrFishTypeNotFound, KeyFishTypeNotFound},
	{domain.ErrResultNotFound, KeyResultNotFound},
	{domain.ErrInvalidInput, KeyInvalidInput},
}

// ErrorKey maps a domain error to its message key, KeyInternal otherwise
func ErrorKey(err error) string {
	for _, ek := range errorKeys {
		if errors.Is(err, ek.err) {
			return ek.key
		}
	}
	return KeyInternal
}

// LocalizeError returns the user-facing text for err in tag
func LocalizeError(tag language.Tag, err error) string {
	return T(tag, ErrorKey(err))
}
