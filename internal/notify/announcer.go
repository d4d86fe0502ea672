// Package notify posts contest results to a Discord channel webhook.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/i18n"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// ColorGold is the embed color for daily winners
const ColorGold = 0xf1c40f

// WebhookExecutor is the subset of *discordgo.Session used to post messages
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts a message for every finalized voting day
type Announcer struct {
	client    WebhookExecutor
	webhookID string
	token     string
	lang      language.Tag
}

// NewAnnouncer creates an announcer on an existing webhook client
func NewAnnouncer(client WebhookExecutor, webhookID, token string, lang language.Tag) *Announcer {
	return &Announcer{
		client:    client,
		webhookID: webhookID,
		token:     token,
		lang:      lang,
	}
}

// NewDiscordAnnouncer creates an announcer backed by a token-less discordgo
// session; webhook execution needs no bot credentials.
func NewDiscordAnnouncer(webhookID, token string, lang language.Tag) (*Announcer, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Client.Timeout = 10 * time.Second
	return NewAnnouncer(session, webhookID, token, lang), nil
}

// Register subscribes the announcer to voting.day_finalized
func (a *Announcer) Register(bus event.Bus) {
	bus.Subscribe(event.VotingDayFinalized, a.HandleVotingDayFinalized)
}

// HandleVotingDayFinalized posts the winner. Errors go back to the bus so the
// resilient publisher can retry.
func (a *Announcer) HandleVotingDayFinalized(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.VotingDayFinalizedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", evt.Type, err)
	}

	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{BuildWinnerEmbed(payload, a.lang)},
	}
	if _, err := a.client.WebhookExecute(a.webhookID, a.token, false, params); err != nil {
		return fmt.Errorf("failed to post voting result for %s: %w", payload.Day, err)
	}

	logger.FromContext(ctx).Info("Voting result announced", "day", payload.Day, "team", payload.TeamName)
	return nil
}

// BuildWinnerEmbed renders the daily winner in lang
func BuildWinnerEmbed(p domain.VotingDayFinalizedPayload, lang language.Tag) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       i18n.T(lang, i18n.KeyAnnounceTitle, p.Day),
		Description: i18n.T(lang, i18n.KeyAnnounceBody, p.TeamName, p.VoteCount, p.TotalVotes),
		Color:       ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: i18n.T(lang, i18n.KeyAnnounceTeam), Value: p.TeamName, Inline: true},
			{Name: i18n.T(lang, i18n.KeyAnnounceVotes), Value: fmt.Sprintf("%d / %d", p.VoteCount, p.TotalVotes), Inline: true},
		},
	}
	if p.Timestamp > 0 {
		embed.Timestamp = time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339)
	}
	return embed
}
