package bootstrap

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/osse101/CatchCup_Go/internal/config"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/metrics"
	"github.com/osse101/CatchCup_Go/internal/notify"
	"github.com/osse101/CatchCup_Go/internal/standings"
)

// EventHandlerDependencies holds what the event subscribers need
type EventHandlerDependencies struct {
	EventBus         event.Bus
	StandingsService standings.Service
	Config           *config.Config
}

// RegisterEventHandlers wires the subscribers:
// - Metrics collector (event counters)
// - Standings cache invalidation
// - Discord winner announcements, when a webhook is configured
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	standings.Subscribe(deps.EventBus, deps.StandingsService)
	slog.Info(LogMsgStandingsSubscribed)

	return RegisterAnnouncer(deps.EventBus, deps.Config)
}

// RegisterAnnouncer posts finalized days to the configured Discord webhook.
// It is a no-op when no webhook is configured.
func RegisterAnnouncer(bus event.Bus, cfg *config.Config) error {
	if !cfg.DiscordEnabled() {
		slog.Info(LogMsgAnnouncerDisabled)
		return nil
	}

	announcer, err := notify.NewDiscordAnnouncer(cfg.DiscordWebhookID, cfg.DiscordWebhookToken, language.French)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateAnnouncer, err)
	}
	announcer.Register(bus)
	slog.Info(LogMsgAnnouncerRegistered, "webhook_id", cfg.DiscordWebhookID)

	return nil
}
