package metrics

import (
	"context"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all contest events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		domain.EventTypeCatchLogged,
		domain.EventTypeDrinkLogged,
		domain.EventTypeVoteCast,
		domain.EventTypeVotingDayFinalized,
		domain.EventTypeVotingSweepComplete,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	if obs, ok := bus.(event.HandlerErrorObserver); ok {
		obs.OnHandlerError(e.RecordHandlerError)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Retries of an event another subscriber failed on were already counted
	if evt.Redelivered() {
		log.Debug(LogMsgEventRedeliverySkipped, "type", evt.Type, "delivery", evt.Delivery())
		return nil
	}

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case domain.EventTypeCatchLogged:
		payload, err := event.DecodePayload[domain.CatchLoggedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CatchesLogged.Inc()
		CatchPoints.Add(float64(payload.Points))

	case domain.EventTypeDrinkLogged:
		payload, err := event.DecodePayload[domain.DrinkLoggedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		DrinksLogged.Add(float64(payload.Count))

	case domain.EventTypeVotingSweepComplete:
		VotingSweeps.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordHandlerError counts a failed event subscriber
func (e *EventMetricsCollector) RecordHandlerError(eventType event.Type, _ error) {
	EventHandlerErrors.WithLabelValues(string(eventType)).Inc()
}
