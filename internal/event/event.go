package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Contest event types
const (
	CatchLogged        Type = domain.EventTypeCatchLogged
	DrinkLogged        Type = domain.EventTypeDrinkLogged
	VoteCast           Type = domain.EventTypeVoteCast
	VotingDayFinalized Type = domain.EventTypeVotingDayFinalized
	VotingSweepDone    Type = domain.EventTypeVotingSweepComplete
)

// MetadataKeySource identifies what triggered an event (api, worker, cli)
const MetadataKeySource = "source"

// MetadataKeyDelivery counts how many times an event has been handed to the
// bus. It is absent on the first delivery.
const MetadataKeyDelivery = "delivery"

// Delivery returns the delivery number of the event, starting at 1.
// Values read back from the dead letter arrive as float64.
func (e Event) Delivery() int {
	switch v := e.GetMetadataValue(MetadataKeyDelivery).(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 1
	}
}

// Redelivered reports whether the event is a retry of an earlier publish
func (e Event) Redelivered() bool {
	return e.Delivery() > 1
}

// withDelivery returns a copy of e stamped with delivery n. The original
// metadata map is left untouched.
func (e Event) withDelivery(n int) Event {
	meta := map[string]interface{}{}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		for k, v := range m {
			meta[k] = v
		}
	}
	meta[MetadataKeyDelivery] = n
	e.Metadata = meta
	return e
}

// NewCatchLoggedEvent creates a catch.logged event
func NewCatchLoggedEvent(c domain.CatchEntry, day domain.VotingDay) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatchLogged,
		Payload: domain.CatchLoggedPayload{
			CatchID:     c.ID,
			TeamID:      c.TeamID,
			WeightGrams: c.WeightGrams,
			Points:      c.Points,
			Day:         day.String(),
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewDrinkLoggedEvent creates a drink.logged event
func NewDrinkLoggedEvent(d domain.DrinkEntry) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DrinkLogged,
		Payload: domain.DrinkLoggedPayload{
			MemberID:  d.MemberID,
			TeamID:    d.TeamID,
			Count:     d.Count,
			Day:       d.Day.String(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewVoteCastEvent creates a vote.cast event. The voter hash is not included.
func NewVoteCastEvent(v domain.Vote) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VoteCast,
		Payload: domain.VoteCastPayload{
			CatchID:   v.CatchID,
			Day:       v.Day.String(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewVotingDayFinalizedEvent creates a voting.day_finalized event
func NewVotingDayFinalizedEvent(r domain.VotingResult, teamName string, totalVotes int64, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VotingDayFinalized,
		Payload: domain.VotingDayFinalizedPayload{
			Day:        r.Day.String(),
			CatchID:    r.CatchID,
			TeamID:     r.TeamID,
			TeamName:   teamName,
			VoteCount:  r.VoteCount,
			TotalVotes: totalVotes,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// NewVotingSweepCompleteEvent creates a voting.sweep_complete event
func NewVotingSweepCompleteEvent(report domain.FinalizeReport) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VotingSweepDone,
		Payload: domain.VotingSweepCompletePayload{
			Finalized:        len(report.Finalized),
			AlreadyProcessed: len(report.AlreadyProcessed),
			NoVotes:          len(report.NoVotes),
			Failed:           len(report.Failed),
			Timestamp:        time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	onError  func(Type, error)
	mu       sync.RWMutex
}

// HandlerErrorObserver is implemented by buses that report each failing
// handler individually.
type HandlerErrorObserver interface {
	OnHandlerError(fn func(Type, error))
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	onError := b.onError
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
			if onError != nil {
				onError(event.Type, err)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// OnHandlerError sets fn to be called once per failing handler
func (b *MemoryBus) OnHandlerError(fn func(Type, error)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.onError = fn
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
