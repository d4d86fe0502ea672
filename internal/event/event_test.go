package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	var order []int

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 1)
		return nil
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 2)
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody.listens"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	calledAfterFailure := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calledAfterFailure = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, calledAfterFailure, "later handlers still run")
}

func TestMemoryBus_OnHandlerErrorCountsEachFailure(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	failures := 0

	bus.OnHandlerError(func(typ Type, err error) {
		assert.Equal(t, eventType, typ)
		assert.EqualError(t, err, "handler error")
		failures++
	})
	for i := 0; i < 2; i++ {
		bus.Subscribe(eventType, func(context.Context, Event) error { return errors.New("handler error") })
	}
	bus.Subscribe(eventType, func(context.Context, Event) error { return nil })

	require.Error(t, bus.Publish(context.Background(), Event{Type: eventType}))
	assert.Equal(t, 2, failures)
}

func TestEvent_Delivery(t *testing.T) {
	tests := []struct {
		name     string
		metadata Metadata
		want     int
	}{
		{"no metadata", nil, 1},
		{"metadata without delivery", map[string]interface{}{MetadataKeySource: "api"}, 1},
		{"stamped retry", map[string]interface{}{MetadataKeyDelivery: 3}, 3},
		{"read back from json", map[string]interface{}{MetadataKeyDelivery: float64(2)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := Event{Type: VoteCast, Metadata: tt.metadata}
			assert.Equal(t, tt.want, evt.Delivery())
			assert.Equal(t, tt.want > 1, evt.Redelivered())
		})
	}
}

func TestNewVotingDayFinalizedEvent(t *testing.T) {
	day := domain.NewVotingDay(2025, time.April, 28)
	evt := NewVotingDayFinalizedEvent(domain.VotingResult{
		CatchID:   12,
		TeamID:    3,
		VoteCount: 9,
		Day:       day,
		Processed: true,
	}, "Lils & Matt", 20, "worker")

	assert.Equal(t, VotingDayFinalized, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "worker", evt.GetMetadataValue(MetadataKeySource))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, err := DecodePayload[domain.VotingDayFinalizedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-28", payload.Day)
	assert.Equal(t, int64(12), payload.CatchID)
	assert.Equal(t, "Lils & Matt", payload.TeamName)
	assert.Equal(t, int64(20), payload.TotalVotes)
}

func TestDecodePayload_FromMap(t *testing.T) {
	// Events read back from the dead letter arrive as generic maps
	raw := map[string]interface{}{"catch_id": 7, "day": "2025-04-29"}

	payload, err := DecodePayload[domain.VoteCastPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, int64(7), payload.CatchID)
	assert.Equal(t, "2025-04-29", payload.Day)
}

func TestDecodePayload_PointerAndNil(t *testing.T) {
	in := &domain.VoteCastPayload{CatchID: 3, Day: "2025-04-29"}

	payload, err := DecodePayload[domain.VoteCastPayload](in)
	require.NoError(t, err)
	assert.Equal(t, int64(3), payload.CatchID)

	_, err = DecodePayload[domain.VoteCastPayload](nil)
	assert.Error(t, err)

	var nilPtr *domain.VoteCastPayload
	_, err = DecodePayload[domain.VoteCastPayload](nilPtr)
	assert.Error(t, err)

	_, err = DecodePayload[domain.VoteCastPayload](map[string]interface{}{"catch_id": "seven"})
	assert.Error(t, err)
}

func TestNewVotingSweepCompleteEvent(t *testing.T) {
	day := domain.NewVotingDay(2025, time.April, 27)
	evt := NewVotingSweepCompleteEvent(domain.FinalizeReport{
		Finalized: []domain.VotingResult{{Day: day}},
		NoVotes:   []domain.VotingDay{day.AddDays(-1), day.AddDays(-2)},
		Failed:    map[domain.VotingDay]string{day.AddDays(-3): "boom"},
	})

	payload := evt.Payload.(domain.VotingSweepCompletePayload)
	assert.Equal(t, 1, payload.Finalized)
	assert.Equal(t, 0, payload.AlreadyProcessed)
	assert.Equal(t, 2, payload.NoVotes)
	assert.Equal(t, 1, payload.Failed)
}
