package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

var errWebhookDown = errors.New("webhook unavailable")

// flakyBus fails the first failures[type] deliveries of each event type.
type flakyBus struct {
	mu        sync.Mutex
	delivered []Event
	calls     map[Type]int
	failures  map[Type]int
	always    bool
}

func newFlakyBus(failures map[Type]int) *flakyBus {
	return &flakyBus{calls: map[Type]int{}, failures: failures}
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[evt.Type]++
	if b.always || b.calls[evt.Type] <= b.failures[evt.Type] {
		return errWebhookDown
	}
	b.delivered = append(b.delivered, evt)
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) Calls(t Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[t]
}

func (b *flakyBus) Delivered() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.delivered)
}

func (b *flakyBus) DeliveredEvents() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.delivered...)
}

func finalizedEvent() Event {
	return NewVotingDayFinalizedEvent(domain.VotingResult{
		Day: domain.NewVotingDay(2025, time.April, 28), CatchID: 12, TeamID: 1, VoteCount: 9,
	}, "Lils & Matt", 14, "worker")
}

func newPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	return rp, path
}

func deadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	return entries
}

func TestResilientPublisher_DeliversFirstTry(t *testing.T) {
	bus := newFlakyBus(nil)
	rp, path := newPublisher(t, bus, 3, 10*time.Millisecond)

	rp.PublishWithRetry(context.Background(), finalizedEvent())

	assert.Equal(t, 1, bus.Calls(VotingDayFinalized))
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := newFlakyBus(map[Type]int{VotingDayFinalized: 2})
	rp, path := newPublisher(t, bus, 3, 10*time.Millisecond)

	rp.PublishWithRetry(context.Background(), finalizedEvent())

	assert.Eventually(t, func() bool { return bus.Delivered() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, bus.Calls(VotingDayFinalized))
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_RetryIsStampedAsRedelivery(t *testing.T) {
	bus := newFlakyBus(map[Type]int{VotingDayFinalized: 2})
	rp, _ := newPublisher(t, bus, 3, 5*time.Millisecond)

	original := finalizedEvent()
	rp.PublishWithRetry(context.Background(), original)

	require.Eventually(t, func() bool { return bus.Delivered() == 1 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	delivered := bus.DeliveredEvents()[0]
	assert.Equal(t, 3, delivered.Delivery())
	assert.True(t, delivered.Redelivered())
	assert.Equal(t, "worker", delivered.GetMetadataValue(MetadataKeySource))

	// the caller's event is not mutated
	assert.Equal(t, 1, original.Delivery())
	assert.Nil(t, original.GetMetadataValue(MetadataKeyDelivery))
}

func TestResilientPublisher_ForwardsHandlerErrorObserver(t *testing.T) {
	bus := NewMemoryBus()
	rp, _ := newPublisher(t, bus, 1, time.Millisecond)
	t.Cleanup(func() { _ = rp.Shutdown(context.Background()) })

	var observed []Type
	rp.OnHandlerError(func(typ Type, _ error) { observed = append(observed, typ) })
	bus.Subscribe(VoteCast, func(context.Context, Event) error { return errWebhookDown })

	require.Error(t, bus.Publish(context.Background(), Event{Type: VoteCast}))
	assert.Equal(t, []Type{VoteCast}, observed)
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	bus := newFlakyBus(nil)
	bus.always = true
	rp, path := newPublisher(t, bus, 3, 5*time.Millisecond)

	rp.PublishWithRetry(context.Background(), finalizedEvent())

	// initial attempt plus three retries
	assert.Eventually(t, func() bool { return bus.Calls(VotingDayFinalized) == 4 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := deadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, VotingDayFinalized, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, errWebhookDown.Error(), entries[0].LastError)

	payload, err := DecodePayload[domain.VotingDayFinalizedPayload](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-28", payload.Day)
	assert.Equal(t, int64(14), payload.TotalVotes)
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	bus := newFlakyBus(nil)
	bus.always = true
	dl, err := NewDeadLetterWriter(filepath.Join(t.TempDir(), "dl.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dl.Close() })

	// No worker: attempt pushes the rescheduled entry onto the queue
	rp := &ResilientPublisher{
		bus:        bus,
		deadLetter: dl,
		retryQueue: make(chan retryEntry, 1),
		maxRetries: 5,
		retryDelay: time.Second,
		shutdown:   make(chan struct{}),
	}

	before := time.Now()
	rp.attempt(retryEntry{event: finalizedEvent(), attempts: 2})

	next := <-rp.retryQueue
	assert.Equal(t, 3, next.attempts)
	assert.ErrorIs(t, next.lastErr, errWebhookDown)
	assert.WithinDuration(t, before.Add(4*time.Second), next.nextAttempt, 500*time.Millisecond)
}

func TestResilientPublisher_QueueOverflow(t *testing.T) {
	bus := newFlakyBus(nil)
	bus.always = true
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// No worker running, so the single queue slot stays occupied
	rp := &ResilientPublisher{
		bus:        bus,
		deadLetter: dl,
		retryQueue: make(chan retryEntry, 1),
		maxRetries: 3,
		retryDelay: time.Hour,
		shutdown:   make(chan struct{}),
	}

	for i := int64(1); i <= 3; i++ {
		rp.PublishWithRetry(context.Background(), NewVoteCastEvent(domain.Vote{ID: i, CatchID: 10}))
	}
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Len(t, deadLetters(t, path), 2, "two votes overflow the one-slot queue")
	assert.Len(t, rp.retryQueue, 1)
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	bus := newFlakyBus(nil)
	bus.always = true
	rp, path := newPublisher(t, bus, 5, time.Hour)

	rp.PublishWithRetry(context.Background(), finalizedEvent())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 2, bus.Calls(VotingDayFinalized), "initial attempt plus one final try at shutdown")
	assert.Len(t, deadLetters(t, path), 1)
}

func TestResilientPublisher_ShutdownFlushesQueued(t *testing.T) {
	bus := newFlakyBus(map[Type]int{VoteCast: 3})
	rp, path := newPublisher(t, bus, 5, time.Hour)

	for i := int64(1); i <= 3; i++ {
		rp.PublishWithRetry(context.Background(), NewVoteCastEvent(domain.Vote{ID: i, CatchID: 11}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 3, bus.Delivered())
	assert.Empty(t, deadLetters(t, path))
}

func TestResilientPublisher_ImplementsBus(t *testing.T) {
	rp, _ := newPublisher(t, NewMemoryBus(), 1, time.Millisecond)
	defer rp.Shutdown(context.Background())

	var bus Bus = rp
	got := make(chan Event, 1)
	bus.Subscribe(VoteCast, func(ctx context.Context, e Event) error {
		got <- e
		return nil
	})

	assert.NoError(t, bus.Publish(context.Background(), Event{Type: VoteCast}))
	select {
	case e := <-got:
		assert.Equal(t, VoteCast, e.Type)
	case <-time.After(time.Second):
		t.Fatal("subscriber not called")
	}
}

func TestResilientPublisher_ConcurrentVotes(t *testing.T) {
	bus := newFlakyBus(nil)
	rp, _ := newPublisher(t, bus, 3, 10*time.Millisecond)
	defer rp.Shutdown(context.Background())

	const voters, votesEach = 10, 5
	var wg sync.WaitGroup
	for v := 0; v < voters; v++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			for j := 0; j < votesEach; j++ {
				rp.PublishWithRetry(context.Background(), NewVoteCastEvent(domain.Vote{ID: int64(v*votesEach + j), CatchID: 10}))
			}
		}(v)
	}
	wg.Wait()

	assert.Equal(t, voters*votesEach, bus.Delivered())
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 2 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{5, 32 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRetryDelay(base, tt.attempt), "attempt %d", tt.attempt)
	}
}
