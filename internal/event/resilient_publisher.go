package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CatchCup_Go/internal/logger"
)

type retryEntry struct {
	event       Event
	attempts    int
	nextAttempt time.Time
	lastErr     error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// The first attempt runs synchronously; failures are queued for a single retry
// worker with exponential backoff. Events that exhaust their retries, overflow
// the queue, or are still failing at shutdown are written to the dead letter.
type ResilientPublisher struct {
	bus        Bus
	deadLetter *DeadLetterWriter
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		deadLetter: dl,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes evt and never fails the caller.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", evt.Type,
		"error", err)

	p.enqueue(retryEntry{
		event:       evt,
		attempts:    1,
		nextAttempt: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
		lastErr:     err,
	})
}

// Publish satisfies Bus so services can be handed the resilient publisher directly.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the wrapped bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-p.shutdown:
		p.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
		return
	default:
	}

	select {
	case p.retryQueue <- entry:
	default:
		p.writeDeadLetter(entry, LogMsgRetryQueueFull)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			p.drain()
			return
		case entry := <-p.retryQueue:
			if wait := time.Until(entry.nextAttempt); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-p.shutdown:
					timer.Stop()
					p.attemptFinal(entry)
					p.drain()
					return
				}
			}
			p.attempt(entry)
		}
	}
}

// OnHandlerError delegates to the wrapped bus when it reports handler failures
func (p *ResilientPublisher) OnHandlerError(fn func(Type, error)) {
	if obs, ok := p.bus.(HandlerErrorObserver); ok {
		obs.OnHandlerError(fn)
	}
}

// redeliver hands a queued event back to the bus. The event is stamped with
// its delivery number so subscribers can tell a retry from a new event.
func (p *ResilientPublisher) redeliver(entry retryEntry) error {
	return p.bus.Publish(context.Background(), entry.event.withDelivery(entry.attempts+1))
}

func (p *ResilientPublisher) attempt(entry retryEntry) {
	err := p.redeliver(entry)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempts)
		return
	}

	entry.lastErr = err
	if entry.attempts >= p.maxRetries {
		p.writeDeadLetter(entry, LogMsgEventRetryExhausted)
		return
	}

	entry.attempts++
	entry.nextAttempt = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempts))
	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempts,
		"error", err)
	p.enqueue(entry)
}

// attemptFinal gives an entry one last immediate try during shutdown.
func (p *ResilientPublisher) attemptFinal(entry retryEntry) {
	if err := p.redeliver(entry); err != nil {
		entry.lastErr = err
		p.writeDeadLetter(entry, LogMsgEventDroppedShutdown)
	}
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.attemptFinal(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry, reason string) {
	logger.Warn(reason, "event_type", entry.event.Type, "attempts", entry.attempts)
	if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker, flushing queued events one final time.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
