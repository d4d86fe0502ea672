package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CatchCup_Go/internal/config"
	"github.com/osse101/CatchCup_Go/internal/event"
)

// EventSystem pairs the in-memory bus that subscribers register on with the
// resilient publisher that services publish through.
type EventSystem struct {
	Bus       *event.MemoryBus
	Publisher *event.ResilientPublisher
}

// InitializeEventSystem builds the bus and its retrying publisher. Zero
// values in cfg fall back to the package defaults.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries <= 0 {
		maxRetries = EventDefaultMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay <= 0 {
		retryDelay = EventDefaultRetryDelay
	}
	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return &EventSystem{Bus: bus, Publisher: publisher}, nil
}
