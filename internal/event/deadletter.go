package event

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/CatchCup_Go/internal/logger"
)

// DeadLetterSchemaVersion tags every line written to the dead-letter file.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one JSON line of the dead-letter file.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends events that could not be delivered, such as a
// VotingDayFinalized announcement that kept failing, so they can be replayed.
type DeadLetterWriter struct {
	mu   sync.Mutex
	path string
	file *os.File
	enc  *json.Encoder
}

func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DeadLetterDirPermissions); err != nil {
			return nil, fmt.Errorf("create dead-letter dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter file: %w", err)
	}
	return &DeadLetterWriter{path: path, file: f, enc: json.NewEncoder(f)}, nil
}

// Path returns the file the writer appends to.
func (w *DeadLetterWriter) Path() string { return w.path }

func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"attempts", attempts,
		"error", entry.LastError)

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(entry)
}

func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadDeadLetters loads every entry of a dead-letter file in write order.
// A missing file yields no entries.
func ReadDeadLetters(path string) ([]DeadLetterEntry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []DeadLetterEntry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e DeadLetterEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("dead-letter line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}
