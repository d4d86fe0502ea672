package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CatchCup_Go/internal/config"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2025, 4, 20, 8, 0, 0, 0, time.UTC)

	var names []string
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Hour).Format(LogFileTimestampFormat))
		names = append(names, name)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	// Not a session log
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), nil, 0600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)

	for _, old := range names[:3] {
		assert.NoFileExists(t, filepath.Join(dir, old))
	}
	for _, kept := range names[3:] {
		assert.FileExists(t, filepath.Join(dir, kept))
	}
	assert.FileExists(t, filepath.Join(dir, "event_deadletter.jsonl"))
}

func TestCleanupLogs_BelowLimit(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("session_%d.log", i)), nil, 0600))
	}

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSetupLogger(t *testing.T) {
	cfg := &config.Config{
		LogDir:      filepath.Join(t.TempDir(), "logs"),
		LogLevel:    "debug",
		LogFormat:   "json",
		ServiceName: "catchcup",
		Version:     "test",
		Environment: "test",
	}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.FileExists(t, f.Name())
	assert.Equal(t, cfg.LogDir, filepath.Dir(f.Name()))
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := &config.Config{
		EventDeadLetterPath: filepath.Join(t.TempDir(), "events", "dead.jsonl"),
	}

	es, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, es.Bus)
	require.NotNil(t, es.Publisher)
	t.Cleanup(func() { _ = es.Publisher.Shutdown(t.Context()) })

	assert.DirExists(t, filepath.Dir(cfg.EventDeadLetterPath))
}
