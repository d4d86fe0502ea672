package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/CatchCup_Go/internal/config"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// SetupLogger writes logs to stdout and a timestamped session file under
// cfg.LogDir, pruning old session files first. The caller must close the
// returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	initLogger(cfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", strings.ToUpper(cfg.LogLevel), "file", logFileName)
	slog.Info(LogMsgStartingCatchCup,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version,
		"timezone", cfg.ContestTimezone)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"voting_day_offset", cfg.VotingDayOffset,
		"sweep_interval", cfg.FinalizeSweepInterval)

	return logFile, nil
}

// initLogger installs the structured logger. Source locations are only added
// in development.
func initLogger(cfg *config.Config, w io.Writer) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)
}

// cleanupLogs keeps the newest LogFileRetentionCount session files
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) && strings.HasPrefix(entry.Name(), "session_") {
			logFiles = append(logFiles, entry.Name())
		}
	}

	if len(logFiles) < LogFileRetentionLimit {
		return
	}

	// Timestamped names sort chronologically
	slices.Sort(logFiles)
	toDelete := len(logFiles) - LogFileRetentionCount
	for _, name := range logFiles[:toDelete] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
