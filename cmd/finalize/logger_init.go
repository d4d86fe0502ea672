package main

import (
	"os"

	"github.com/osse101/CatchCup_Go/internal/config"
	"github.com/osse101/CatchCup_Go/internal/logger"
)

// initLogger logs to stderr only; cron captures it and stdout stays free
// for the JSON report.
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName+"-finalize",
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLoggerWithWriter(loggerConfig, os.Stderr)
}
