package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the base attributes of the process logger.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// withDefaults fills the identity fields left empty, so every record
// carries a service, version and environment.
func (c Config) withDefaults() Config {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	return c
}

// LogLevel maps Level to a slog level; unknown values log at info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(strings.TrimSpace(c.Format), LogFormatJSON)
}

func (c Config) baseArgs() []any {
	return []any{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
