package voting

import (
	"context"

	"github.com/osse101/CatchCup_Go/internal/logger"
)

type sourceKey struct{}

// WithSource tags ctx with what triggered a finalization (api, worker, cli).
// Loggers derived from ctx carry the same source.
func WithSource(ctx context.Context, source string) context.Context {
	ctx = context.WithValue(ctx, sourceKey{}, source)
	return logger.WithAttrs(ctx, "source", source)
}

// SourceFromContext returns the trigger recorded by WithSource
func SourceFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey{}).(string); ok && s != "" {
		return s
	}
	return SourceUnknown
}
