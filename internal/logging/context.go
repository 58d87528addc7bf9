package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx. Without one it returns
// zerolog's disabled logger, so callers never check for nil.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags the context logger with a component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithEntry tags the context logger with a history entry id. Only the id
// is logged; entry content stays out of logs.
func WithEntry(ctx context.Context, id uuid.UUID) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("entry_id", id.String())
	})
}

func with(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, fields(FromContext(ctx).With()).Logger())
}
