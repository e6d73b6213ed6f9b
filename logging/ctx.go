package logging

import "context"

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a derived context with associated logger factory.
func WithLogger(ctx context.Context, f LoggerFactory) context.Context {
	if f == nil {
		f = func(module string) Logger { return NullLogger }
	}

	return context.WithValue(ctx, loggerKey, f)
}

// WithAdditionalLogger returns a derived context where each module logger
// emits to both the already-associated factory and the provided one.
func WithAdditionalLogger(ctx context.Context, f LoggerFactory) context.Context {
	prev, ok := ctx.Value(loggerKey).(LoggerFactory)
	if !ok {
		return WithLogger(ctx, f)
	}

	return WithLogger(ctx, func(module string) Logger {
		return Broadcast(prev(module), f(module))
	})
}
