// Package logging provides loggers for the rest of the codebase.
package logging

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is an interface used to output logs.
type Logger = *zap.SugaredLogger

// LoggerFactory retrieves a named logger for a given module.
type LoggerFactory func(module string) Logger

// NullLogger discards all log messages.
var NullLogger = zap.NewNop().Sugar()

// Module returns a function that returns a logger for a given module when
// provided with a context.
func Module(module string) func(ctx context.Context) Logger {
	return func(ctx context.Context) Logger {
		if f, ok := ctx.Value(loggerKey).(LoggerFactory); ok {
			return f(module)
		}

		return NullLogger
	}
}

// Zap returns LoggerFactory that derives named loggers from the provided zap
// logger.
func Zap(l *zap.SugaredLogger) LoggerFactory {
	return func(module string) Logger {
		return l.Named(module)
	}
}

// ToWriter returns LoggerFactory that writes one unadorned message per line
// to the provided writer.
func ToWriter(w io.Writer) LoggerFactory {
	return func(module string) Logger {
		return zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
				MessageKey:     "M",
				LineEnding:     zapcore.DefaultLineEnding,
				EncodeDuration: zapcore.StringDurationEncoder,
			}),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)).Sugar()
	}
}
