package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Broadcast returns a logger that broadcasts each log message to all provided
// loggers.
func Broadcast(loggers ...Logger) Logger {
	cores := make([]zapcore.Core, 0, len(loggers))

	for _, l := range loggers {
		cores = append(cores, l.Desugar().Core())
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}
