package logging

import (
	"bytes"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Printf returns LoggerFactory that uses given printf-style function to print
// log output, prefixed with the module name.
func Printf(printf func(msg string, args ...interface{})) LoggerFactory {
	return func(module string) Logger {
		return zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
				MessageKey:     "M",
				LineEnding:     zapcore.DefaultLineEnding,
				EncodeDuration: zapcore.StringDurationEncoder,
			}),
			printfWriter{printf, "[" + module + "] "},
			zapcore.DebugLevel,
		)).Sugar()
	}
}

type printfWriter struct {
	printf func(msg string, args ...interface{})
	prefix string
}

func (w printfWriter) Write(p []byte) (int, error) {
	n := len(p)

	w.printf("%s%s", w.prefix, bytes.TrimRight(p, "\n"))

	return n, nil
}

func (w printfWriter) Sync() error {
	return nil
}
