package telemetry

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base atomic.Pointer[zap.Logger]

func init() {
	base.Store(zap.NewNop())
}

// Init builds the process logger. Level is one of debug/info/warn/error,
// format is "json" or "console".
func Init(level, format string) {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}
	base.Store(logger)
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	return base.Load()
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	base.Load().Info(msg, zapFields(fields)...)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	base.Load().Warn(msg, zapFields(fields)...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	base.Load().Error(msg, zapFields(fields)...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = base.Load().Sync()
}

func zapFields(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
