package logger

import (
	"log/slog"
	"os"
)

const (
	envDev  = "dev"
	envTest = "test"
	envProd = "prod"
)

// Logger wraps slog.Logger so the rest of the service depends on a
// single local type rather than on log/slog directly.
type Logger struct {
	*slog.Logger
}

// New picks a handler for the given environment: readable text at
// debug level for dev, errors only for test runs, JSON for prod.
func New(env string) *Logger {
	var handler slog.Handler

	opts := func(level slog.Level) *slog.HandlerOptions {
		return &slog.HandlerOptions{Level: level}
	}

	switch env {
	case envDev:
		handler = slog.NewTextHandler(os.Stdout, opts(slog.LevelDebug))
	case envTest:
		handler = slog.NewTextHandler(os.Stdout, opts(slog.LevelError))
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, opts(slog.LevelInfo))
	default:
		handler = slog.NewTextHandler(os.Stdout, opts(slog.LevelInfo))
	}

	return &Logger{slog.New(handler)}
}
