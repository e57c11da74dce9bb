package logger

import (
	"log/slog"
	"os"
	"time"
)

var log *slog.Logger

// Init configures the global logger.
// env: "development" or "production"
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON for log aggregation
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger, initializing a development
// logger if Init was never called.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs the message and exits with code 1.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With returns a logger carrying extra fields.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError returns a logger carrying an error field.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

// HTTPLog logs a completed HTTP request.
func HTTPLog(method, path string, status int, duration time.Duration, size int) {
	GetLogger().Info("http request",
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"size_bytes", size,
	)
}

// WorkerLog logs a background worker operation.
func WorkerLog(worker, operation string, args ...any) {
	fields := []any{
		"worker", worker,
		"operation", operation,
	}
	fields = append(fields, args...)
	GetLogger().Info("worker operation", fields...)
}
