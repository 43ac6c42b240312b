package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global slog instance, set up by Init.
var Logger *slog.Logger

// Init configures structured JSON logging at the given level ("debug",
// "info", "warn", "error"). Unknown or empty values fall back to info.
func Init(level string) {
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	slog.SetDefault(Logger)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// get tolerates use before Init, mostly from tests.
func get() *slog.Logger {
	if Logger == nil {
		return slog.Default()
	}
	return Logger
}
