// Package logger provides structured logging configuration for the application.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a structured logger configured from the environment.
//
// LOG_LEVEL options: debug, info, warn, error (default: info)
// LOG_FORMAT options: json, text (default: json)
func New() *slog.Logger {
	level := getLogLevel()

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// SetDefault sets the given logger as the default slog logger.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

func getLogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
