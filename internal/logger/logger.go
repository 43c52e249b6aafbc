package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New builds a logger writing to the given file path. An empty path
// discards everything: the terminal is owned by the dashboard, so
// stdout and stderr are never valid sinks while it runs.
func New(path, level, format string) (*slog.Logger, error) {
	if path == "" {
		return NewWithWriter(io.Discard, level, format), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(f, level, format), nil
}

func NewWithWriter(w io.Writer, level string, format string) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
