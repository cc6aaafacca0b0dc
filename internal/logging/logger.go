// Package logging builds the slog logger used for progress and diagnostics.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a slog.Logger writing to w. levelStr is one of debug, info,
// warn, error (default info); formatStr is "json" or anything else for text.
// It does not touch the global logger.
func New(levelStr, formatStr string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}

	var handler slog.Handler
	if strings.EqualFold(formatStr, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level, defaulting to info
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
