// Package infrastructure wires process-level concerns: the structured
// logger and the per-run identity attached to it.
package infrastructure

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/michael-k-goff/lcoe-graphic/internal/config"
)

// NewLogger creates the application logger from configuration. Every
// record carries a run_id so log lines from separate report runs can be
// told apart when output is collected.
func NewLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("run_id", uuid.NewString())
}

// parseLogLevel converts a level string to slog.Level, defaulting to Info
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
