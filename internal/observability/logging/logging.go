package logging

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger. Logs always go to stderr so the
// report printed in one-shot mode stays alone on stdout.
func NewLogger(level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
