package config

import (
	"io"
	"log/slog"
	"strings"
)

const (
	// LogFormatText renders log records as key=value pairs.
	LogFormatText = "text"

	// LogFormatJSON renders log records as JSON objects.
	LogFormatJSON = "json"
)

// NewLogger builds a slog logger writing to w. Unknown levels fall back to info, unknown formats to text.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}

	return l
}
