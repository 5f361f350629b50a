package common

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// NewLogger builds the run logger. Format "text" selects the text handler,
// anything else JSON. quiet raises the level to error regardless of level.
func NewLogger(w io.Writer, level, format string, quiet bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if quiet {
		opts.Level = slog.LevelError
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
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
