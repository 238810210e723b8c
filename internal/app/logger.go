package app

import (
	"io"
	"log/slog"

	"github.com/vk/puzzlegrid/internal/ui"
)

// logLevels maps the accepted --log-level names to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds an isolated logger writing to w; the global slog default
// is left alone. Unknown levels fall back to info and any format other than
// json is text.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := logLevels[level]
	if !ok {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// DefaultLogFormat picks text for a terminal and json otherwise.
func DefaultLogFormat(w io.Writer) string {
	if ui.IsTerminal(w) {
		return "text"
	}
	return "json"
}
