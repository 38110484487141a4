package app

import (
	"io"
	"log/slog"
	"strings"
)

var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// newLogger builds an isolated logger for one App. Unknown levels fall back
// to info and any format other than "text" writes JSON lines.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[strings.ToLower(levelStr)]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(formatStr, "text") {
		return slog.New(slog.NewTextHandler(outW, opts)).With("component", "modslots")
	}
	return slog.New(slog.NewJSONHandler(outW, opts)).With("component", "modslots")
}
