// Package logging provides structured logger construction for the linsys
// command using the standard library slog package.
//
//	logger := logging.New("info", "json", os.Stderr)
//
// The diagnostics packages never log; only the command does. Every error log
// should carry the operation name and the full error chain:
//
//	logger.Error("residual failed",
//	    slog.String("operation", "residual.Norm"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level. Valid values are "debug",
// "info", "warn", and "error". Unrecognized values default to info.
//
// The format parameter selects the output handler. "json" uses
// slog.NewJSONHandler; all other values (including "text") use
// slog.NewTextHandler, which suits an interactive command.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level string to slog.Level.
// Unrecognized values default to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
