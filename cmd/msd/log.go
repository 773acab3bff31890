package main

import (
	"io"
	"log/slog"
	"os"
)

var theLog = newLog(os.Stderr, false)

// newLog logs without timestamps. INFO records are only written when
// verbose, and then without their level.
func newLog(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch {
			case a.Key == slog.TimeKey:
				return slog.Attr{}
			case a.Key == slog.LevelKey && a.Value.String() == "INFO":
				return slog.Attr{}
			}
			return a
		},
	}))
}
