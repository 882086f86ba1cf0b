package cli

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger on w whose level follows level, so the
// --verbose flag can lower it after the logger has been handed out.
func NewLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
