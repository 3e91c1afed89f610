// Package logging builds the application logger. The TUI owns the
// terminal, so log output goes to a file or nowhere.
package logging

import (
	"io"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
)

const prefix = "mathdrill"

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New opens path for appending and returns a text logger writing to it.
// An empty path returns a logger that discards everything. The returned
// closer must be closed on exit.
func New(path, level string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, nil, err
	}
	return NewWriter(f, level), f, nil
}

// NewWriter returns a text logger writing to w.
func NewWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
