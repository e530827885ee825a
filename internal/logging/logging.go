// Package logging builds the process logger: the log/slog API backed by a
// charmbracelet/log handler.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/vango-dev/gallery/internal/config"
)

// New returns a logger writing to w at the configured level. Format json
// selects the JSON formatter; anything else writes human-readable text.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	return slog.New(Handler(w, cfg))
}

// Handler returns the charmbracelet/log logger for cfg. It implements
// slog.Handler.
func Handler(w io.Writer, cfg config.LogConfig) *charmlog.Logger {
	opts := charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           Level(cfg.Level),
	}
	if strings.EqualFold(cfg.Format, config.LogFormatJSON) {
		opts.Formatter = charmlog.JSONFormatter
		opts.TimeFormat = time.RFC3339
	}
	return charmlog.NewWithOptions(w, opts)
}

// Level parses a level name. Unknown names are info.
func Level(name string) charmlog.Level {
	level, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return charmlog.InfoLevel
	}
	return level
}
