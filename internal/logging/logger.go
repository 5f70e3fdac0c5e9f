// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logging builds the structured logger of the dilo command.
//
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/db47h/dilo/internal/config"
)

// New creates a logger writing to the output selected by cfg.
//
func New(cfg config.LoggingConfig, version string) *slog.Logger {
	var w io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		w = os.Stdout
	default:
		w = os.Stderr
	}
	return NewWriter(w, cfg, version)
}

// NewWriter is like New but writes to w.
//
func NewWriter(w io.Writer, cfg config.LoggingConfig, version string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	h = h.WithAttrs([]slog.Attr{
		slog.String("service", "dilo"),
		slog.String("version", version),
	})
	return slog.New(h)
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to
// info.
//
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
