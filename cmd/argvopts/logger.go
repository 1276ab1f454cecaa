package main

import (
	"io"
	"log/slog"
)

const logFormatJSON = "json"

// newLogger writes log records to outW, the stderr of the CLI. Records of
// debug directives and spy points go through it as well
func newLogger(level slog.Level, format string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if format == logFormatJSON {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
