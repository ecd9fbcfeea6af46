package main

import (
	"context"
	"io"
	"log/slog"
)

// nopHandler discards all records. Enabled reports false so that callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newLogger returns a silent logger, or a text logger writing to w if
// verbose is set. The terminal is owned by the screen while the viewer runs,
// so w is normally a log file.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose || w == nil {
		return slog.New(nopHandler{})
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
