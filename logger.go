// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixwave

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixwave and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by pixwave:
//   - [slog.LevelDebug]: skipped degenerate geometry, out-of-range pixel access
//   - [slog.LevelInfo]: lifecycle events of the demo (surface size, font loaded)
//   - [slog.LevelWarn]: non-fatal issues (label rendering failures)
//
// Example:
//
//	pixwave.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixwave.
// Sub-packages (ripple, text, integration/termcanvas) call this to share the
// same configuration without an import cycle.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugEnabled reports whether debug records would be emitted.
// Hot loops check it before building attributes.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
