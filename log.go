package unityjs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// LogEnv names the environment variable holding the log level
// (DEBUG, INFO, WARN or ERROR).
const LogEnv = "UNITYJS_LOG"

// nopHandler discards all records. Enabled returns false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the package default logger, used by bridges created without
// Config.Logger and by the internal packages. Pass nil to silence logging.
//
// Log levels:
//   - [slog.LevelDebug]: per-call traces (missing send-message callback, render events)
//   - [slog.LevelInfo]: lifecycle (load, unload, device events)
//   - [slog.LevelWarn]: unresolved entry points, attach failures
//   - [slog.LevelError]: managed exceptions, recovered panics
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package default logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LoggerFromEnv builds a text logger writing to w at the level named by
// UNITYJS_LOG. Default is WARN so release builds stay quiet.
func LoggerFromEnv(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if v := os.Getenv(LogEnv); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
