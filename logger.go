package threecircles

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false, so callers skip building attributes and a
// silent logger costs next to nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. It is swapped atomically so SetLogger
// may race with a render running on another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for threecircles and the gg context it
// draws with. By default nothing is logged. Call SetLogger to enable
// output, or pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use. The same logger is handed to
// [gg.SetLogger], so rasterizer diagnostics land in the same stream.
//
// Log levels used by threecircles:
//   - [slog.LevelDebug]: canvas size, pixels per data unit, each drawing stage
//   - [slog.LevelInfo]: the written output file
//
// Example:
//
//	// Report the saved file on stderr:
//	threecircles.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//
//	// Trace every drawing stage:
//	threecircles.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by threecircles.
// It never returns nil and is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
