package errors

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes reported errors through zerolog.
type LogHandler struct {
	// Verbose adds stack traces to logged errors.
	Verbose bool

	logger zerolog.Logger
}

// NewLogHandler returns a LogHandler writing human-readable lines to w.
// A nil writer logs to stderr.
func NewLogHandler(w io.Writer) *LogHandler {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}
	return &LogHandler{logger: zerolog.New(console).With().Timestamp().Logger()}
}

// NewZerologHandler wraps an existing logger, typically the application's.
func NewZerologHandler(logger zerolog.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// HandleError logs a LoopError. Precondition and panic kinds log at error
// level, everything else at warn.
func (h *LogHandler) HandleError(err *LoopError) {
	if err == nil {
		return
	}
	event := h.logger.Warn()
	if err.Kind == KindPrecondition || err.Kind == KindPanic {
		event = h.logger.Error()
	}
	event = event.Str("op", err.Op).Str("kind", err.Kind.String()).Err(err.Err)
	if err.Index >= 0 {
		event = event.Int("index", err.Index)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("looplist error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.logger.Error().Interface("value", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("looplist panic")
}
