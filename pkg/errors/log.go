package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs an OverlayError.
func (h *LogHandler) HandleError(err *OverlayError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[overlay error] %s\n", err.Error())
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[overlay error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[overlay panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[overlay panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// SlogHandler is an ErrorHandler that forwards errors to a structured logger.
type SlogHandler struct {
	Logger *slog.Logger
}

// NewSlogHandler returns a handler logging through l, or slog.Default when l is nil.
func NewSlogHandler(l *slog.Logger) *SlogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &SlogHandler{Logger: l}
}

// HandleError logs an OverlayError at error level.
func (h *SlogHandler) HandleError(err *OverlayError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Layer != 0 {
		attrs = append(attrs, slog.Uint64("layer", err.Layer))
	}
	if err.Widget != 0 {
		attrs = append(attrs, slog.Uint64("widget", err.Widget))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.String("error", err.Err.Error()))
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "overlay error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *SlogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "overlay panic",
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
		slog.String("stack", err.StackTrace),
	)
}
