// Package errors provides structured error handling for overlay.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrLayerNotFound is returned when a widget is added to a layer that has
// already been removed.
var ErrLayerNotFound = stderrors.New("layer not found")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayerNotFound indicates an operation against a removed layer.
	KindLayerNotFound
	// KindRender indicates a failure reported by a drawing surface.
	KindRender
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindHost indicates a failure in a host adapter.
	KindHost
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayerNotFound:
		return "layer_not_found"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindHost:
		return "host"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// OverlayError represents a structured error raised by the widget engine.
type OverlayError struct {
	// Op is the operation that failed (e.g., "overlay.Add").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Layer is the layer involved, if any.
	Layer uint64
	// Widget is the widget involved, if any.
	Widget uint64
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *OverlayError) Error() string {
	switch {
	case e.Widget != 0:
		return fmt.Sprintf("%s [%s] layer=%d widget=%d: %v", e.Op, e.Kind, e.Layer, e.Widget, e.Err)
	case e.Layer != 0:
		return fmt.Sprintf("%s [%s] layer=%d: %v", e.Op, e.Kind, e.Layer, e.Err)
	default:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *OverlayError) Unwrap() error {
	return e.Err
}

// Is reports whether err is an OverlayError of the given kind.
func Is(err error, kind ErrorKind) bool {
	var oe *OverlayError
	if !stderrors.As(err, &oe) {
		return false
	}
	return oe.Kind == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "terminal.Run").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported through Report and ReportPanic.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *OverlayError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
