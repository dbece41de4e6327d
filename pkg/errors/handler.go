package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported error. Replace it with
	// SetHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the destination of Report and ReportPanic. Nil
// restores a LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	DefaultHandler = h
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report hands err to the installed handler after stamping its time.
//
// Hosts often wrap an error raised by the context in one of their own. When
// err names no layer or widget, the ids of the nearest wrapped OverlayError
// are copied onto it, and an unknown kind takes the wrapped kind, so handlers
// always see which widget failed.
func Report(err *OverlayError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if inner := wrapped(err); inner != nil {
		if err.Layer == 0 && err.Widget == 0 {
			err.Layer, err.Widget = inner.Layer, inner.Widget
		}
		if err.Kind == KindUnknown {
			err.Kind = inner.Kind
		}
	}
	if h := handler(); h != nil {
		h.HandleError(err)
	}
}

// wrapped returns the first OverlayError in err's chain below err itself.
func wrapped(err *OverlayError) *OverlayError {
	var inner *OverlayError
	if err.Err == nil || !stderrors.As(err.Err, &inner) {
		return nil
	}
	return inner
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in progress instead of letting it unwind further.
// It must be deferred directly:
//
//	defer errors.Recover("terminal.Host.poll")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack returns the calling goroutine's stack, one "function
// file:line" entry per line, leaving out runtime frames.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s %s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
