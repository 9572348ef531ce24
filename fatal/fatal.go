// Package fatal implements the termination path shared by the option, result
// and must packages.
//
// A termination is a panic whose value is a *Error. The text of the panic is
// exactly the diagnostic message, and the Error records the frame of the
// code that asked for the value, so a recovered termination can be traced
// back to its call site without reading the goroutine dump.
package fatal

import (
	"runtime"
	"strconv"

	"github.com/replicate/orpanic/internal/render"
)

// Kind identifies which condition raised a termination.
type Kind int

const (
	// KindAbsent is raised when an optional value holds nothing.
	KindAbsent Kind = iota + 1
	// KindFailure is raised when a result holds an error value.
	KindFailure
	// KindError is raised for a bare Go error passed to must.Do or must.Get.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindFailure:
		return "failure"
	case KindError:
		return "error"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Frame is a source location.
type Frame struct {
	Function string
	File     string
	Line     int
}

// IsZero reports whether the frame could not be resolved.
func (f Frame) IsZero() bool {
	return f.File == "" && f.Line == 0 && f.Function == ""
}

func (f Frame) String() string {
	if f.IsZero() {
		return "unknown"
	}
	return f.File + ":" + strconv.Itoa(f.Line)
}

// Error is the panic value of a termination.
type Error struct {
	Kind Kind
	// Message is the full diagnostic text.
	Message string
	// Cause is the error value of a failed result, or the error passed to
	// Raise. It is nil for KindAbsent.
	Cause any
	// Caller is the frame that unwrapped the container.
	Caller Frame
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns Cause when it is an error, so errors.Is and errors.As see
// through a recovered termination.
func (e *Error) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// As reports whether v, typically the result of recover(), is a termination.
func As(v any) (*Error, bool) {
	e, ok := v.(*Error)
	return e, ok && e != nil
}

// Diagnostic returns the text of an error-value termination:
//
//	<msg>.
//	Caused by: <debug rendering of cause>
func Diagnostic(msg, cause any) string {
	return render.Display(msg) + ".\nCaused by: " + render.Debug(cause)
}

// Absent panics with the display rendering of msg and nothing else.
//
// skip is the number of frames to ascend from the caller of Absent when
// recording the call site; 0 identifies the caller of Absent.
func Absent(skip int, msg any) {
	panic(&Error{
		Kind:    KindAbsent,
		Message: render.Display(msg),
		Caller:  callerFrame(skip),
	})
}

// Failure panics with the Diagnostic text for msg and cause. skip is
// interpreted as for Absent.
func Failure(skip int, msg, cause any) {
	panic(&Error{
		Kind:    KindFailure,
		Message: Diagnostic(msg, cause),
		Cause:   cause,
		Caller:  callerFrame(skip),
	})
}

// Raise panics with err's own text. skip is interpreted as for Absent.
func Raise(skip int, err error) {
	panic(&Error{
		Kind:    KindError,
		Message: err.Error(),
		Cause:   err,
		Caller:  callerFrame(skip),
	})
}

// Here returns the frame skip levels above the caller of Here.
func Here(skip int) Frame {
	return callerFrame(skip)
}

// callerFrame returns the frame skip levels above the caller of the function
// that called callerFrame.
func callerFrame(skip int) Frame {
	var pcs [1]uintptr
	// 0 is runtime.Callers, 1 is callerFrame, 2 is the exported entry point.
	if runtime.Callers(skip+3, pcs[:]) == 0 {
		return Frame{}
	}
	f, _ := runtime.CallersFrames(pcs[:]).Next()
	return Frame{
		Function: f.Function,
		File:     f.File,
		Line:     f.Line,
	}
}
