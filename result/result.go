// Package result provides Result, which holds either a success value or an
// error value, and OrPanic to take the success value out of it when a
// failure is unrecoverable.
//
// Functions returning Go's usual (T, error) pair convert with From:
//
//	cfg := result.From(config.Load(path)).OrPanic("load " + path)
package result

import (
	"github.com/replicate/orpanic/fatal"
	"github.com/replicate/orpanic/internal/render"
	"github.com/replicate/orpanic/option"
)

// Result holds either a success value of type T or an error value of type E.
// E is not restricted to the error interface; any value can be the cause of
// a failure. The zero Result is a success holding the zero T.
type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Ok returns a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err returns a failed Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, failed: true}
}

// From converts a (T, error) pair. A non-nil err makes a failed Result.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return !r.failed
}

func (r Result[T, E]) IsErr() bool {
	return r.failed
}

// Get returns the success value, the error value and whether the Result is
// a success. Only one of the two values is meaningful.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, !r.failed
}

// Value returns the success value if there is one.
func (r Result[T, E]) Value() option.Option[T] {
	return option.New(r.value, !r.failed)
}

// Cause returns the error value if there is one.
func (r Result[T, E]) Cause() option.Option[E] {
	return option.New(r.err, r.failed)
}

// OrPanic returns the success value. On failure it panics with a
// *fatal.Error whose text is
//
//	<msg>.
//	Caused by: <debug rendering of the error value>
//
// recording the caller of OrPanic as the call site. msg may be of any type;
// see package internal/render for how the error value is rendered.
func (r Result[T, E]) OrPanic(msg any) T {
	if r.failed {
		fatal.Failure(1, msg, r.err)
	}
	return r.value
}

func (r Result[T, E]) String() string {
	if r.failed {
		return "Err(" + render.Debug(r.err) + ")"
	}
	return "Ok(" + render.Debug(r.value) + ")"
}
