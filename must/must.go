// Package must helps you do things that must not fail.
//
// It gathers the option and result containers and their OrPanic operations
// under one import, next to Do and Get for Go's own (T, error) shape.
//
// Example:
//
//	var clusterURL = must.Get(url.Parse(...))
//	var conn = must.From(net.Dial("tcp", ...)).OrPanic("dial scheduler")
//	var home = must.OptionOrPanic(must.Some(os.Getenv("HOME")), "HOME unset")
//	must.Do(telemetry.Shutdown(ctx))
//
// Every panic raised here is a *fatal.Error that records the line that
// called into this package.
package must

import (
	"github.com/replicate/orpanic/fatal"
	"github.com/replicate/orpanic/option"
	"github.com/replicate/orpanic/result"
)

type (
	Option[T any]    = option.Option[T]
	Result[T, E any] = result.Result[T, E]
)

func Some[T any](v T) Option[T] {
	return option.Some(v)
}

func None[T any]() Option[T] {
	return option.None[T]()
}

func Ok[T, E any](v T) Result[T, E] {
	return result.Ok[T, E](v)
}

func Err[T, E any](e E) Result[T, E] {
	return result.Err[T](e)
}

func From[T any](v T, err error) Result[T, error] {
	return result.From(v, err)
}

// OptionOrPanic is Option.OrPanic as a function, for call sites that want
// the message type spelled out.
func OptionOrPanic[T, M any](o Option[T], msg M) T {
	v, ok := o.Get()
	if !ok {
		fatal.Absent(1, msg)
	}
	return v
}

// ResultOrPanic is Result.OrPanic as a function.
func ResultOrPanic[T, E, M any](r Result[T, E], msg M) T {
	v, err, ok := r.Get()
	if !ok {
		fatal.Failure(1, msg, err)
	}
	return v
}

// Do panics if err is non-nil.
func Do(err error) {
	if err != nil {
		fatal.Raise(1, err)
	}
}

// Get returns v, and panics if err is non-nil.
func Get[T any](v T, err error) T {
	if err != nil {
		fatal.Raise(1, err)
	}
	return v
}
