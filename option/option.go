// Package option provides Option, a value that may or may not be present,
// and OrPanic to take the value out of it when its absence is a bug.
//
// Example:
//
//	next := option.FromPtr(queue.Peek()).OrPanic("queue drained while workers were running")
package option

import (
	"github.com/replicate/orpanic/fatal"
	"github.com/replicate/orpanic/internal/render"
)

// Option holds a value of type T or nothing. The zero Option is empty.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// New adapts the comma-ok idiom:
//
//	v, ok := m[key]
//	opt := option.New(v, ok)
func New[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns an Option holding *p, or an empty Option if p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Or returns the value if present and fallback otherwise.
func (o Option[T]) Or(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil if it is absent.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// OrPanic returns the value if present. Otherwise it panics with a
// *fatal.Error whose text is exactly the rendering of msg, recording the
// caller of OrPanic as the call site.
//
// msg may be of any type; it is rendered as with the %v verb.
func (o Option[T]) OrPanic(msg any) T {
	if !o.ok {
		fatal.Absent(1, msg)
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return "Some(" + render.Debug(o.value) + ")"
}
