// Package test contains helpers shared by the tests of this module.
package test

import (
	"context"
	"testing"

	"github.com/replicate/orpanic/fatal"
)

func Context(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

// Panic runs fn and returns the termination it raised. The test fails if fn
// returns normally or panics with anything other than a *fatal.Error.
func Panic(t testing.TB, fn func()) (err *fatal.Error) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a termination, but the function returned")
			return
		}
		e, ok := fatal.As(r)
		if !ok {
			t.Fatalf("expected a *fatal.Error panic, got %T: %v", r, r)
			return
		}
		err = e
	}()

	fn()
	return nil
}

// Line returns the line number of its caller.
func Line(t testing.TB) int {
	t.Helper()

	return fatal.Here(1).Line
}
