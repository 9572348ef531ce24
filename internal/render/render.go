// Package render turns messages and error values into diagnostic text.
//
// Display is the human rendering of a message (the %v verb). Debug is the
// structured rendering of an error value:
//
//   - a fmt.GoStringer renders with GoString
//   - an error renders with %+v, so errors carrying a stack print it
//   - a string renders as a double-quoted Go literal
//   - numbers and booleans render in decimal by kind, so uint(404) is 404,
//     not 0x194, and a numeric type with a String method still prints digits
//   - a nil value renders as <nil>
//   - anything else renders with %#v
//
// Building with the orpanic_core tag replaces fmt with a reflection walker
// that produces the same text for everything except fmt.Formatter
// implementations, which it does not consult; see core.go.
//
// A method that panics on a nil pointer receiver renders as <nil>, as it
// does with fmt.
package render

import (
	"reflect"
	"strconv"
)

type stringer interface {
	String() string
}

type goStringer interface {
	GoString() string
}

// call runs one of v's rendering methods, recovering the way fmt does when
// the method panics.
func call(v any, method string, fn func() string) (s string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			s = "<nil>"
			return
		}
		s = "%!v(PANIC=" + method + " method: " + panicText(r) + ")"
	}()
	return fn()
}

func panicText(r any) string {
	switch r := r.(type) {
	case error:
		return r.Error()
	case string:
		return r
	case stringer:
		return r.String()
	}
	return "unknown panic"
}

// scalar renders booleans, numbers and strings by kind, ignoring methods.
func scalar(rv reflect.Value) (string, bool) {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 64), true
	case reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128), true
	case reflect.String:
		return strconv.Quote(rv.String()), true
	}
	return "", false
}
