//go:build !orpanic_core

package render

import (
	"fmt"
	"reflect"
	"strconv"
)

// Display renders v for humans.
func Display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Debug renders v for diagnostics.
func Debug(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case fmt.GoStringer:
		return call(v, "GoString", v.GoString)
	case error:
		return fmt.Sprintf("%+v", v)
	case string:
		return strconv.Quote(v)
	}

	if s, ok := scalar(reflect.ValueOf(v)); ok {
		return s
	}
	return fmt.Sprintf("%#v", v)
}
