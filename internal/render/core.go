//go:build orpanic_core

package render

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Display renders v for humans.
func Display(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	}
	var p printer
	p.value(reflect.ValueOf(v), false, 0)
	return p.String()
}

// Debug renders v for diagnostics.
func Debug(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case goStringer:
		return call(v, "GoString", v.GoString)
	case error:
		return call(v, "Error", v.Error)
	case string:
		return strconv.Quote(v)
	}

	rv := reflect.ValueOf(v)
	if s, ok := scalar(rv); ok {
		return s
	}
	var p printer
	p.value(rv, true, 0)
	return p.String()
}

// printer writes values the way fmt's %v (sharp false) and %#v (sharp true)
// verbs do.
type printer struct {
	strings.Builder
}

func (p *printer) value(rv reflect.Value, sharp bool, depth int) {
	if rv.IsValid() && rv.CanInterface() && p.method(rv.Interface(), sharp) {
		return
	}

	switch rv.Kind() {
	case reflect.Invalid:
		p.WriteString("<invalid reflect.Value>")
	case reflect.Bool:
		p.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if sharp {
			p.WriteString("0x" + strconv.FormatUint(rv.Uint(), 16))
		} else {
			p.WriteString(strconv.FormatUint(rv.Uint(), 10))
		}
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		s, _ := scalar(rv)
		p.WriteString(s)
	case reflect.String:
		if sharp {
			p.WriteString(strconv.Quote(rv.String()))
		} else {
			p.WriteString(rv.String())
		}
	case reflect.Map:
		p.mapValue(rv, sharp, depth)
	case reflect.Struct:
		if sharp {
			p.WriteString(rv.Type().String())
		}
		p.WriteByte('{')
		for i := 0; i < rv.NumField(); i++ {
			if i > 0 {
				p.separator(sharp)
			}
			if sharp {
				p.WriteString(rv.Type().Field(i).Name + ":")
			}
			p.value(rv.Field(i), sharp, depth+1)
		}
		p.WriteByte('}')
	case reflect.Interface:
		elem := rv.Elem()
		switch {
		case elem.IsValid():
			p.value(elem, sharp, depth+1)
		case sharp:
			p.WriteString(rv.Type().String() + "(nil)")
		default:
			p.WriteString("<nil>")
		}
	case reflect.Array, reflect.Slice:
		p.list(rv, sharp, depth)
	case reflect.Pointer:
		if depth == 0 && !rv.IsNil() {
			switch rv.Elem().Kind() {
			case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map:
				p.WriteByte('&')
				p.value(rv.Elem(), sharp, depth+1)
				return
			}
		}
		p.pointer(rv, sharp)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		p.pointer(rv, sharp)
	}
}

// method renders v through GoString under %#v, or Error and then String
// under %v, and reports whether it did.
func (p *printer) method(v any, sharp bool) bool {
	if sharp {
		if gs, ok := v.(goStringer); ok {
			p.WriteString(call(v, "GoString", gs.GoString))
			return true
		}
		return false
	}
	switch v := v.(type) {
	case error:
		p.WriteString(call(v, "Error", v.Error))
		return true
	case stringer:
		p.WriteString(call(v, "String", v.String))
		return true
	}
	return false
}

func (p *printer) separator(sharp bool) {
	if sharp {
		p.WriteString(", ")
	} else {
		p.WriteByte(' ')
	}
}

func (p *printer) list(rv reflect.Value, sharp bool, depth int) {
	if sharp {
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			p.WriteString(rv.Type().String() + "(nil)")
			return
		}
		p.WriteString(rv.Type().String() + "{")
	} else {
		p.WriteByte('[')
	}
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			p.separator(sharp)
		}
		p.value(rv.Index(i), sharp, depth+1)
	}
	if sharp {
		p.WriteByte('}')
	} else {
		p.WriteByte(']')
	}
}

func (p *printer) mapValue(rv reflect.Value, sharp bool, depth int) {
	if sharp {
		if rv.IsNil() {
			p.WriteString(rv.Type().String() + "(nil)")
			return
		}
		p.WriteString(rv.Type().String() + "{")
	} else {
		p.WriteString("map[")
	}
	for i, k := range sortedKeys(rv) {
		if i > 0 {
			p.separator(sharp)
		}
		p.value(k, sharp, depth+1)
		p.WriteByte(':')
		p.value(rv.MapIndex(k), sharp, depth+1)
	}
	if sharp {
		p.WriteByte('}')
	} else {
		p.WriteByte(']')
	}
}

func (p *printer) pointer(rv reflect.Value, sharp bool) {
	u := rv.Pointer()
	switch {
	case sharp && u == 0:
		p.WriteString("(" + rv.Type().String() + ")(nil)")
	case sharp:
		p.WriteString("(" + rv.Type().String() + ")(0x" + strconv.FormatUint(uint64(u), 16) + ")")
	case u == 0:
		p.WriteString("<nil>")
	default:
		p.WriteString("0x" + strconv.FormatUint(uint64(u), 16))
	}
}

// sortedKeys orders map keys the way fmt does for the key kinds it can
// compare; other kinds keep reflect's order.
func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		switch a.Kind() {
		case reflect.Bool:
			return !a.Bool() && b.Bool()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		}
		return false
	})
	return keys
}
