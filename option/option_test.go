package option

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/replicate/orpanic/fatal"
	"github.com/replicate/orpanic/test"
)

func TestOrPanicReturnsValue(t *testing.T) {
	assert.Equal(t, 42, Some(42).OrPanic("should not panic"))
	assert.Equal(t, "", Some("").OrPanic("zero values are values"))
}

func TestOrPanicPanicsOnNone(t *testing.T) {
	assert.PanicsWithError(t, "option is missing", func() {
		None[int]().OrPanic("option is missing")
	})
}

func TestOrPanicHandlesDisplayTypes(t *testing.T) {
	code := 123

	assert.PanicsWithError(t, "error 123", func() {
		None[int]().OrPanic(fmt.Sprintf("error %d", code))
	})
	assert.PanicsWithError(t, "123", func() {
		None[int]().OrPanic(code)
	})
	assert.PanicsWithError(t, "[a b]", func() {
		None[int]().OrPanic([]string{"a", "b"})
	})
}

func TestOrPanicZeroValueIsNone(t *testing.T) {
	var o Option[string]

	assert.True(t, o.IsNone())
	assert.PanicsWithError(t, "zero", func() {
		o.OrPanic("zero")
	})
}

func TestOrPanicReportsCallSite(t *testing.T) {
	var line int

	err := test.Panic(t, func() {
		line = test.Line(t) + 1
		None[float64]().OrPanic("missing")
	})

	assert.Equal(t, fatal.KindAbsent, err.Kind)
	assert.Equal(t, "option_test.go", filepath.Base(err.Caller.File))
	assert.Equal(t, line, err.Caller.Line)
}

func TestNew(t *testing.T) {
	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, Some(1), New(v, ok))

	v, ok = m["b"]
	assert.Equal(t, None[int](), New(v, ok))
}

func TestFromPtr(t *testing.T) {
	n := 7

	assert.Equal(t, 7, FromPtr(&n).OrPanic("pointer is nil"))
	assert.True(t, FromPtr[int](nil).IsNone())
}

func TestAccessors(t *testing.T) {
	some := Some("x")
	none := None[string]()

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	assert.Equal(t, "x", some.Or("y"))
	assert.Equal(t, "y", none.Or("y"))

	assert.Equal(t, "x", *some.Ptr())
	assert.Nil(t, none.Ptr())

	assert.True(t, some.IsSome())
	assert.False(t, none.IsSome())
}

func TestPtrIsACopy(t *testing.T) {
	o := Some(1)
	p := o.Ptr()
	*p = 2

	assert.Equal(t, 1, o.OrPanic("present"))
}

func TestString(t *testing.T) {
	assert.Equal(t, `Some("x")`, Some("x").String())
	assert.Equal(t, "Some(3)", Some(3).String())
	assert.Equal(t, "None", None[int]().String())
}
