package result

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replicate/orpanic/fatal"
	"github.com/replicate/orpanic/test"
)

func TestOrPanicReturnsOkValue(t *testing.T) {
	r := Ok[int, string](7)

	assert.Equal(t, 7, r.OrPanic("no panic expected"))
}

func TestOrPanicPanicsOnErr(t *testing.T) {
	r := Err[int]("boom")

	assert.PanicsWithError(t, "explicit failure.\nCaused by: \"boom\"", func() {
		r.OrPanic("explicit failure")
	})
}

func TestOrPanicWorksWithDisplayFormatting(t *testing.T) {
	r := Err[int](404)

	assert.PanicsWithError(t, "Bad stuff.\nCaused by: 404", func() {
		r.OrPanic("Bad stuff")
	})
}

func TestOrPanicAllowsNonStringMessageTypes(t *testing.T) {
	r := Ok[string, string]("yay")
	msgInt := 999

	assert.Equal(t, "yay", r.OrPanic(msgInt))

	assert.PanicsWithError(t, "999.\nCaused by: \"nay\"", func() {
		Err[string]("nay").OrPanic(msgInt)
	})
}

func TestOrPanicWithGoError(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	r := From[*os.File](nil, err)

	perr := test.Panic(t, func() {
		r.OrPanic("open settings")
	})

	assert.Equal(t, fatal.KindFailure, perr.Kind)
	assert.Equal(t, "open settings.\nCaused by: "+err.Error(), perr.Error())
	assert.ErrorIs(t, perr, fs.ErrNotExist)
}

func TestOrPanicReportsCallSite(t *testing.T) {
	var line int

	err := test.Panic(t, func() {
		line = test.Line(t) + 1
		Err[int]("boom").OrPanic("explicit failure")
	})

	assert.Equal(t, "result_test.go", filepath.Base(err.Caller.File))
	assert.Equal(t, line, err.Caller.Line)
}

func TestFrom(t *testing.T) {
	n, err := strconv.Atoi("12")
	assert.Equal(t, 12, From(n, err).OrPanic("parse"))

	r := From(strconv.Atoi("twelve"))
	assert.True(t, r.IsErr())

	var numErr *strconv.NumError
	assert.ErrorAs(t, r.Cause().OrPanic("error value"), &numErr)
}

func TestZeroValueIsOk(t *testing.T) {
	var r Result[int, error]

	assert.True(t, r.IsOk())
	assert.Equal(t, 0, r.OrPanic("zero"))
}

func TestAccessors(t *testing.T) {
	ok := Ok[string, int]("v")
	bad := Err[string](3)

	v, e, success := ok.Get()
	assert.True(t, success)
	assert.Equal(t, "v", v)
	assert.Equal(t, 0, e)

	_, e, success = bad.Get()
	assert.False(t, success)
	assert.Equal(t, 3, e)

	assert.True(t, ok.Value().IsSome())
	assert.True(t, ok.Cause().IsNone())
	assert.True(t, bad.Value().IsNone())
	assert.Equal(t, 3, bad.Cause().OrPanic("error value"))
}

func TestString(t *testing.T) {
	assert.Equal(t, `Ok("yay")`, Ok[string, int]("yay").String())
	assert.Equal(t, "Err(404)", Err[string](404).String())
	assert.Equal(t, "Err(boom)", Err[int](errors.New("boom")).String())
}

type closedErr struct {
	name string
}

func (e *closedErr) Error() string {
	return e.name + " is closed"
}

func TestOrPanicWithNilPointerError(t *testing.T) {
	r := Err[int, *closedErr](nil)

	assert.PanicsWithError(t, "lookup.\nCaused by: <nil>", func() {
		r.OrPanic("lookup")
	})
}
