package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/replicate/orpanic/fatal"
)

func TestConfigureLevel(t *testing.T) {
	testcases := []struct {
		env      string
		set      bool
		expected zapcore.Level
	}{
		// Default level is INFO
		{set: false, expected: zapcore.InfoLevel},
		// Unparseable level => INFO
		{env: "garbage", set: true, expected: zapcore.InfoLevel},
		{env: "warning", set: true, expected: zapcore.WarnLevel},
		{env: "WARN", set: true, expected: zapcore.WarnLevel},
		{env: "error", set: true, expected: zapcore.ErrorLevel},
		{env: "debug", set: true, expected: zapcore.DebugLevel},
	}

	for _, tc := range testcases {
		t.Run(tc.env, func(t *testing.T) {
			if tc.set {
				t.Setenv("LOG_LEVEL", tc.env)
			}
			config := NewConfig()
			assert.Equal(t, tc.expected, config.Level.Level())
		})
	}
}

func TestConfigureFormat(t *testing.T) {
	// Default is production, i.e. JSON output
	config := NewConfig()
	assert.Equal(t, "json", config.Encoding)
	assert.Equal(t, []string{"stdout"}, config.OutputPaths)

	// Unknown format => JSON output
	t.Setenv("LOG_FORMAT", "yaml")
	config = NewConfig()
	assert.Equal(t, "json", config.Encoding)

	t.Setenv("LOG_FORMAT", "development")
	config = NewConfig()
	assert.Equal(t, "console", config.Encoding)
	assert.Equal(t, []string{"stderr"}, config.OutputPaths)
	assert.Equal(t, zapcore.DebugLevel, config.Level.Level())
}

func TestTerminationFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	cause := errors.New("disk full")
	e := &fatal.Error{
		Kind:    fatal.KindFailure,
		Message: "write snapshot.\nCaused by: disk full",
		Cause:   cause,
		Caller:  fatal.Frame{Function: "main.main", File: "/src/main.go", Line: 12},
	}

	log.Error(e.Message, Termination(e)...)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "failure", fields["kind"])
	assert.Equal(t, "disk full", fields["cause"])
	site, ok := fields["call_site"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "main.main", site["function"])
	assert.Equal(t, "/src/main.go", site["file"])
	assert.EqualValues(t, 12, site["line"])
}

func TestTerminationFieldsWithoutErrorCause(t *testing.T) {
	fields := Termination(&fatal.Error{Kind: fatal.KindFailure, Cause: 404})

	assert.Len(t, fields, 2)
}

func TestContextFields(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetFields(ctx))

	ctx1 := AddFields(ctx, zap.String("a", "1"))
	ctx2 := AddFields(ctx1, zap.String("b", "2"))
	ctx3 := AddFields(ctx1, zap.String("c", "3"))

	assert.Len(t, GetFields(ctx1), 1)
	assert.Equal(t, "b", GetFields(ctx2)[1].Key)
	assert.Equal(t, "c", GetFields(ctx3)[1].Key)
}
