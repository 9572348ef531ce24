package telemetry

import (
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/replicate/orpanic/version"
)

func init() {
	otel.SetLogger(logr.New(newOtelSink(logger.With(zap.String("version", version.Version())))))
}

// otelSink is a logr.LogSink that writes opentelemetry-go's internal logging
// through zap, next to the termination logs of this module.
type otelSink struct {
	log *zap.SugaredLogger
}

func newOtelSink(l *zap.Logger) *otelSink {
	return &otelSink{log: l.Sugar()}
}

func (s *otelSink) Init(info logr.RuntimeInfo) {
	// +1 for this sink, +1 for opentelemetry-go's internal_logging.go
	s.log = s.log.WithOptions(zap.AddCallerSkip(info.CallDepth + 2))
}

func (s *otelSink) Enabled(level int) bool {
	return s.log.Desugar().Core().Enabled(otelLevel(level))
}

func (s *otelSink) Info(level int, msg string, keysAndValues ...any) {
	s.log.Logw(otelLevel(level), msg, keysAndValues...)
}

func (s *otelSink) Error(err error, msg string, keysAndValues ...any) {
	s.log.With(zap.Error(err)).Errorw(msg, keysAndValues...)
}

func (s *otelSink) WithValues(keysAndValues ...any) logr.LogSink {
	return &otelSink{log: s.log.With(keysAndValues...)}
}

func (s *otelSink) WithName(name string) logr.LogSink {
	return &otelSink{log: s.log.Named(name)}
}

// otelLevel maps opentelemetry-go verbosity to zap: V(1) and below are
// warnings, up to V(4) is info, anything noisier is debug.
func otelLevel(level int) zapcore.Level {
	switch {
	case level <= 1:
		return zapcore.WarnLevel
	case level <= 4:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
