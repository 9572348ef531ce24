package telemetry

import (
	"errors"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/replicate/orpanic/fatal"
	"github.com/replicate/orpanic/logging"
	"github.com/replicate/orpanic/version"
)

func init() {
	otel.SetErrorHandler(ErrorHandler{})
}

// ErrorHandler receives errors raised inside opentelemetry-go, such as failed
// exports, and reports them to the log and to Sentry tagged with the build
// version. An error that wraps a termination also carries its kind and call
// site.
type ErrorHandler struct {
	// Hub receives the Sentry event. The current hub is used when nil.
	Hub *sentry.Hub
}

func (h ErrorHandler) Handle(err error) {
	v := version.Version()
	fields := []zap.Field{zap.Error(err), zap.String("version", v)}

	var term *fatal.Error
	if errors.As(err, &term) {
		fields = append(fields, logging.Termination(term)...)
	}

	// +1 for this wrapper, +3 for opentelemetry-go's internal error handling code
	logger.WithOptions(zap.AddCallerSkip(4)).Warn("opentelemetry error", fields...)

	hub := h.Hub
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "opentelemetry")
		scope.SetTag("version", v)
		if term != nil {
			scope.SetTag("termination.kind", term.Kind.String())
			scope.SetTag("termination.call_site", term.Caller.String())
		}
		hub.CaptureException(err)
	})
}
