// Package telemetry configures OpenTelemetry tracing for programs built on
// this module and records terminations on the active span.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/replicate/orpanic/logging"
)

var logger = logging.New("telemetry")

func init() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		logger.Debug("traces will not be exported via OTLP (OTEL_EXPORTER_OTLP_ENDPOINT is not set)")
		return
	}

	configureTracerProvider()
}

// Shutdown flushes and stops the global tracer provider, if this package
// installed one.
func Shutdown(ctx context.Context) error {
	if tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); ok && tp != nil {
		if err := tp.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
