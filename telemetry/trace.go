package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/replicate/orpanic/version"
)

// Tracer fetches a tracer, applying a standard naming convention for use across
// services.
func Tracer(service string, component string, opts ...trace.TracerOption) trace.Tracer {
	return otel.Tracer(tracerName(service, component), append(opts, trace.WithInstrumentationVersion(version.Version()))...)
}

func tracerName(service, component string) string {
	return fmt.Sprintf("replicate/%s/%s", service, component)
}

func configureTracerProvider() {
	tp, err := CreateTracerProvider(context.Background())
	if err != nil {
		logger.Warn("failed to create tracer provider", zap.Error(err))
		return
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// CreateTracerProvider returns a tracer provider exporting over OTLP/HTTP. The
// exporter is configured by the standard OTEL_EXPORTER_OTLP_* variables.
func CreateTracerProvider(ctx context.Context, opts ...sdktrace.TracerProviderOption) (*sdktrace.TracerProvider, error) {
	exp, err := otlptrace.New(ctx, otlptracehttp.NewClient())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize trace exporter: %w", err)
	}

	opts = append(
		[]sdktrace.TracerProviderOption{
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(DefaultResource()),
		},
		opts...,
	)
	return sdktrace.NewTracerProvider(opts...), nil
}
