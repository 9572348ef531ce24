package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/replicate/orpanic/fatal"
)

const terminationKindKey = attribute.Key("orpanic.termination.kind")

// RecordTermination adds an exception event for e to the span in ctx and
// marks the span as failed. It does nothing when ctx carries no recording
// span.
func RecordTermination(ctx context.Context, e *fatal.Error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{terminationKindKey.String(e.Kind.String())}
	if !e.Caller.IsZero() {
		attrs = append(attrs,
			semconv.CodeFunction(e.Caller.Function),
			semconv.CodeFilepath(e.Caller.File),
			semconv.CodeLineNumber(e.Caller.Line),
		)
	}

	span.RecordError(e, trace.WithAttributes(attrs...))
	span.SetStatus(codes.Error, e.Message)
}
