// Package telemetry provides tracing instrumentation for report runs.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/strawgate/runreport"

// Tracer returns the process tracer. With no SDK installed this is the
// otel no-op implementation, so instrumented paths cost nothing.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartParseSpan starts a span for parsing one log file.
func StartParseSpan(ctx context.Context, engine, path string) (context.Context, trace.Span) {
	ctx, span := Tracer().Start(ctx, "report.parse")
	span.SetAttributes(
		attribute.String("report.engine", engine),
		attribute.String("report.path", path),
	)
	return ctx, span
}

// EndParseSpan ends a parse span with the entry count.
func EndParseSpan(span trace.Span, entries int, err error) {
	span.SetAttributes(attribute.Int("report.entries", entries))
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}

// StartRenderSpan starts a span for rendering one report.
func StartRenderSpan(ctx context.Context, format string) (context.Context, trace.Span) {
	ctx, span := Tracer().Start(ctx, "report.render")
	span.SetAttributes(attribute.String("report.format", format))
	return ctx, span
}

// EndRenderSpan ends a render span with output size info.
func EndRenderSpan(span trace.Span, bytes int, truncated bool) {
	span.SetAttributes(
		attribute.Int("report.bytes", bytes),
		attribute.Bool("report.truncated", truncated),
	)
	span.End()
}
