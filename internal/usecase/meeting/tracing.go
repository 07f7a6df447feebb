package meeting

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of pipeline spans
const TracerName = "meeting-recap/pipeline"

// Span names
const (
	SpanRun       = "pipeline.run"
	SpanExtractor = "pipeline.extractor"
)

// Span attribute keys
const (
	AttrFormat      = "transcript.format"
	AttrHint        = "transcript.hint"
	AttrParsed      = "transcript.parsed"
	AttrTurns       = "transcript.turns"
	AttrStage       = "pipeline.stage"
	AttrExtractor   = "pipeline.extractor"
	AttrInputBytes  = "transcript.bytes"
	AttrActionItems = "record.action_items"
)

func tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// endRunSpan annotates the run span with the outcome and ends it
func endRunSpan(span trace.Span, out Outcome) {
	span.SetAttributes(
		attribute.String(AttrStage, string(out.Stage)),
		attribute.String(AttrFormat, out.Format.String()),
		attribute.Bool(AttrParsed, out.Parsed),
		attribute.Int(AttrTurns, out.Turns),
		attribute.Int(AttrActionItems, len(out.Record.ActionItems)),
	)
	if out.Err != nil {
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, out.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func startExtractorSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer().Start(ctx, SpanExtractor,
		trace.WithAttributes(attribute.String(AttrExtractor, name)),
	)
}
