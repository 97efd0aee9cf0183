package perf

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"localiser/internal/constants"
)

var spanSetupOnce sync.Once
var exporter = newSpanExporter()

// StartSpan opens an OpenTelemetry span on the process-local tracer. Spans
// are collected in memory and never leave the machine.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	spanSetupOnce.Do(func() {
		provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		otel.SetTracerProvider(provider)
	})

	return otel.Tracer(constants.AppName).Start(ctx, name)
}

// SpanSnapshot returns a copy of all spans recorded so far.
func SpanSnapshot() []sdktrace.ReadOnlySpan {
	return exporter.Snapshot()
}

func ResetSpansForTesting() {
	exporter.Reset()
}

type spanExporter struct {
	mu    sync.Mutex
	spans []sdktrace.ReadOnlySpan
}

func newSpanExporter() *spanExporter {
	return &spanExporter{
		spans: make([]sdktrace.ReadOnlySpan, 0),
	}
}

func (exporter *spanExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	exporter.spans = append(exporter.spans, spans...)
	return nil
}

func (exporter *spanExporter) Shutdown(context.Context) error {
	return nil
}

func (exporter *spanExporter) Reset() {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	exporter.spans = exporter.spans[:0]
}

func (exporter *spanExporter) Snapshot() []sdktrace.ReadOnlySpan {
	exporter.mu.Lock()
	defer exporter.mu.Unlock()

	out := make([]sdktrace.ReadOnlySpan, len(exporter.spans))
	copy(out, exporter.spans)
	return out
}
