package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/anvil/internal/core/ports"
)

// InstrumentationName names the tracer used for task spans.
const InstrumentationName = "go.trai.ch/anvil"

// NewProvider creates a tracer provider that reports spans to logger through a Bridge.
// Additional processors receive the same spans.
func NewProvider(logger ports.Logger, processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	return sdktrace.NewTracerProvider(opts...)
}
