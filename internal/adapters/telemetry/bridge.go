package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/anvil/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by logging span boundaries at debug level.
type Bridge struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// NewBridge returns a Bridge that logs to logger.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(fmt.Sprintf("span %s started", s.Name()))
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "task failed"
		}
		b.logger.Debug(fmt.Sprintf("span %s failed after %v: %s", s.Name(), elapsed, desc))
		return
	}
	b.logger.Debug(fmt.Sprintf("span %s finished in %v", s.Name(), elapsed))
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}
