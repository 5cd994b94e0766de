// Package telemetry traces task executions with OpenTelemetry.
package telemetry

import (
	"context"
	"reflect"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/anvil/internal/core/ports"
)

// Namespace is the attribute namespace whose values are copied onto task spans.
const Namespace = "trace"

// Tracing is an aspect that wraps every task execution in a span.
// Attributes the element declares in the trace namespace become span attributes.
type Tracing struct {
	tracer trace.Tracer

	mu       sync.Mutex
	elements map[ports.Component]ports.ElementView
}

var _ ports.Aspect = (*Tracing)(nil)

// NewTracing creates the aspect on top of tracer.
func NewTracing(tracer trace.Tracer) *Tracing {
	return &Tracing{
		tracer:   tracer,
		elements: make(map[ports.Component]ports.ElementView),
	}
}

type span struct {
	span  trace.Span
	lines int
}

// PreCreate keeps the current instance.
func (t *Tracing) PreCreate(ports.Component, ports.ElementView) ports.Component {
	return nil
}

// PostCreate remembers which element instance was created for.
func (t *Tracing) PostCreate(instance ports.Component, el ports.ElementView) ports.Component {
	if el == nil || !reflect.TypeOf(instance).Comparable() {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.elements[instance] = el
	return nil
}

// PreExecute starts the span of task.
func (t *Tracing) PreExecute(ctx context.Context, task ports.Task, scoped map[string]string) any {
	t.mu.Lock()
	el, ok := t.elements[task]
	delete(t.elements, task)
	t.mu.Unlock()

	name := "task"
	var attrs []attribute.KeyValue
	if ok {
		name = el.Name()
		attrs = append(attrs, attribute.String("anvil.location", el.Location()))
	}
	for k, v := range scoped {
		attrs = append(attrs, attribute.String(k, v))
	}

	_, s := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return &span{span: s}
}

// PostExecute ends the span, recording failure without changing it.
func (t *Tracing) PostExecute(_ context.Context, scope any, failure error) error {
	s := scope.(*span)
	s.span.SetAttributes(attribute.Int("anvil.output.lines", s.lines))
	if failure != nil {
		s.span.RecordError(failure)
		s.span.SetStatus(codes.Error, failure.Error())
	}
	s.span.End()
	return failure
}

// TaskOutput adds the line as a span event and forwards it.
func (t *Tracing) TaskOutput(scope any, line string) (string, bool) {
	return t.event(scope, "stdout", line), true
}

// TaskError adds the line as a span event and forwards it.
func (t *Tracing) TaskError(scope any, line string) (string, bool) {
	return t.event(scope, "stderr", line), true
}

func (t *Tracing) event(scope any, stream, line string) string {
	s := scope.(*span)
	s.lines++
	s.span.AddEvent(stream, trace.WithAttributes(attribute.String("line", line)))
	return line
}
