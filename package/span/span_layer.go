package span

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "folderhero"

type ContextKey struct {
	Name string
}

var ContextKeySpan = ContextKey{
	Name: "folderhero.span",
}

type Layer struct {
	Name   string  `json:"name,omitempty"`
	Type   string  `json:"type,omitempty"`
	Caller *Caller `json:"caller,omitempty"`
}

func NewLayer(name string, typ string) *Layer {
	return &Layer{
		Name:   name,
		Type:   typ,
		Caller: NewCaller(),
	}
}

// With opens a span below the one carried by ctx, if any, and starts the
// matching trace span on the global tracer provider.
func (r *Layer) With(ctx context.Context) (*Span, context.Context) {
	parent, ok := ctx.Value(ContextKeySpan).(*Span)
	caller := NewCaller()
	name := caller.String()
	now := time.Now()

	var tracingSpan trace.Span
	ctx, tracingSpan = otel.Tracer(TracerName).Start(ctx, name)
	tracingSpan.SetAttributes(attribute.String("span.layer", fmt.Sprintf("%s/%s", r.Type, r.Name)))

	s := &Span{
		Name:      &name,
		Path:      []*string{},
		Layer:     r,
		Caller:    caller,
		Variables: make(map[string]any),
		Started:   &now,
		Ended:     nil,
		Children:  []*Span{},
		TraceSpan: tracingSpan,
	}
	if ok {
		s.Path = append(append([]*string{}, parent.Path...), parent.Name)
		parent.Children = append(parent.Children, s)
	}

	return s, context.WithValue(ctx, ContextKeySpan, s)
}

// FromContext returns the innermost span opened through With, or nil.
func FromContext(ctx context.Context) *Span {
	s, _ := ctx.Value(ContextKeySpan).(*Span)
	return s
}
