// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expectotel records expectation failures on OpenTelemetry spans.
//
// Each failure adds an [EventName] event to the span found in the
// handler's context, records the exception as an error and marks the span
// status as an error. Spans that are not recording are left alone.
package expectotel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"code.hybscloud.com/expect"
)

// EventName is the span event added for every failure.
const EventName = "expectation.failed"

// Attribute keys set on the event.
const (
	KeyKind       = attribute.Key("expectation.kind")
	KeyMessage    = attribute.Key("expectation.message")
	KeyCause      = attribute.Key("expectation.cause")
	KeyPanicStack = attribute.Key("expectation.panic_stack")
)

// StatusDescription is the span status description for failures.
const StatusDescription = "expectation failed"

// Handler is a continuing handler bound to the span of a context.
type Handler struct {
	ctx   context.Context
	attrs []attribute.KeyValue
}

// Record returns a handler recording failures on the span in ctx.
// attrs are added to every event, for example a component name.
// A nil ctx records nothing.
func Record(ctx context.Context, attrs ...attribute.KeyValue) *Handler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Handler{ctx: ctx, attrs: attrs}
}

// HandleFail implements [expect.ContinueHandler].
func (h *Handler) HandleFail(e expect.Exception) {
	RecordSpan(trace.SpanFromContext(h.ctx), e, h.attrs...)
}

// RecordAlso returns a callback for the also parameter of the built-in
// handlers that records on the span in ctx.
func RecordAlso(ctx context.Context, attrs ...attribute.KeyValue) func(expect.Exception) {
	return Record(ctx, attrs...).HandleFail
}

// RecordSpan records e on span.
func RecordSpan(span trace.Span, e expect.Exception, attrs ...attribute.KeyValue) {
	if span == nil || !span.IsRecording() {
		return
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs)+4)
	kvs = append(kvs,
		KeyKind.String(e.Kind().String()),
		KeyMessage.String(e.Message()),
	)
	if cause := e.Cause(); cause != nil {
		kvs = append(kvs, KeyCause.String(cause.Error()))
		var pe *expect.PanicError
		if errors.As(cause, &pe) && len(pe.Stack) > 0 {
			kvs = append(kvs, KeyPanicStack.String(string(pe.Stack)))
		}
	}
	kvs = append(kvs, attrs...)

	span.AddEvent(EventName, trace.WithAttributes(kvs...))
	span.RecordError(e)
	span.SetStatus(codes.Error, StatusDescription)
}
