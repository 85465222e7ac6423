// Package context carries per-request identifiers through context.Context.
package context

import (
	"context"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Trace identifies one API request. TraceID correlates log lines and
// storage spans, RequestID is unique to this request.
type Trace struct {
	TraceID   string
	RequestID string
}

type traceKey struct{}

// WithTrace attaches trace identifiers to ctx.
func WithTrace(ctx context.Context, t *Trace) context.Context {
	return context.WithValue(ctx, traceKey{}, t)
}

// GetTrace returns the attached trace, or nil when ctx carries none.
func GetTrace(ctx context.Context) *Trace {
	if t, ok := ctx.Value(traceKey{}).(*Trace); ok {
		return t
	}
	return nil
}

// TraceID resolves a trace identifier for ctx: the attached trace if
// present, then a recording OpenTelemetry span, then a fresh UUID.
func TraceID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.TraceID
	}
	if sc := oteltrace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return uuid.NewString()
}

// RequestID returns the request identifier for ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}
