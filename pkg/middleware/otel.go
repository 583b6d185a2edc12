package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "vango-modal"

// TracerConfig configures the OpenTelemetry tracer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "vango-modal").
	TracerName string

	// Provider is the tracer provider. Defaults to the global provider.
	Provider trace.TracerProvider
}

// TracerOption configures the OpenTelemetry tracer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracerOption {
	return func(c *TracerConfig) {
		c.Provider = tp
	}
}

// Tracer creates spans for HTTP requests and dispatched events.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer resolves a tracer from the configured provider.
//
// Configure the global provider in main() before starting the server:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	provider := config.Provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Tracer{tracer: provider.Tracer(config.TracerName)}
}

// HTTP is chi-compatible middleware that wraps each request in a server span
// and stores the span in the request context.
func (t *Tracer) HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := t.tracer.Start(r.Context(), "modal "+r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}

// TraceEvent runs fn inside a span describing one client event.
// Errors returned by fn are recorded on the span and passed through.
func (t *Tracer) TraceEvent(ctx context.Context, sessionID, eventType, targetHID string, fn func(ctx context.Context) error) error {
	ctx, span := t.tracer.Start(ctx, "modal."+eventType,
		trace.WithAttributes(
			attribute.String("modal.session_id", sessionID),
			attribute.String("modal.event_type", eventType),
			attribute.String("modal.event_target", targetHID),
		),
	)
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return err
}

// SpanFromContext returns the current span, which is a no-op span when none
// was started.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
