// Package middleware provides observability for the modal server.
//
// Metrics holds the Prometheus collectors: modal renders by size and
// position, dismissals by source, dispatched events and HTTP requests.
// Tracer wraps HTTP handlers and event dispatch in OpenTelemetry spans using
// the global tracer provider.
//
//	m := middleware.NewMetrics(middleware.WithNamespace("modal"))
//	tr := middleware.NewTracer()
//	r := chi.NewRouter()
//	r.Use(tr.HTTP, m.HTTP)
package middleware
