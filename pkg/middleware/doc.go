// Package middleware provides net/http middleware for the gallery server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus request metrics middleware
//   - Structured request logging
//
// All middleware has the standard func(http.Handler) http.Handler shape
// and works with any router. Under chi, route labels use the matched
// pattern ("/component/{slug}") rather than the raw path, which keeps
// metric cardinality bounded.
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("gallery")))
//	r.Use(middleware.Metrics(m))
//	r.Use(middleware.RequestLogger(logger))
//
// # OpenTelemetry
//
// The tracer comes from the global provider unless WithTracerProvider is
// given. Incoming trace context is not extracted; each request starts a
// root server span. Handlers reach the span with
// trace.SpanFromContext(r.Context()), and provider calls made with the
// request context become its children.
//
// # Wrapped writers
//
// The middleware wraps the ResponseWriter with chi's WrapResponseWriter,
// which keeps http.Flusher available for streamed pages.
package middleware
