package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/gallery/internal/metrics"
)

func newRouter(mws ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(mws...)
	r.Get("/component/{slug}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "slug") == "boom" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	})
	return r
}

func TestRoutePattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			got = RoutePattern(req)
		})
	})
	r.Get("/category/{slug}", func(http.ResponseWriter, *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/category/actions", nil))
	if got != "/category/{slug}" {
		t.Errorf("pattern = %q", got)
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if got != unmatchedRoute {
		t.Errorf("unmatched pattern = %q", got)
	}
	if RoutePattern(httptest.NewRequest(http.MethodGet, "/", nil)) != unmatchedRoute {
		t.Error("requests outside chi should be unmatched")
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(reg))
	r := newRouter(Metrics(m))

	for _, path := range []string{"/component/button", "/component/dialog", "/component/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := counterValue(t, reg, "gallery_http_requests_total", map[string]string{"route": "/component/{slug}", "status": "200"}); got != 2 {
		t.Errorf("200 count = %v, want 2", got)
	}
	if got := counterValue(t, reg, "gallery_http_requests_total", map[string]string{"route": "/component/{slug}", "status": "500"}); got != 1 {
		t.Errorf("500 count = %v, want 1", got)
	}
}

func TestMetricsMiddlewareNil(t *testing.T) {
	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	if got := Metrics(nil)(h); got == nil {
		t.Fatal("nil metrics should pass the handler through")
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newRouter(chimw.RequestID, RequestLogger(logger))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/component/button", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/component/boom", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines: %q", len(lines), buf.String())
	}
	for _, want := range []string{"level=INFO", "status=200", "route=/component/{slug}", "request_id=", "bytes=2"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "level=ERROR") || !strings.Contains(lines[1], "status=500") {
		t.Errorf("error line = %q", lines[1])
	}
}

type recordedSpan struct {
	trace.Span
	mu     sync.Mutex
	name   string
	status codes.Code
	attrs  map[attribute.Key]attribute.Value
	ended  bool
}

func (s *recordedSpan) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
}

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordedSpan) End(...trace.SpanEndOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
}

type spanRecorder struct {
	noop.TracerProvider
	mu    sync.Mutex
	spans []*recordedSpan
}

func (p *spanRecorder) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{Tracer: noop.NewTracerProvider().Tracer(""), p: p}
}

type recordingTracer struct {
	trace.Tracer
	p *spanRecorder
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	ctx, inner := t.Tracer.Start(ctx, name, opts...)
	span := &recordedSpan{Span: inner, name: name, attrs: make(map[attribute.Key]attribute.Value)}
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, span)
	t.p.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

func TestOpenTelemetryMiddleware(t *testing.T) {
	tp := &spanRecorder{}
	var inHandler trace.Span
	r := chi.NewRouter()
	r.Use(OpenTelemetry(
		WithTracerProvider(tp),
		WithFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	))
	r.Get("/component/{slug}", func(w http.ResponseWriter, req *http.Request) {
		inHandler = trace.SpanFromContext(req.Context())
		if chi.URLParam(req, "slug") == "boom" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	})
	r.Get("/healthz", func(http.ResponseWriter, *http.Request) {})

	for _, path := range []string{"/component/button", "/component/boom", "/healthz"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if len(tp.spans) != 2 {
		t.Fatalf("got %d spans, want 2 (healthz filtered)", len(tp.spans))
	}
	ok, failed := tp.spans[0], tp.spans[1]
	if ok.name != "GET /component/{slug}" || ok.status != codes.Ok || !ok.ended {
		t.Errorf("ok span = %+v", ok)
	}
	if ok.attrs["http.response.status_code"].AsInt64() != 200 || ok.attrs["http.route"].AsString() != "/component/{slug}" {
		t.Errorf("ok span attrs = %v", ok.attrs)
	}
	if failed.status != codes.Error || failed.attrs["http.response.status_code"].AsInt64() != 503 {
		t.Errorf("failed span = %+v", failed)
	}
	if inHandler != trace.Span(failed) {
		t.Error("handler should see the request span in its context")
	}
}
