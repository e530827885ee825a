package catalog

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/vango-dev/gallery/internal/catalog"

// Traced wraps a Provider with OpenTelemetry spans.
type Traced struct {
	next   Provider
	tracer trace.Tracer
	kind   string
}

var _ Provider = (*Traced)(nil)

// TracedOption configures a Traced provider.
type TracedOption func(*tracedConfig)

type tracedConfig struct {
	provider trace.TracerProvider
	kind     string
}

// WithTracerProvider sets the tracer provider. Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) TracedOption {
	return func(c *tracedConfig) {
		c.provider = tp
	}
}

// WithProviderKind records the provider kind as a span attribute.
func WithProviderKind(kind string) TracedOption {
	return func(c *tracedConfig) {
		c.kind = kind
	}
}

// NewTraced wraps next.
func NewTraced(next Provider, opts ...TracedOption) *Traced {
	cfg := tracedConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tp := cfg.provider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Traced{next: next, tracer: tp.Tracer(tracerName), kind: cfg.kind}
}

func (t *Traced) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if t.kind != "" {
		attrs = append(attrs, attribute.String("catalog.provider", t.kind))
	}
	return t.tracer.Start(ctx, "catalog."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func finish(span trace.Span, err error) {
	if err != nil && err != ErrNotFound {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// Categories implements Provider.
func (t *Traced) Categories(ctx context.Context) ([]Category, error) {
	ctx, span := t.start(ctx, "Categories")
	out, err := t.next.Categories(ctx)
	span.SetAttributes(attribute.Int("catalog.count", len(out)))
	finish(span, err)
	return out, err
}

// ComponentsByCategory implements Provider.
func (t *Traced) ComponentsByCategory(ctx context.Context, categoryID string) ([]Component, error) {
	ctx, span := t.start(ctx, "ComponentsByCategory", attribute.String("catalog.category_id", categoryID))
	out, err := t.next.ComponentsByCategory(ctx, categoryID)
	span.SetAttributes(attribute.Int("catalog.count", len(out)))
	finish(span, err)
	return out, err
}

// ComponentBySlug implements Provider.
func (t *Traced) ComponentBySlug(ctx context.Context, slug string) (Component, error) {
	ctx, span := t.start(ctx, "ComponentBySlug", attribute.String("catalog.slug", slug))
	out, err := t.next.ComponentBySlug(ctx, slug)
	span.SetAttributes(attribute.Bool("catalog.found", err == nil))
	finish(span, err)
	return out, err
}
