package pages

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vango-dev/gallery/internal/catalog"
	galleryerrors "github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/metrics"
	"github.com/vango-dev/gallery/internal/registry"
)

// Resolver builds pages from catalog metadata and the showcase registries.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	provider catalog.Provider
	sections *registry.Registry
	pages    *registry.Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger for registry misses.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithMetrics records hit and miss counts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// NewResolver creates a Resolver. sections is consulted by category pages
// and pages by component pages.
func NewResolver(provider catalog.Provider, sections, pages *registry.Registry, opts ...Option) *Resolver {
	r := &Resolver{
		provider: provider,
		sections: sections,
		pages:    pages,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Categories returns every category for the index page.
func (r *Resolver) Categories(ctx context.Context) (IndexPage, error) {
	categories, err := r.provider.Categories(ctx)
	if err != nil {
		return IndexPage{}, providerError(err)
	}
	return IndexPage{Categories: categories}, nil
}

// Category resolves the category page for slug. An unknown slug yields a
// NotFound page and a nil error; err is non-nil only when the provider
// fails.
func (r *Resolver) Category(ctx context.Context, slug string) (CategoryPage, error) {
	page := CategoryPage{Slug: slug, State: NotFound}

	categories, err := r.provider.Categories(ctx)
	if err != nil {
		return page, providerError(err)
	}
	category, ok := catalog.FindCategory(categories, slug)
	if !ok {
		return page, nil
	}

	components, err := r.provider.ComponentsByCategory(ctx, category.ID)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return page, providerError(err)
	}

	page.State = Found
	page.Category = category
	page.Blocks = r.sections.Resolve(components)
	for _, b := range page.Blocks {
		r.metrics.Resolution("category", b.Hit())
		if !b.Hit() {
			r.logger.Debug("no section showcase", "category", slug, "component", b.Component.Slug)
		}
	}
	return page, nil
}

// Component resolves the component page for slug. An unknown slug yields
// a NotFound page and a nil error.
func (r *Resolver) Component(ctx context.Context, slug string) (ComponentPage, error) {
	page := ComponentPage{Slug: slug, State: NotFound}

	component, err := r.provider.ComponentBySlug(ctx, slug)
	if errors.Is(err, catalog.ErrNotFound) {
		return page, nil
	}
	if err != nil {
		return page, providerError(err)
	}

	page.State = Found
	page.Component = component
	page.Showcase, _ = r.pages.Lookup(component.Slug)
	r.metrics.Resolution("component", page.Showcase != nil)
	if page.Showcase == nil {
		r.logger.Debug("no page showcase", "component", slug)
	}

	// The breadcrumb degrades to Home / Component when the category
	// list cannot be fetched.
	if categories, err := r.provider.Categories(ctx); err == nil {
		for _, c := range categories {
			if c.ID == component.CategoryID {
				page.Category = &c
				break
			}
		}
	} else {
		r.logger.Warn("breadcrumb categories unavailable", "component", slug, "error", err)
	}
	return page, nil
}

func providerError(err error) error {
	return galleryerrors.FromError(err, "E210")
}
