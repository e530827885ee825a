package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/gallery/internal/assets"
	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/config"
	"github.com/vango-dev/gallery/internal/metrics"
	"github.com/vango-dev/gallery/internal/pages"
	"github.com/vango-dev/gallery/internal/query"
	"github.com/vango-dev/gallery/internal/registry"
	"github.com/vango-dev/gallery/pkg/middleware"
	"github.com/vango-dev/gallery/pkg/render"
)

// Deps are the collaborators a Server is built from.
type Deps struct {
	// Provider serves catalog metadata, normally a *query.Client.
	Provider catalog.Provider

	// Cache receives invalidation webhook calls. Nil disables the
	// webhook.
	Cache query.Invalidator

	Sections *registry.Registry
	Pages    *registry.Registry

	Metrics        *metrics.Metrics
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// Server serves the gallery.
type Server struct {
	cfg      *config.Config
	deps     Deps
	resolver *pages.Resolver
	renderer render.RendererConfig
	manifest *assets.Manifest
	logger   *slog.Logger
	router   chi.Router

	httpServer *http.Server
}

// New builds a Server and its routes.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Provider == nil {
		return nil, errors.New("server: provider is required")
	}
	if deps.Sections == nil {
		deps.Sections = registry.New(nil)
	}
	if deps.Pages == nil {
		deps.Pages = registry.New(nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	manifest, err := assets.Build(assets.Static)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:  cfg,
		deps: deps,
		resolver: pages.NewResolver(deps.Provider, deps.Sections, deps.Pages,
			pages.WithLogger(deps.Logger),
			pages.WithMetrics(deps.Metrics),
		),
		renderer: render.RendererConfig{Pretty: cfg.Render.Pretty, AssetPath: "/static"},
		manifest: manifest,
		logger:   deps.Logger,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	otelOpts := []middleware.OTelOption{
		middleware.WithTracerName("github.com/vango-dev/gallery/internal/server"),
		middleware.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
		}),
	}
	if s.deps.TracerProvider != nil {
		otelOpts = append(otelOpts, middleware.WithTracerProvider(s.deps.TracerProvider))
	}
	r.Use(middleware.OpenTelemetry(otelOpts...))
	r.Use(middleware.Metrics(s.deps.Metrics))
	r.Use(middleware.RequestLogger(s.logger))

	r.Get("/", s.handleIndex)
	r.Get("/category/{slug}", s.handleCategory)
	r.Get("/component/{slug}", s.handleComponent)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleAPICategories)
		r.Get("/categories/{slug}/components", s.handleAPICategoryComponents)
		r.Get("/components/{slug}", s.handleAPIComponent)
		r.Get("/registry", s.handleAPIRegistry)
		r.Post("/cache/invalidate", s.handleInvalidate)
	})

	r.Handle("/static/*", http.StripPrefix("/static", assets.Handler(assets.Static, s.manifest)))
	r.Get("/healthz", s.handleHealth)
	if s.deps.Metrics != nil {
		r.Handle("/metrics", s.deps.Metrics.Handler())
	}
	r.NotFound(s.handleNotFound)
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout.Duration,
		ReadTimeout:       s.cfg.Server.ReadTimeout.Duration,
		WriteTimeout:      s.cfg.Server.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown stops accepting connections and waits for in-flight requests
// up to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := s.cfg.Server.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}
