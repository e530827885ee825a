package server

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	galleryerrors "github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/pages"
	"github.com/vango-dev/gallery/pkg/render"
	"github.com/vango-dev/gallery/pkg/vdom"
)

type resolved struct {
	page pages.Page
	err  error
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, nil, func(ctx context.Context) (pages.Page, error) {
		return s.resolver.Categories(ctx)
	})
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	s.servePage(w, r, pages.CategoryLoading(slug), func(ctx context.Context) (pages.Page, error) {
		return s.resolver.Category(ctx, slug)
	})
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	s.servePage(w, r, pages.ComponentLoading(slug), func(ctx context.Context) (pages.Page, error) {
		return s.resolver.Component(ctx, slug)
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, notFoundPage{})
}

// servePage resolves a page and writes it. With streaming enabled and a
// loading page available, a resolution slower than the loading grace
// period is preceded by the loading page; its status is then always 200.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, loading pages.Page, resolve func(context.Context) (pages.Page, error)) {
	if !s.cfg.Render.Streaming || loading == nil {
		page, err := resolve(r.Context())
		s.writePage(w, s.pageOrUnavailable(page, err))
		return
	}

	done := make(chan resolved, 1)
	go func() {
		page, err := resolve(r.Context())
		done <- resolved{page, err}
	}()

	grace := time.NewTimer(s.cfg.Render.LoadingGrace.Duration)
	defer grace.Stop()

	select {
	case res := <-done:
		s.writePage(w, s.pageOrUnavailable(res.page, res.err))
		return
	case <-r.Context().Done():
		return
	case <-grace.C:
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	sr := render.NewStreamingRenderer(w, s.renderer)
	doc := pages.Document(loading)
	if err := sr.Begin(doc); err != nil {
		return
	}
	sr.Write(doc.Body)

	select {
	case res := <-done:
		sr.Fill(pages.ContentSlot, s.pageOrUnavailable(res.page, res.err).Render())
	case <-r.Context().Done():
		return
	}
	if err := sr.End(doc); err != nil {
		s.logger.Debug("stream aborted", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) pageOrUnavailable(page pages.Page, err error) pages.Page {
	if err != nil {
		s.logger.Error("catalog unavailable", "error", err, "code", galleryerrors.Code(err))
		return pages.UnavailablePage{Err: err}
	}
	return page
}

// writePage renders the full document into a buffer so a render failure
// can still become a 500.
func (s *Server) writePage(w http.ResponseWriter, page pages.Page) {
	var buf bytes.Buffer
	if err := render.NewRenderer(s.renderer).RenderPage(&buf, pages.Document(page)); err != nil {
		gerr := galleryerrors.FromError(err, "E230")
		s.logger.Error("render failed", "error", err)
		http.Error(w, gerr.Message, gerr.HTTPStatus())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(page.Status())
	w.Write(buf.Bytes())
}

// notFoundPage is served for paths that match no route.
type notFoundPage struct{}

func (notFoundPage) Title() string { return "Page not found" }

func (notFoundPage) Status() int { return http.StatusNotFound }

func (notFoundPage) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Data("page", "not-found"),
		vdom.Class("py-24 text-center"),
		vdom.H1(vdom.Class("text-2xl font-semibold"), "Page not found"),
		vdom.P(vdom.Class("mt-2 text-muted-foreground"), vdom.A(vdom.Href("/"), "Browse all components")),
	)
}
