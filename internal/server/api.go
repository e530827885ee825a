package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/gallery/internal/catalog"
	galleryerrors "github.com/vango-dev/gallery/internal/errors"
)

// apiComponent is a catalog component annotated with whether a standalone
// showcase is registered for it.
type apiComponent struct {
	catalog.Component
	HasShowcase bool `json:"has_showcase"`
}

type registryResponse struct {
	Digest   string   `json:"digest"`
	Sections []string `json:"sections"`
	Pages    []string `json:"pages"`
}

func (s *Server) annotate(components []catalog.Component) []apiComponent {
	out := make([]apiComponent, len(components))
	for i, c := range components {
		out[i] = apiComponent{Component: c, HasShowcase: s.deps.Pages.Has(c.Slug)}
	}
	return out
}

func (s *Server) handleAPICategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.deps.Provider.Categories(r.Context())
	if err != nil {
		s.writeError(w, galleryerrors.FromError(err, "E210"))
		return
	}
	if categories == nil {
		categories = []catalog.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleAPICategoryComponents(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	categories, err := s.deps.Provider.Categories(r.Context())
	if err != nil {
		s.writeError(w, galleryerrors.FromError(err, "E210"))
		return
	}
	category, ok := catalog.FindCategory(categories, slug)
	if !ok {
		s.writeError(w, galleryerrors.New("E200").WithDetailf("No category with slug %q.", slug))
		return
	}
	components, err := s.deps.Provider.ComponentsByCategory(r.Context(), category.ID)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		s.writeError(w, galleryerrors.FromError(err, "E210"))
		return
	}
	writeJSON(w, http.StatusOK, s.annotate(components))
}

func (s *Server) handleAPIComponent(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	component, err := s.deps.Provider.ComponentBySlug(r.Context(), slug)
	if errors.Is(err, catalog.ErrNotFound) {
		s.writeError(w, galleryerrors.New("E201").WithDetailf("No component with slug %q.", slug))
		return
	}
	if err != nil {
		s.writeError(w, galleryerrors.FromError(err, "E210"))
		return
	}
	writeJSON(w, http.StatusOK, s.annotate([]catalog.Component{component})[0])
}

func (s *Server) handleAPIRegistry(w http.ResponseWriter, r *http.Request) {
	etag := `"` + s.deps.Sections.Digest() + "-" + s.deps.Pages.Digest() + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, registryResponse{
		Digest:   s.deps.Pages.Digest(),
		Sections: s.deps.Sections.Slugs(),
		Pages:    s.deps.Pages.Slugs(),
	})
}

func (s *Server) writeError(w http.ResponseWriter, err *galleryerrors.GalleryError) {
	status := err.HTTPStatus()
	if status >= http.StatusInternalServerError {
		s.logger.Error("api error", "code", err.Code, "error", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(err.FormatJSON()))
	w.Write([]byte("\n"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}
