package server

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	galleryerrors "github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/query"
)

// invalidateRequest is the webhook body. All drops every entry and
// ignores Keys.
type invalidateRequest struct {
	Keys []string `json:"keys"`
	All  bool     `json:"all"`
}

type invalidateResponse struct {
	Invalidated []string `json:"invalidated,omitempty"`
	All         bool     `json:"all,omitempty"`
}

const maxInvalidateBody = 64 << 10

func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	if s.deps.Cache == nil || s.cfg.Server.InvalidateToken == "" {
		s.handleNotFound(w, r)
		return
	}
	if !s.authorized(r) {
		s.writeError(w, galleryerrors.New("E231"))
		return
	}

	var req invalidateRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxInvalidateBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, galleryerrors.New("E232").Wrap(err))
		return
	}

	if req.All {
		if err := s.deps.Cache.InvalidateAll(r.Context()); err != nil {
			s.writeError(w, galleryerrors.FromError(err, "E210"))
			return
		}
		s.logger.Info("cache invalidated", "all", true)
		writeJSON(w, http.StatusOK, invalidateResponse{All: true})
		return
	}

	if len(req.Keys) == 0 {
		s.writeError(w, galleryerrors.New("E232").WithDetail("Either keys or all must be set."))
		return
	}
	for _, key := range req.Keys {
		if !query.ValidKey(key) {
			s.writeError(w, galleryerrors.New("E232").WithDetailf("Unknown cache key %q.", key))
			return
		}
	}
	if err := s.deps.Cache.Invalidate(r.Context(), req.Keys...); err != nil {
		s.writeError(w, galleryerrors.FromError(err, "E210"))
		return
	}
	s.logger.Info("cache invalidated", "keys", req.Keys)
	writeJSON(w, http.StatusOK, invalidateResponse{Invalidated: req.Keys})
}

// authorized accepts the token as a bearer credential or in the
// X-Gallery-Token header.
func (s *Server) authorized(r *http.Request) bool {
	token := r.Header.Get("X-Gallery-Token")
	if auth := r.Header.Get("Authorization"); token == "" && strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	}
	want := s.cfg.Server.InvalidateToken
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(want)) == 1
}
