package assets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestBuildEmbedded(t *testing.T) {
	m, err := Build(Static)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := strings.Join(m.Names(), ",")
	if got != "gallery.css,gallery.js" {
		t.Errorf("Names() = %q", got)
	}
	for _, name := range []string{"gallery.css", "/gallery.js"} {
		if h, ok := m.Hash(name); !ok || len(h) != 16 {
			t.Errorf("Hash(%q) = %q, %v", name, h, ok)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	fsys := fstest.MapFS{"a.js": {Data: []byte("x")}}
	a, _ := Build(fsys)
	b, _ := Build(fsys)
	ha, _ := a.Hash("a.js")
	hb, _ := b.Hash("a.js")
	if ha != hb {
		t.Errorf("hash differs across builds: %q vs %q", ha, hb)
	}
	fsys["a.js"] = &fstest.MapFile{Data: []byte("y")}
	c, _ := Build(fsys)
	if hc, _ := c.Hash("a.js"); hc == ha {
		t.Error("hash did not change with content")
	}
}

func TestHandler(t *testing.T) {
	m, err := Build(Static)
	if err != nil {
		t.Fatal(err)
	}
	h := Handler(Static, m)

	t.Run("serves script", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery.js", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "ScrollIntoView") {
			t.Error("script body missing ScrollIntoView hook")
		}
		if rec.Header().Get("ETag") == "" {
			t.Error("missing ETag")
		}
	})

	t.Run("not modified", func(t *testing.T) {
		hash, _ := m.Hash("gallery.css")
		req := httptest.NewRequest(http.MethodGet, "/gallery.css", nil)
		req.Header.Set("If-None-Match", `"`+hash+`"`)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotModified {
			t.Errorf("status = %d, want 304", rec.Code)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/../go.mod", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
