package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vango-dev/gallery/internal/errors"
)

func newRESTServer(t *testing.T, handler http.HandlerFunc) *REST {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewREST(srv.URL+"/", WithAPIKey("anon"), WithHTTPClient(srv.Client()))
}

func TestRESTCategories(t *testing.T) {
	p := newRESTServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/categories" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon" || r.Header.Get("Authorization") != "Bearer anon" {
			t.Errorf("missing auth headers: %v", r.Header)
		}
		w.Write([]byte(`[{"id":"c1","slug":"actions","name":"Actions","component_count":2,"is_experimental":true}]`))
	})

	cats, err := p.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0].Slug != "actions" || cats[0].ComponentCount != 2 || !cats[0].IsExperimental {
		t.Errorf("cats = %+v", cats)
	}
}

func TestRESTComponentsByCategory(t *testing.T) {
	p := newRESTServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("category_id") != "eq.c1" {
			t.Errorf("category_id = %q", q.Get("category_id"))
		}
		if q.Get("select") != componentSelect {
			t.Errorf("select = %q", q.Get("select"))
		}
		w.Write([]byte(`[
			{"id":"b","slug":"button","status":"stable","category_id":"c1",
			 "variants":[{"id":"v1","name":"Default","code_example":"<Button />","props":{"size":"sm"}}]},
			{"id":"a","slug":"alert","status":"review","category_id":"c1"}
		]`))
	})

	comps, err := p.ComponentsByCategory(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ComponentsByCategory: %v", err)
	}
	if len(comps) != 2 || comps[0].Slug != "button" || comps[1].Slug != "alert" {
		t.Fatalf("comps = %+v", comps)
	}
	if comps[0].Variants[0].CodeExample != "<Button />" || comps[0].Variants[0].Props["size"] != "sm" {
		t.Errorf("variant = %+v", comps[0].Variants[0])
	}
}

func TestRESTComponentBySlugNotFound(t *testing.T) {
	p := newRESTServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	if _, err := p.ComponentBySlug(context.Background(), "widget-42"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRESTErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		code    string
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}, "E210"},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"a list"`))
		}, "E211"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newRESTServer(t, tt.handler)
			_, err := p.Categories(context.Background())
			if errors.Code(err) != tt.code {
				t.Errorf("code = %q, want %q (%v)", errors.Code(err), tt.code, err)
			}
		})
	}
}

func TestRESTUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewREST(url).Categories(context.Background())
	if errors.Code(err) != "E210" {
		t.Errorf("code = %q, want E210", errors.Code(err))
	}
}
