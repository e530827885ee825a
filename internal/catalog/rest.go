package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vango-dev/gallery/internal/errors"
)

// componentSelect embeds the variant and documentation relations.
const componentSelect = "*,variants(*),documentation(*)"

// REST reads the catalog from a PostgREST-style backend
// (GET {base}/rest/v1/{table}?select=...).
type REST struct {
	base   string
	apiKey string
	client *http.Client
}

var _ Provider = (*REST)(nil)

// RESTOption configures a REST provider.
type RESTOption func(*REST)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) RESTOption {
	return func(r *REST) {
		r.client = c
	}
}

// WithAPIKey sets the key sent in the apikey and Authorization headers.
func WithAPIKey(key string) RESTOption {
	return func(r *REST) {
		r.apiKey = key
	}
}

// NewREST creates a REST provider rooted at baseURL.
func NewREST(baseURL string, opts ...RESTOption) *REST {
	r := &REST{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Categories implements Provider.
func (r *REST) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := r.get(ctx, "categories", url.Values{"select": {"*"}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ComponentsByCategory implements Provider.
func (r *REST) ComponentsByCategory(ctx context.Context, categoryID string) ([]Component, error) {
	q := url.Values{
		"select":      {componentSelect},
		"category_id": {"eq." + categoryID},
	}
	var out []Component
	if err := r.get(ctx, "components", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ComponentBySlug implements Provider.
func (r *REST) ComponentBySlug(ctx context.Context, slug string) (Component, error) {
	q := url.Values{
		"select": {componentSelect},
		"slug":   {"eq." + slug},
		"limit":  {"1"},
	}
	var out []Component
	if err := r.get(ctx, "components", q, &out); err != nil {
		return Component{}, err
	}
	if len(out) == 0 {
		return Component{}, ErrNotFound
	}
	return out[0], nil
}

func (r *REST) get(ctx context.Context, table string, q url.Values, dst any) error {
	endpoint := r.base + "/rest/v1/" + table + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.New("E210").Wrap(err)
	}
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("apikey", r.apiKey)
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.New("E210").
			WithDetail("Could not reach the catalog backend: " + err.Error()).
			WithSuggestion("Check provider.url and network connectivity")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.New("E210").
			WithDetail(fmt.Sprintf("Catalog backend returned status %d for %s: %s",
				resp.StatusCode, table, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.New("E211").
			WithDetail("Could not decode " + table + ": " + err.Error())
	}
	return nil
}
