package query

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/metrics"
)

// ErrClosed is returned by a Client after Close.
var ErrClosed = errors.New("query: client closed")

// Client caches provider results in a Store.
type Client struct {
	provider catalog.Provider
	store    Store
	ttl      time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics

	group singleflight.Group

	// gen advances on every invalidation. A fetch that started under an
	// older generation does not write its result.
	gen atomic.Uint64

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

var _ catalog.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithTTL sets how long results stay cached. Zero uses the store default.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.ttl = ttl
	}
}

// WithFetchTimeout bounds a detached provider call. Default: 10 seconds.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics records cache hits and misses.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a Client in front of provider. A nil store uses an
// in-memory store with a five minute lifetime.
func New(provider catalog.Provider, store Store, opts ...Option) *Client {
	if store == nil {
		store = NewMemoryStore(5*time.Minute, 10*time.Minute)
	}
	c := &Client{
		provider: provider,
		store:    store,
		timeout:  10 * time.Second,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "query")
	return c
}

// Categories implements catalog.Provider.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	return fetch(ctx, c, KeyCategories, c.provider.Categories)
}

// ComponentsByCategory implements catalog.Provider.
func (c *Client) ComponentsByCategory(ctx context.Context, categoryID string) ([]catalog.Component, error) {
	return fetch(ctx, c, CategoryKey(categoryID), func(ctx context.Context) ([]catalog.Component, error) {
		return c.provider.ComponentsByCategory(ctx, categoryID)
	})
}

// ComponentBySlug implements catalog.Provider. Not-found results are not
// cached.
func (c *Client) ComponentBySlug(ctx context.Context, slug string) (catalog.Component, error) {
	return fetch(ctx, c, ComponentKey(slug), func(ctx context.Context) (catalog.Component, error) {
		return c.provider.ComponentBySlug(ctx, slug)
	})
}

// Invalidate drops keys from the cache.
func (c *Client) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	c.gen.Add(1)
	for _, k := range keys {
		c.group.Forget(k)
	}
	c.logger.Debug("invalidate", "keys", keys)
	return c.store.Delete(ctx, keys...)
}

// InvalidateAll drops every cached entry.
func (c *Client) InvalidateAll(ctx context.Context) error {
	c.gen.Add(1)
	c.logger.Debug("invalidate all")
	return c.store.Clear(ctx)
}

// Close waits for in-flight fetches and closes the store. Calls after the
// first return nil.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.inflight.Wait()
	return c.store.Close()
}

// begin registers an in-flight fetch. It returns false once closed.
func (c *Client) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// fetch serves key from the store or loads it through the provider. The
// load runs on a context detached from ctx; if ctx ends first the caller
// gets ctx.Err() and the load completes in the background.
func fetch[T any](ctx context.Context, c *Client, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if c.isClosed() {
		return zero, ErrClosed
	}

	if data, ok, err := c.store.Get(ctx, key); err != nil {
		c.logger.Warn("cache read failed", "key", key, "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			c.metrics.CacheLookup(true)
			return v, nil
		}
		c.logger.Warn("cache entry undecodable", "key", key)
	}
	c.metrics.CacheLookup(false)

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if !c.begin() {
			return zero, ErrClosed
		}
		defer c.inflight.Done()

		fctx := detached
		if c.timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(detached, c.timeout)
			defer cancel()
		}

		gen := c.gen.Load()
		start := time.Now()
		v, err := load(fctx)
		if err != nil {
			if !errors.Is(err, catalog.ErrNotFound) {
				c.metrics.FetchError()
				c.logger.Warn("fetch failed", "key", key, "error", err, "duration", time.Since(start))
			}
			return v, err
		}

		if c.gen.Load() == gen {
			data, err := json.Marshal(v)
			if err == nil {
				err = c.store.Set(fctx, key, data, c.ttl)
			}
			if err != nil {
				c.logger.Warn("cache write failed", "key", key, "error", err)
			}
		}
		c.logger.Debug("fetched", "key", key, "duration", time.Since(start))
		return v, nil
	})

	select {
	case res := <-ch:
		v, _ := res.Val.(T)
		return v, res.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
