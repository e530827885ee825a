package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/config"
	"github.com/vango-dev/gallery/internal/metrics"
	"github.com/vango-dev/gallery/internal/query"
	"github.com/vango-dev/gallery/internal/registry"
	"github.com/vango-dev/gallery/internal/showcase"
)

// app is the wired application: provider, query cache and registries.
type app struct {
	metrics  *metrics.Metrics
	client   *query.Client
	sections *registry.Registry
	pages    *registry.Registry

	closeProvider func() error
}

func (c *cli) newApp(ctx context.Context) (*app, error) {
	provider, closeProvider, err := catalog.Open(ctx, c.cfg.Provider)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	store, err := newStore(c.cfg.Cache)
	if err != nil {
		closeProvider()
		return nil, err
	}
	client := query.New(provider, store,
		query.WithTTL(c.cfg.Cache.TTL.Duration),
		query.WithFetchTimeout(c.cfg.Provider.Timeout.Duration),
		query.WithLogger(c.logger),
		query.WithMetrics(m),
	)

	return &app{
		metrics:       m,
		client:        client,
		sections:      registry.New(showcase.Sections()),
		pages:         registry.New(showcase.Pages()),
		closeProvider: closeProvider,
	}, nil
}

func newStore(cfg config.CacheConfig) (query.Store, error) {
	switch cfg.Store {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return query.NewRedisStore(rdb,
			query.WithRedisPrefix(cfg.KeyPrefix),
			query.WithRedisTTL(cfg.TTL.Duration),
		), nil
	default:
		return query.NewMemoryStore(cfg.TTL.Duration, cfg.CleanupInterval.Duration), nil
	}
}

// subscriber returns the realtime invalidation subscriber, or nil when
// realtime is disabled.
func (c *cli) subscriber(a *app) *query.Subscriber {
	rt := c.cfg.Realtime
	if !rt.Enabled {
		return nil
	}
	opts := []query.SubscriberOption{
		query.WithBackoff(rt.Backoff.Duration, rt.MaxBackoff.Duration),
		query.WithSubscriberLogger(c.logger),
		query.WithSubscriberMetrics(a.metrics),
	}
	if key := c.cfg.Provider.APIKey; key != "" {
		opts = append(opts, query.WithHeader(http.Header{"apikey": []string{key}}))
	}
	return query.NewSubscriber(rt.URL, a.client, opts...)
}

// components lists every catalog component, in category order.
func (a *app) components(ctx context.Context) ([]catalog.Component, error) {
	categories, err := a.client.Categories(ctx)
	if err != nil {
		return nil, err
	}
	var all []catalog.Component
	for _, cat := range categories {
		cs, err := a.client.ComponentsByCategory(ctx, cat.ID)
		if err != nil && !errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		all = append(all, cs...)
	}
	return all, nil
}

func (a *app) Close() error {
	return errors.Join(a.client.Close(), a.closeProvider())
}
