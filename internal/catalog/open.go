package catalog

import (
	"context"
	"net/http"

	"github.com/vango-dev/gallery/internal/config"
	"github.com/vango-dev/gallery/internal/errors"
)

// Open builds the provider selected by cfg, wrapped with tracing and, when
// cfg.Sanitize is set, documentation sanitizing. The returned function
// releases the provider's connections.
func Open(ctx context.Context, cfg config.ProviderConfig) (Provider, func() error, error) {
	noop := func() error { return nil }

	var (
		p     Provider
		closer = noop
	)
	switch cfg.Kind {
	case config.ProviderSeed:
		if cfg.SeedFile == "" {
			p = DefaultSeed()
			break
		}
		seed, err := LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, nil, errors.New("E121").
				WithDetail("provider.seedFile could not be loaded").
				Wrap(err)
		}
		p = seed

	case config.ProviderREST:
		p = NewREST(cfg.URL,
			WithAPIKey(cfg.APIKey),
			WithHTTPClient(&http.Client{Timeout: cfg.Timeout.Duration}),
		)

	case config.ProviderSQL:
		db, err := OpenSQL(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, errors.New("E210").Wrap(err)
		}
		p, closer = db, db.Close

	case config.ProviderMongo:
		m, err := ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, errors.New("E210").Wrap(err)
		}
		p = m
		closer = func() error { return m.Close(context.Background()) }

	case config.ProviderS3:
		client, err := NewS3Client(ctx, cfg.Region, cfg.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		p = NewS3Snapshot(client, cfg.Bucket, cfg.Key)

	default:
		return nil, nil, errors.New("E122").WithDetailf("provider.kind %q is not supported", cfg.Kind)
	}

	if cfg.Sanitize {
		p = NewSanitizing(p, nil)
	}
	return NewTraced(p, WithProviderKind(cfg.Kind)), closer, nil
}
