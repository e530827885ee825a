// Package server wires the gallery HTTP surface: the HTML pages, the JSON
// mirror of catalog data, static assets, health, metrics and the cache
// invalidation webhook.
//
// Routes are mounted on a chi router behind request id, panic recovery,
// tracing, metrics and request logging middleware:
//
//	srv, err := server.New(cfg, server.Deps{
//	    Provider: client,
//	    Cache:    client,
//	    Sections: registry.New(showcase.Sections()),
//	    Pages:    registry.New(showcase.Pages()),
//	})
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
//
// In streaming mode a page whose data is not ready within the loading grace
// period is flushed with its loading skeleton first; the resolved content
// follows in a template the client script swaps into the content slot.
package server
