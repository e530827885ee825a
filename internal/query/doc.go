// Package query is the metadata cache that sits between pages and a
// catalog.Provider.
//
// A Client is created once per application and passed to the pages that
// need it. Its lifecycle is explicit: entries are populated on first
// fetch, dropped by Invalidate or InvalidateAll (usually driven by a
// realtime Subscriber or the invalidation webhook), and released by Close.
//
// Fetches run detached from the caller's context. A caller that gives up
// abandons the fetch rather than cancelling it, and the result still lands
// in the cache for the next request. Concurrent requests for the same key
// share one provider call.
//
// Client implements catalog.Provider, so it can be dropped in anywhere a
// provider is expected.
package query
