// Package registry maps component slugs to their renderers.
//
// A Registry is built once at startup from a static table and never
// changes afterwards, so it is safe for concurrent reads without locking.
// Lookups are exact and case-sensitive: "button" and "Button" are
// different slugs, and no trimming or aliasing is applied.
//
// A miss is not an error. Pages render a placeholder card (section
// registries) or a generic detail view (page registries) instead; Missing
// reports the gap so it can be logged or checked in CI:
//
//	reg := registry.New(showcase.Sections())
//	if missing := reg.Missing(components); len(missing) > 0 {
//	    slog.Warn("components without showcase", "slugs", missing)
//	}
package registry
