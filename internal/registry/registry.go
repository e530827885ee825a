package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// Registry is an immutable slug to renderer table.
type Registry struct {
	entries map[string]vdom.Component
	slugs   []string
	digest  string
}

// Resolution pairs a component with its registry entry. Renderer is nil
// on a miss.
type Resolution struct {
	Component catalog.Component
	Renderer  vdom.Component
}

// Hit reports whether the component has a renderer.
func (r Resolution) Hit() bool {
	return r.Renderer != nil
}

// New copies entries into a new Registry. Nil renderers are dropped so a
// lookup never returns a hit that cannot render.
func New(entries map[string]vdom.Component) *Registry {
	r := &Registry{entries: make(map[string]vdom.Component, len(entries))}
	for slug, comp := range entries {
		if comp == nil {
			continue
		}
		r.entries[slug] = comp
	}
	r.slugs = slices.Sorted(maps.Keys(r.entries))

	h := sha256.New()
	for _, slug := range r.slugs {
		h.Write([]byte(slug))
		h.Write([]byte{0})
	}
	r.digest = hex.EncodeToString(h.Sum(nil))[:16]
	return r
}

// Lookup returns the renderer registered under slug.
func (r *Registry) Lookup(slug string) (vdom.Component, bool) {
	if r == nil {
		return nil, false
	}
	comp, ok := r.entries[slug]
	return comp, ok
}

// Has reports whether slug has a renderer.
func (r *Registry) Has(slug string) bool {
	_, ok := r.Lookup(slug)
	return ok
}

// Resolve pairs each component with its renderer, preserving input order.
func (r *Registry) Resolve(components []catalog.Component) []Resolution {
	out := make([]Resolution, len(components))
	for i, c := range components {
		out[i].Component = c
		out[i].Renderer, _ = r.Lookup(c.Slug)
	}
	return out
}

// Missing returns the slugs of components without a renderer, in input
// order and without duplicates.
func (r *Registry) Missing(components []catalog.Component) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, c := range components {
		if r.Has(c.Slug) || seen[c.Slug] {
			continue
		}
		seen[c.Slug] = true
		missing = append(missing, c.Slug)
	}
	return missing
}

// Slugs returns the registered slugs in sorted order. The slice is a copy.
func (r *Registry) Slugs() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.slugs)
}

// Len returns the number of registered slugs.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Digest is a short stable hash of the registered slug set, suitable as
// an ETag.
func (r *Registry) Digest() string {
	if r == nil {
		return ""
	}
	return r.digest
}
