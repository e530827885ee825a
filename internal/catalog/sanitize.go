package catalog

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizing filters Doc.Content through an HTML policy before it leaves
// the provider layer.
type Sanitizing struct {
	next   Provider
	policy *bluemonday.Policy
}

var _ Provider = (*Sanitizing)(nil)

// NewSanitizing wraps next. A nil policy uses bluemonday.UGCPolicy.
func NewSanitizing(next Provider, policy *bluemonday.Policy) *Sanitizing {
	if policy == nil {
		policy = bluemonday.UGCPolicy()
	}
	return &Sanitizing{next: next, policy: policy}
}

// Categories implements Provider.
func (s *Sanitizing) Categories(ctx context.Context) ([]Category, error) {
	return s.next.Categories(ctx)
}

// ComponentsByCategory implements Provider.
func (s *Sanitizing) ComponentsByCategory(ctx context.Context, categoryID string) ([]Component, error) {
	out, err := s.next.ComponentsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = s.clean(out[i])
	}
	return out, nil
}

// ComponentBySlug implements Provider.
func (s *Sanitizing) ComponentBySlug(ctx context.Context, slug string) (Component, error) {
	c, err := s.next.ComponentBySlug(ctx, slug)
	if err != nil {
		return c, err
	}
	return s.clean(c), nil
}

// clean returns c with sanitized documentation. The input slice is not
// modified since providers may share it.
func (s *Sanitizing) clean(c Component) Component {
	if len(c.Documentation) == 0 {
		return c
	}
	docs := make([]Doc, len(c.Documentation))
	for i, d := range c.Documentation {
		d.Content = s.policy.Sanitize(d.Content)
		docs[i] = d
	}
	c.Documentation = docs
	return c
}
