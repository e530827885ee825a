package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedFile is the on-disk layout of a catalog snapshot. JSON is accepted
// as well since it is a subset of YAML.
type SeedFile struct {
	Categories []Category      `json:"categories" yaml:"categories"`
	Components []SeedComponent `json:"components" yaml:"components"`
}

// SeedComponent is a component that may reference its category by slug.
type SeedComponent struct {
	Component `yaml:",inline"`

	// Category is the slug of the owning category. It is resolved to
	// CategoryID when CategoryID is empty.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Seed is an immutable in-memory Provider.
type Seed struct {
	categories []Category
	byCategory map[string][]Component
	bySlug     map[string]Component
}

var _ Provider = (*Seed)(nil)

// NewSeed builds a Seed from records. Missing IDs are derived from slugs
// and zero component counts are filled in.
func NewSeed(categories []Category, components []Component) *Seed {
	s := &Seed{
		categories: make([]Category, len(categories)),
		byCategory: make(map[string][]Component),
		bySlug:     make(map[string]Component, len(components)),
	}

	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if c.ID == "" {
			c.ID = DeriveID("category", c.Slug)
		}
		s.categories[i] = c
		index[c.ID] = i
	}

	counts := make(map[string]int)
	for _, c := range components {
		if c.ID == "" {
			c.ID = DeriveID("component", c.Slug)
		}
		for i := range c.Variants {
			if c.Variants[i].ID == "" {
				c.Variants[i].ID = DeriveID("variant", c.Slug+"/"+c.Variants[i].Name)
			}
		}
		for i := range c.Documentation {
			if c.Documentation[i].ID == "" {
				c.Documentation[i].ID = DeriveID("doc", c.Slug+"/"+c.Documentation[i].Title)
			}
		}
		s.byCategory[c.CategoryID] = append(s.byCategory[c.CategoryID], c)
		s.bySlug[c.Slug] = c
		counts[c.CategoryID]++
	}

	for id, n := range counts {
		if i, ok := index[id]; ok && s.categories[i].ComponentCount == 0 {
			s.categories[i].ComponentCount = n
		}
	}
	return s
}

// ParseSeed decodes a YAML or JSON snapshot.
func ParseSeed(data []byte) (*Seed, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return f.Seed()
}

// LoadSeedFile reads and decodes a snapshot from disk.
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(data)
}

// DefaultSeed returns the embedded catalog.
func DefaultSeed() *Seed {
	s, err := ParseSeed(defaultSeed)
	if err != nil {
		panic("catalog: embedded seed is invalid: " + err.Error())
	}
	return s
}

// Seed resolves category references and builds the provider.
func (f SeedFile) Seed() (*Seed, error) {
	ids := make(map[string]string, len(f.Categories))
	for i, c := range f.Categories {
		if c.Slug == "" {
			return nil, fmt.Errorf("category %d has no slug", i)
		}
		if _, dup := ids[c.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		if c.ID == "" {
			c.ID = DeriveID("category", c.Slug)
			f.Categories[i] = c
		}
		ids[c.Slug] = c.ID
	}

	seen := make(map[string]bool, len(f.Components))
	components := make([]Component, 0, len(f.Components))
	for i, sc := range f.Components {
		c := sc.Component
		if c.Slug == "" {
			return nil, fmt.Errorf("component %d has no slug", i)
		}
		if seen[c.Slug] {
			return nil, fmt.Errorf("duplicate component slug %q", c.Slug)
		}
		seen[c.Slug] = true
		if c.CategoryID == "" {
			id, ok := ids[sc.Category]
			if !ok {
				return nil, fmt.Errorf("component %q references unknown category %q", c.Slug, sc.Category)
			}
			c.CategoryID = id
		}
		components = append(components, c)
	}
	return NewSeed(f.Categories, components), nil
}

// Categories implements Provider.
func (s *Seed) Categories(context.Context) ([]Category, error) {
	return slices.Clone(s.categories), nil
}

// ComponentsByCategory implements Provider.
func (s *Seed) ComponentsByCategory(_ context.Context, categoryID string) ([]Component, error) {
	return slices.Clone(s.byCategory[categoryID]), nil
}

// ComponentBySlug implements Provider.
func (s *Seed) ComponentBySlug(_ context.Context, slug string) (Component, error) {
	c, ok := s.bySlug[slug]
	if !ok {
		return Component{}, ErrNotFound
	}
	return c, nil
}

// Components returns every component grouped in category order.
func (s *Seed) Components() []Component {
	var out []Component
	for _, c := range s.categories {
		out = append(out, s.byCategory[c.ID]...)
	}
	return out
}

// File returns the seed as a snapshot suitable for re-encoding.
func (s *Seed) File() SeedFile {
	f := SeedFile{Categories: slices.Clone(s.categories)}
	for _, c := range s.Components() {
		f.Components = append(f.Components, SeedComponent{Component: c})
	}
	return f
}
