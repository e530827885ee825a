package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a category or component slug has no record.
var ErrNotFound = errors.New("catalog: not found")

// Status is the lifecycle state of a component.
type Status string

const (
	StatusStable     Status = "stable"
	StatusReview     Status = "review"
	StatusDeprecated Status = "deprecated"
	StatusDraft      Status = "draft"
)

// Category groups related components.
type Category struct {
	ID             string `json:"id" yaml:"id" bson:"id"`
	Slug           string `json:"slug" yaml:"slug" bson:"slug"`
	Name           string `json:"name" yaml:"name" bson:"name"`
	Description    string `json:"description" yaml:"description" bson:"description"`
	IsExperimental bool   `json:"is_experimental" yaml:"is_experimental" bson:"is_experimental"`
	ComponentCount int    `json:"component_count" yaml:"component_count" bson:"component_count"`
}

// Component is a single catalog entry. Status values outside the known set
// are carried through unchanged.
type Component struct {
	ID             string    `json:"id" yaml:"id" bson:"id"`
	Slug           string    `json:"slug" yaml:"slug" bson:"slug"`
	Name           string    `json:"name" yaml:"name" bson:"name"`
	Description    string    `json:"description" yaml:"description" bson:"description"`
	Status         Status    `json:"status" yaml:"status" bson:"status"`
	IsExperimental bool      `json:"is_experimental" yaml:"is_experimental" bson:"is_experimental"`
	CategoryID     string    `json:"category_id" yaml:"category_id" bson:"category_id"`
	Variants       []Variant `json:"variants,omitempty" yaml:"variants,omitempty" bson:"variants,omitempty"`
	Documentation  []Doc     `json:"documentation,omitempty" yaml:"documentation,omitempty" bson:"documentation,omitempty"`
}

// Variant is one configuration of a component.
type Variant struct {
	ID          string         `json:"id" yaml:"id" bson:"id"`
	Name        string         `json:"name" yaml:"name" bson:"name"`
	CodeExample string         `json:"code_example,omitempty" yaml:"code_example,omitempty" bson:"code_example,omitempty"`
	Props       map[string]any `json:"props,omitempty" yaml:"props,omitempty" bson:"props,omitempty"`
}

// Doc is a block of documentation. Content is HTML.
type Doc struct {
	ID      string `json:"id" yaml:"id" bson:"id"`
	Title   string `json:"title" yaml:"title" bson:"title"`
	Section string `json:"section" yaml:"section" bson:"section"`
	Content string `json:"content" yaml:"content" bson:"content"`
}

// Provider serves catalog metadata.
type Provider interface {
	// Categories returns every category in provider order.
	Categories(ctx context.Context) ([]Category, error)

	// ComponentsByCategory returns the components of a category, in
	// provider order. An unknown category yields an empty slice.
	ComponentsByCategory(ctx context.Context, categoryID string) ([]Component, error)

	// ComponentBySlug returns a component or ErrNotFound.
	ComponentBySlug(ctx context.Context, slug string) (Component, error)
}

// FindCategory returns the category with the given slug. Matching is exact
// and case-sensitive.
func FindCategory(categories []Category, slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}
