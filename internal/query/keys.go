package query

import "strings"

// Cache keys. Realtime events and the invalidation webhook use the same
// names.
const (
	KeyCategories = "categories"

	categoryPrefix  = "category:"
	componentPrefix = "component:"
)

// CategoryKey is the key of a category's component list.
func CategoryKey(categoryID string) string {
	return categoryPrefix + categoryID
}

// ComponentKey is the key of a single component.
func ComponentKey(slug string) string {
	return componentPrefix + slug
}

// ValidKey reports whether key names a query this package caches.
func ValidKey(key string) bool {
	switch {
	case key == KeyCategories:
		return true
	case strings.HasPrefix(key, categoryPrefix):
		return len(key) > len(categoryPrefix)
	case strings.HasPrefix(key, componentPrefix):
		return len(key) > len(componentPrefix)
	}
	return false
}
