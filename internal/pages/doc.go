// Package pages resolves and renders the gallery's category and component
// pages.
//
// Resolution is split from rendering. A Resolver fetches metadata through
// a catalog.Provider (normally the caching query client), pairs components
// with registry entries and returns a page value carrying its State. The
// page value renders to a vdom tree without further I/O, so the same
// resolved page always produces the same markup.
//
// Each page moves through Loading and then Found or NotFound:
//
//	page := pages.CategoryLoading("actions")   // skeleton while fetching
//	page, err := resolver.Category(ctx, "actions")
//	switch {
//	case err != nil:                           // provider failure: 503
//	case page.State == pages.NotFound:         // "Category not found": 404
//	default:                                   // sections or placeholders
//	}
//
// A registry miss is not an error. Category pages render a placeholder
// card for the component; component pages fall back to a generic detail
// view built from metadata.
package pages
