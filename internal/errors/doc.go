// Package errors provides coded, actionable errors for Gallery.
//
// Every failure the server or CLI reports carries a stable code (e.g.
// "E200") that maps to a category, a short message, a longer explanation,
// an HTTP status, and a documentation URL:
//
//	err := errors.New("E200").
//	    WithDetail(`No category with slug "forms"`).
//	    WithSuggestion("Check the category list at /")
//
//	fmt.Println(err.Format())
//	// ERROR E200: Category not found
//	//
//	//   No category with slug "forms"
//	//
//	//   Hint: Check the category list at /
//	//
//	//   Learn more: https://gallery.vango.dev/docs/errors/E200
//
// # Error Categories
//
//   - catalog: the requested entity does not exist in the catalog
//   - provider: the metadata provider failed or returned bad data
//   - render: a page could not be rendered
//   - config: configuration file or environment problems
//   - cli: command-line usage problems
//
// A registry miss is not an error and has no code.
package errors
