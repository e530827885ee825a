package pages

import "github.com/vango-dev/gallery/pkg/vdom"

// State is the lifecycle phase of a page.
type State int

const (
	Loading State = iota
	Found
	NotFound
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// SkeletonCount is the number of skeleton cards a loading page shows.
const SkeletonCount = 3

// Page is a resolved or loading page ready to render.
type Page interface {
	// Title is the document title.
	Title() string
	// Status is the HTTP status the page is served with.
	Status() int
	// Render builds the page content.
	Render() *vdom.VNode
}
