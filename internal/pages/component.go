package pages

import (
	"net/http"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// ComponentNotFoundText is the whole content of a missing component page.
const ComponentNotFoundText = "Component not found"

// ComponentPage shows one component, either through its showcase or
// through the generic detail view.
type ComponentPage struct {
	Slug      string
	State     State
	Component catalog.Component
	// Category is nil when the component's category is unknown.
	Category *catalog.Category
	// Showcase is nil on a registry miss.
	Showcase vdom.Component
}

// ComponentLoading returns the loading state of the page for slug.
func ComponentLoading(slug string) ComponentPage {
	return ComponentPage{Slug: slug, State: Loading}
}

// Title implements Page.
func (p ComponentPage) Title() string {
	switch p.State {
	case Found:
		return p.Component.Name
	case NotFound:
		return ComponentNotFoundText
	default:
		return "Loading"
	}
}

// Status implements Page.
func (p ComponentPage) Status() int {
	if p.State == NotFound {
		return http.StatusNotFound
	}
	return http.StatusOK
}

// HasShowcase reports whether the page renders a registered showcase.
func (p ComponentPage) HasShowcase() bool {
	return p.Showcase != nil
}

// Render implements Page.
func (p ComponentPage) Render() *vdom.VNode {
	switch p.State {
	case Loading:
		return loadingView("component")
	case NotFound:
		return notFoundView("component", ComponentNotFoundText)
	}

	crumbs := []ui.Crumb{{Label: "Home", Href: "/"}}
	if p.Category != nil {
		crumbs = append(crumbs, ui.Crumb{Label: p.Category.Name, Href: "/category/" + p.Category.Slug + "#" + p.Component.Slug})
	}
	crumbs = append(crumbs, ui.Crumb{Label: p.Component.Name})

	mode := "detail"
	var content any
	if p.HasShowcase() {
		mode = "showcase"
		content = p.Showcase
	} else {
		content = Detail(p.Component)
	}

	return vdom.Div(
		vdom.Data("page", "component"),
		vdom.Data("state", Found.String()),
		vdom.Data("mode", mode),
		vdom.Class("space-y-6"),
		ui.Breadcrumb(crumbs),
		content,
	)
}
