package pages

import (
	"net/http"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/registry"
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// CategoryNotFoundText is the whole content of a missing category page.
const CategoryNotFoundText = "Category not found"

// CategoryPage lists every component of one category.
type CategoryPage struct {
	Slug     string
	State    State
	Category catalog.Category
	// Blocks are in provider order.
	Blocks []registry.Resolution
}

// CategoryLoading returns the loading state of the page for slug.
func CategoryLoading(slug string) CategoryPage {
	return CategoryPage{Slug: slug, State: Loading}
}

// Title implements Page.
func (p CategoryPage) Title() string {
	switch p.State {
	case Found:
		return p.Category.Name
	case NotFound:
		return CategoryNotFoundText
	default:
		return "Loading"
	}
}

// Status implements Page.
func (p CategoryPage) Status() int {
	if p.State == NotFound {
		return http.StatusNotFound
	}
	return http.StatusOK
}

// Render implements Page.
func (p CategoryPage) Render() *vdom.VNode {
	switch p.State {
	case Loading:
		return loadingView("category")
	case NotFound:
		return notFoundView("category", CategoryNotFoundText)
	}

	blocks := vdom.Range(p.Blocks, func(b registry.Resolution, _ int) *vdom.VNode {
		var content any = b.Renderer
		if !b.Hit() {
			content = Placeholder(b.Component)
		}
		return vdom.Section(
			vdom.ID(b.Component.Slug),
			vdom.Key(b.Component.Slug),
			vdom.Data("component", b.Component.Slug),
			vdom.TabIndex(-1),
			vdom.Class("scroll-mt-20 focus:outline-none"),
			content,
		)
	})

	return vdom.Div(
		vdom.Data("page", "category"),
		vdom.Data("state", Found.String()),
		vdom.Class("space-y-8"),
		ScrollHook(),
		ui.Breadcrumb([]ui.Crumb{
			{Label: "Home", Href: "/"},
			{Label: p.Category.Name},
		}),
		vdom.Header(
			vdom.Class("space-y-2"),
			vdom.H1(
				vdom.Class("flex items-center gap-2 text-3xl font-bold tracking-tight"),
				p.Category.Name,
				vdom.If(p.Category.IsExperimental, experimentalBadge()),
			),
			vdom.If(p.Category.Description != "", vdom.P(vdom.Class("text-muted-foreground"), p.Category.Description)),
		),
		vdom.Div(vdom.Class("grid gap-6"), blocks),
	)
}

func loadingView(kind string) *vdom.VNode {
	return vdom.Div(
		vdom.Data("page", kind),
		vdom.Data("state", Loading.String()),
		vdom.AriaBusy(true),
		vdom.Class("grid gap-6"),
		vdom.Repeat(SkeletonCount, func(int) *vdom.VNode { return ui.SkeletonCard() }),
	)
}

func notFoundView(kind, text string) *vdom.VNode {
	return vdom.Div(
		vdom.Data("page", kind),
		vdom.Data("state", NotFound.String()),
		vdom.Class("py-24 text-center text-lg text-muted-foreground"),
		vdom.P(text),
	)
}

func experimentalBadge() *vdom.VNode {
	return ui.Badge(ui.BadgeVariant(ui.VariantWarning), ui.BadgeClass("experimental"), ui.BadgeText("Experimental"))
}
