package pages

import (
	"net/http"

	"github.com/vango-dev/gallery/internal/catalog"
	galleryerrors "github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/render"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// SiteName is the document title suffix and header brand.
const SiteName = "Gallery"

// ContentSlot is the data-slot of the element streamed content replaces.
const ContentSlot = "page-content"

// Shell wraps page content in the site chrome. The content sits inside
// an element with data-slot=ContentSlot.
func Shell(content *vdom.VNode) *vdom.VNode {
	return vdom.Div(
		vdom.Class("min-h-screen bg-background text-foreground"),
		vdom.Header(
			vdom.Class("sticky top-0 z-40 border-b bg-background/95"),
			vdom.Div(
				vdom.Class("container flex h-14 items-center"),
				vdom.A(vdom.Href("/"), vdom.Class("font-bold"), SiteName),
			),
		),
		vdom.Main(
			vdom.ID("main"),
			vdom.Class("container py-8"),
			vdom.Div(vdom.Data("slot", ContentSlot), content),
		),
	)
}

// Document builds the full HTML document for a page.
func Document(p Page) render.PageData {
	return DocumentFor(p.Title(), Shell(p.Render()))
}

// DocumentFor builds a document around an already assembled body.
func DocumentFor(title string, body *vdom.VNode) render.PageData {
	if title != "" {
		title += " · " + SiteName
	} else {
		title = SiteName
	}
	return render.PageData{
		Title:     title,
		Body:      body,
		BodyClass: "antialiased",
		Meta: []render.MetaTag{
			{Name: "description", Content: "Design-system component gallery"},
		},
	}
}

// IndexPage lists every category.
type IndexPage struct {
	Categories []catalog.Category
}

// Title implements Page.
func (IndexPage) Title() string { return "Components" }

// Status implements Page.
func (IndexPage) Status() int { return http.StatusOK }

// Render implements Page.
func (p IndexPage) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Data("page", "index"),
		vdom.Class("space-y-6"),
		vdom.H1(vdom.Class("text-3xl font-bold tracking-tight"), "Components"),
		vdom.Div(
			vdom.Class("grid gap-4 sm:grid-cols-2 lg:grid-cols-3"),
			vdom.Range(p.Categories, func(c catalog.Category, _ int) *vdom.VNode {
				return vdom.A(
					vdom.Href("/category/"+c.Slug),
					vdom.Key(c.Slug),
					ui.Card(
						vdom.Class("h-full transition-colors hover:bg-accent"),
						ui.CardHeader(
							ui.CardTitle(
								vdom.Class("flex items-center gap-2"),
								c.Name,
								vdom.If(c.IsExperimental, experimentalBadge()),
							),
							vdom.If(c.Description != "", ui.CardDescription(c.Description)),
						),
						ui.CardFooter(vdom.Class("text-sm text-muted-foreground"), vdom.Textf("%d components", c.ComponentCount)),
					),
				)
			}),
		),
	)
}

// UnavailableText heads the page shown when the catalog cannot be read.
const UnavailableText = "Catalog unavailable"

// UnavailablePage reports a provider failure.
type UnavailablePage struct {
	Err error
}

// Title implements Page.
func (UnavailablePage) Title() string { return UnavailableText }

// Status implements Page.
func (UnavailablePage) Status() int { return http.StatusServiceUnavailable }

// Render implements Page.
func (p UnavailablePage) Render() *vdom.VNode {
	code := galleryerrors.Code(p.Err)
	return vdom.Div(
		vdom.Data("page", "unavailable"),
		vdom.Class("py-24 text-center"),
		ui.Alert(
			ui.AlertVariant(ui.VariantDestructive),
			ui.AlertClass("mx-auto max-w-lg text-left"),
			ui.AlertTitle(UnavailableText),
			ui.AlertDescription("The component catalog could not be loaded. Try again in a moment."),
			ui.AlertChildren(vdom.If(code != "", vdom.P(vdom.Class("mt-2 font-mono text-xs"), code))),
		),
	)
}
