package pages

import (
	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// PlaceholderText marks a component that has no section showcase.
const PlaceholderText = "Showcase not available"

// Placeholder renders the card shown for a component with no section
// showcase. It depends only on the component's name and description.
func Placeholder(c catalog.Component) *vdom.VNode {
	return ui.Card(
		vdom.Data("placeholder", c.Slug),
		vdom.Class("border-dashed"),
		ui.CardHeader(
			ui.CardTitle(vdom.A(vdom.Href("/component/"+c.Slug), c.Name)),
			vdom.If(c.Description != "", ui.CardDescription(c.Description)),
		),
		ui.CardContent(
			vdom.P(vdom.Class("text-sm italic text-muted-foreground"), PlaceholderText),
		),
	)
}
