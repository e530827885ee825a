package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// Crumb is one breadcrumb entry. The last entry is rendered as the
// current page regardless of Href.
type Crumb struct {
	Label string
	Href  string
}

// Breadcrumb renders a navigation trail.
func Breadcrumb(crumbs []Crumb) *vdom.VNode {
	items := make([]*vdom.VNode, 0, 2*len(crumbs))
	for i, c := range crumbs {
		if i > 0 {
			items = append(items, vdom.Li(
				slot("breadcrumb-separator"),
				vdom.Role("presentation"),
				vdom.AriaHidden(true),
				vdom.Class("text-muted-foreground"),
				"/",
			))
		}
		var entry *vdom.VNode
		switch last := i == len(crumbs)-1; {
		case last:
			entry = vdom.Span(slot("breadcrumb-page"), vdom.AriaCurrent("page"), vdom.Class("font-normal text-foreground"), c.Label)
		case c.Href == "":
			entry = vdom.Span(slot("breadcrumb-page"), c.Label)
		default:
			entry = vdom.A(slot("breadcrumb-link"), vdom.Href(c.Href), vdom.Class("transition-colors hover:text-foreground"), c.Label)
		}
		items = append(items, vdom.Li(slot("breadcrumb-item"), vdom.Class("inline-flex items-center gap-1.5"), entry))
	}
	return vdom.Nav(
		slot("breadcrumb"),
		vdom.AriaLabel("breadcrumb"),
		vdom.Ol(
			slot("breadcrumb-list"),
			vdom.Class("flex flex-wrap items-center gap-1.5 break-words text-sm text-muted-foreground"),
			items,
		),
	)
}
