package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// Card renders a bordered container. Structural parts accept children and
// any extra vdom.Class arguments, which merge with the base classes.
func Card(children ...any) *vdom.VNode {
	return part("div", "card", "rounded-lg border bg-card text-card-foreground shadow-sm", "", children)
}

// CardHeader renders the card header section.
func CardHeader(children ...any) *vdom.VNode {
	return part("div", "card-header", "flex flex-col space-y-1.5 p-6", "", children)
}

// CardTitle renders the card title.
func CardTitle(children ...any) *vdom.VNode {
	return part("h3", "card-title", "text-lg font-semibold leading-none tracking-tight", "", children)
}

// CardDescription renders muted text under the title.
func CardDescription(children ...any) *vdom.VNode {
	return part("p", "card-description", "text-sm text-muted-foreground", "", children)
}

// CardContent renders the card body.
func CardContent(children ...any) *vdom.VNode {
	return part("div", "card-content", "p-6 pt-0", "", children)
}

// CardFooter renders the card footer.
func CardFooter(children ...any) *vdom.VNode {
	return part("div", "card-footer", "flex items-center p-6 pt-0", "", children)
}
