package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// Side is where a floating element sits relative to its anchor.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

var sideClasses = map[Side]string{
	SideTop:    "bottom-full left-1/2 mb-2 -translate-x-1/2",
	SideRight:  "left-full top-1/2 ml-2 -translate-y-1/2",
	SideBottom: "top-full left-1/2 mt-2 -translate-x-1/2",
	SideLeft:   "right-full top-1/2 mr-2 -translate-y-1/2",
}

// Tooltip shows text when the anchor is hovered or focused. It is pure
// CSS and needs no client hook.
func Tooltip(anchor *vdom.VNode, text string, side Side) *vdom.VNode {
	if _, ok := sideClasses[side]; !ok {
		side = SideTop
	}
	return vdom.Span(
		slot("tooltip"),
		vdom.Class("group relative inline-flex"),
		anchor,
		vdom.Span(
			slot("tooltip-content"),
			vdom.Role("tooltip"),
			vdom.Data("side", string(side)),
			vdom.Class("pointer-events-none absolute z-50 whitespace-nowrap rounded-md border bg-popover px-3 py-1.5 text-sm text-popover-foreground opacity-0 shadow-md transition-opacity group-hover:opacity-100 group-focus-within:opacity-100", sideClasses[side]),
			text,
		),
	)
}

// Popover renders a click-to-open panel anchored to trigger. The
// Popover client hook toggles the panel and closes it on outside click.
func Popover(id string, trigger *vdom.VNode, side Side, content ...any) *vdom.VNode {
	if _, ok := sideClasses[side]; !ok {
		side = SideBottom
	}
	panel := []any{
		slot("popover-content"),
		vdom.ID(id),
		vdom.Role("dialog"),
		vdom.Data("side", string(side)),
		vdom.Data("state", "closed"),
		vdom.Class("absolute z-50 hidden w-72 rounded-md border bg-popover p-4 text-popover-foreground shadow-md data-[state=open]:block", sideClasses[side]),
	}
	panel = append(panel, content...)
	return vdom.Div(
		slot("popover"),
		vdom.Class("relative inline-block"),
		vdom.Hook("Popover", map[string]any{"target": id}),
		vdom.Span(slot("popover-trigger"), vdom.AriaControls(id), vdom.AriaExpanded(false), trigger),
		vdom.Div(panel...),
	)
}
