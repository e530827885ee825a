package ui

import (
	"fmt"

	"github.com/vango-dev/gallery/pkg/vdom"
)

// Progress renders a horizontal bar filled to value percent. Values
// outside [0, 100] are clamped.
func Progress(value float64, class ...string) *vdom.VNode {
	value = min(max(value, 0), 100)
	return vdom.Div(
		slot("progress"),
		vdom.Role("progressbar"),
		vdom.Attr{Key: "aria-valuemin", Value: 0},
		vdom.Attr{Key: "aria-valuemax", Value: 100},
		vdom.AriaValueNow(value),
		vdom.Class("relative h-4 w-full overflow-hidden rounded-full bg-secondary", CN(class...)),
		vdom.Div(
			slot("progress-indicator"),
			vdom.Class("h-full bg-primary transition-all"),
			vdom.StyleAttr(fmt.Sprintf("width: %g%%", value)),
		),
	)
}

// Separator renders a horizontal or vertical rule.
func Separator(vertical bool) *vdom.VNode {
	orientation := "horizontal"
	class := "h-[1px] w-full"
	if vertical {
		orientation = "vertical"
		class = "h-full w-[1px]"
	}
	return vdom.Div(
		slot("separator"),
		vdom.Role("separator"),
		vdom.Attr{Key: "aria-orientation", Value: orientation},
		vdom.Class("shrink-0 bg-border", class),
	)
}
