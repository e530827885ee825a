package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// AccordionItem is one collapsible section.
type AccordionItem struct {
	Value   string
	Title   string
	Content *vdom.VNode
	Open    bool
}

// Accordion renders collapsible sections on native details elements.
// With single set, the Accordion client hook closes siblings when one
// opens.
func Accordion(items []AccordionItem, single bool) *vdom.VNode {
	var hook []vdom.Attr
	if single {
		hook = vdom.Hook("Accordion", map[string]any{"single": true})
	}
	return vdom.Div(
		slot("accordion"),
		vdom.Class("w-full"),
		hook,
		vdom.Range(items, func(it AccordionItem, _ int) *vdom.VNode {
			args := []any{
				slot("accordion-item"),
				vdom.Key(it.Value),
				vdom.Data("value", it.Value),
				vdom.Class("border-b"),
			}
			if it.Open {
				args = append(args, vdom.Open())
			}
			args = append(args,
				vdom.Summary(
					slot("accordion-trigger"),
					vdom.Class("flex cursor-pointer list-none items-center justify-between py-4 font-medium hover:underline"),
					it.Title,
				),
				vdom.Div(slot("accordion-content"), vdom.Class("pb-4 pt-0 text-sm"), it.Content),
			)
			return vdom.Details(args...)
		}),
	)
}
