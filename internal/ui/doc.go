// Package ui provides the design-system primitives the gallery renders:
// buttons, badges, cards, tabs, dialogs, form controls and the like.
//
// Components are plain functions returning *vdom.VNode, configured with
// functional options:
//
//	ui.Button(
//	    ui.ButtonVariant(ui.VariantDestructive),
//	    ui.ButtonSize(ui.SizeSm),
//	    ui.ButtonChildren(vdom.Text("Delete")),
//	)
//
// Class strings follow the shadcn token names (bg-primary,
// text-muted-foreground, ...) resolved by the gallery stylesheet.
// Interactive behavior (tabs, dialogs, copy buttons) is attached with
// vdom.Hook and implemented by the gallery client script.
//
// Every component sets data-slot to its name so styles and tests can
// address parts without depending on class strings. Components with a
// visual variant also set data-variant.
package ui
