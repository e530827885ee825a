package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// DialogOption configures a Dialog component.
type DialogOption func(*dialogConfig)

type dialogConfig struct {
	id          string
	trigger     *vdom.VNode
	title       string
	description string
	footer      []any
	open        bool
	children    []any
}

// DialogTrigger sets the element that opens the dialog.
func DialogTrigger(trigger *vdom.VNode) DialogOption {
	return func(c *dialogConfig) { c.trigger = trigger }
}

// DialogTitle sets the dialog heading.
func DialogTitle(title string) DialogOption {
	return func(c *dialogConfig) { c.title = title }
}

// DialogDescription sets the text under the heading.
func DialogDescription(text string) DialogOption {
	return func(c *dialogConfig) { c.description = text }
}

// DialogFooter sets the action row.
func DialogFooter(children ...any) DialogOption {
	return func(c *dialogConfig) { c.footer = append(c.footer, children...) }
}

// DialogOpen renders the dialog initially open.
func DialogOpen() DialogOption {
	return func(c *dialogConfig) { c.open = true }
}

// DialogChildren sets the dialog body.
func DialogChildren(children ...any) DialogOption {
	return func(c *dialogConfig) { c.children = append(c.children, children...) }
}

// Dialog renders a trigger and a native <dialog> element. The Dialog
// client hook on the trigger wrapper calls showModal on the element
// with id.
func Dialog(id string, opts ...DialogOption) *vdom.VNode {
	cfg := dialogConfig{id: id}
	for _, opt := range opts {
		opt(&cfg)
	}

	content := []any{
		slot("dialog-content"),
		vdom.ID(cfg.id),
		vdom.AriaModal(true),
		vdom.Class("w-full max-w-lg rounded-lg border bg-background p-6 shadow-lg backdrop:bg-black/80"),
	}
	if cfg.open {
		content = append(content, vdom.Open())
	}
	if cfg.title != "" || cfg.description != "" {
		content = append(content, vdom.Div(
			slot("dialog-header"),
			vdom.Class("flex flex-col space-y-1.5 text-center sm:text-left"),
			vdom.If(cfg.title != "", vdom.H2(slot("dialog-title"), vdom.Class("text-lg font-semibold"), cfg.title)),
			vdom.If(cfg.description != "", vdom.P(slot("dialog-description"), vdom.Class("text-sm text-muted-foreground"), cfg.description)),
		))
	}
	content = append(content, cfg.children...)
	if len(cfg.footer) > 0 {
		content = append(content, part("div", "dialog-footer", "mt-4 flex flex-col-reverse sm:flex-row sm:justify-end sm:space-x-2", "", cfg.footer))
	}
	content = append(content,
		vdom.Form(vdom.Attr{Key: "method", Value: "dialog"},
			vdom.Button(
				slot("dialog-close"),
				vdom.Class("absolute right-4 top-4 rounded-sm opacity-70 hover:opacity-100"),
				vdom.AriaLabel("Close"),
				"×",
			),
		),
	)

	var trigger *vdom.VNode
	if cfg.trigger != nil {
		trigger = vdom.Span(
			slot("dialog-trigger"),
			vdom.Class("contents"),
			vdom.Hook("Dialog", map[string]any{"target": cfg.id}),
			cfg.trigger,
		)
	}

	return vdom.Div(slot("dialog"), trigger, vdom.Dialog(content...))
}
