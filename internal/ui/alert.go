package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// AlertOption configures an Alert component.
type AlertOption func(*alertConfig)

type alertConfig struct {
	variant     Variant
	title       string
	description string
	class       string
	children    []any
}

// AlertVariant sets the alert variant.
func AlertVariant(v Variant) AlertOption {
	return func(c *alertConfig) { c.variant = v }
}

// AlertTitle sets the heading.
func AlertTitle(title string) AlertOption {
	return func(c *alertConfig) { c.title = title }
}

// AlertDescription sets the message.
func AlertDescription(text string) AlertOption {
	return func(c *alertConfig) { c.description = text }
}

// AlertClass adds CSS classes.
func AlertClass(class string) AlertOption {
	return func(c *alertConfig) { c.class = CN(c.class, class) }
}

// AlertChildren appends content after the description.
func AlertChildren(children ...any) AlertOption {
	return func(c *alertConfig) { c.children = append(c.children, children...) }
}

var alertVariants = map[Variant]string{
	VariantDefault:     "bg-background text-foreground",
	VariantDestructive: "border-destructive/50 text-destructive",
	VariantWarning:     "border-warning/50 text-warning",
	VariantSuccess:     "border-success/50 text-success",
}

// Alert renders a callout.
func Alert(opts ...AlertOption) *vdom.VNode {
	cfg := alertConfig{variant: VariantDefault}
	for _, opt := range opts {
		opt(&cfg)
	}
	args := []any{
		slot("alert"),
		vdom.Role("alert"),
		vdom.Data("variant", string(cfg.variant)),
		vdom.Class("relative w-full rounded-lg border p-4", alertVariants[cfg.variant], cfg.class),
	}
	if cfg.title != "" {
		args = append(args, vdom.H4(slot("alert-title"), vdom.Class("mb-1 font-medium leading-none tracking-tight"), cfg.title))
	}
	if cfg.description != "" {
		args = append(args, vdom.Div(slot("alert-description"), vdom.Class("text-sm"), cfg.description))
	}
	args = append(args, cfg.children...)
	return vdom.Div(args...)
}
