package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant  Variant
	size     Size
	disabled bool
	loading  bool
	typ      string
	class    string
	attrs    []vdom.Attr
	children []any
}

// ButtonVariant sets the button variant.
func ButtonVariant(v Variant) ButtonOption {
	return func(c *buttonConfig) { c.variant = v }
}

// ButtonSize sets the button size.
func ButtonSize(s Size) ButtonOption {
	return func(c *buttonConfig) { c.size = s }
}

// ButtonDisabled renders the button disabled.
func ButtonDisabled() ButtonOption {
	return func(c *buttonConfig) { c.disabled = true }
}

// ButtonLoading renders a spinner and disables the button.
func ButtonLoading() ButtonOption {
	return func(c *buttonConfig) { c.loading = true }
}

// ButtonType sets the type attribute. Default: "button".
func ButtonType(t string) ButtonOption {
	return func(c *buttonConfig) { c.typ = t }
}

// ButtonClass adds CSS classes.
func ButtonClass(class string) ButtonOption {
	return func(c *buttonConfig) { c.class = CN(c.class, class) }
}

// ButtonAttrs adds attributes, typically hooks and aria attributes.
func ButtonAttrs(attrs ...vdom.Attr) ButtonOption {
	return func(c *buttonConfig) { c.attrs = append(c.attrs, attrs...) }
}

// ButtonChildren sets the button content.
func ButtonChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) { c.children = append(c.children, children...) }
}

var buttonVariants = map[Variant]string{
	VariantDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	VariantOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	VariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	VariantGhost:       "hover:bg-accent hover:text-accent-foreground",
	VariantLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizes = map[Size]string{
	SizeSm:   "h-9 rounded-md px-3",
	SizeMd:   "h-10 px-4 py-2",
	SizeLg:   "h-11 rounded-md px-8",
	SizeIcon: "h-10 w-10",
}

// Button renders a button element.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := buttonConfig{variant: VariantDefault, size: SizeMd, typ: "button"}
	for _, opt := range opts {
		opt(&cfg)
	}

	args := []any{
		slot("button"),
		vdom.Data("variant", string(cfg.variant)),
		vdom.Type(cfg.typ),
		vdom.Class(
			"inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50",
			buttonVariants[cfg.variant],
			buttonSizes[cfg.size],
			cfg.class,
		),
		cfg.attrs,
	}
	if cfg.disabled || cfg.loading {
		args = append(args, vdom.Disabled())
	}
	if cfg.loading {
		args = append(args, vdom.AriaBusy(true), Spinner())
	}
	args = append(args, cfg.children...)
	return vdom.El("button", args...)
}

// Spinner renders an animated loading indicator.
func Spinner() *vdom.VNode {
	return vdom.Svg(
		slot("spinner"),
		vdom.Class("h-4 w-4 animate-spin"),
		vdom.Attr{Key: "viewBox", Value: "0 0 24 24"},
		vdom.Attr{Key: "fill", Value: "none"},
		vdom.AriaHidden(true),
		vdom.El("circle",
			vdom.Class("opacity-25"),
			vdom.Attr{Key: "cx", Value: "12"},
			vdom.Attr{Key: "cy", Value: "12"},
			vdom.Attr{Key: "r", Value: "10"},
			vdom.Attr{Key: "stroke", Value: "currentColor"},
			vdom.Attr{Key: "stroke-width", Value: "4"},
		),
		vdom.El("path",
			vdom.Class("opacity-75"),
			vdom.Attr{Key: "fill", Value: "currentColor"},
			vdom.Attr{Key: "d", Value: "M4 12a8 8 0 018-8v4a4 4 0 00-4 4H4z"},
		),
	)
}
