package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// BadgeOption configures a Badge component.
type BadgeOption func(*badgeConfig)

type badgeConfig struct {
	variant  Variant
	class    string
	children []any
}

// BadgeVariant sets the badge variant.
func BadgeVariant(v Variant) BadgeOption {
	return func(c *badgeConfig) { c.variant = v }
}

// BadgeClass adds CSS classes.
func BadgeClass(class string) BadgeOption {
	return func(c *badgeConfig) { c.class = CN(c.class, class) }
}

// BadgeText sets the badge label.
func BadgeText(text string) BadgeOption {
	return func(c *badgeConfig) { c.children = append(c.children, vdom.Text(text)) }
}

// BadgeChildren sets the badge content.
func BadgeChildren(children ...any) BadgeOption {
	return func(c *badgeConfig) { c.children = append(c.children, children...) }
}

var badgeVariants = map[Variant]string{
	VariantDefault:     "border-transparent bg-primary text-primary-foreground",
	VariantSecondary:   "border-transparent bg-secondary text-secondary-foreground",
	VariantDestructive: "border-transparent bg-destructive text-destructive-foreground",
	VariantOutline:     "text-foreground",
	VariantSuccess:     "border-transparent bg-success text-success-foreground",
	VariantWarning:     "border-transparent bg-warning text-warning-foreground",
}

// Badge renders a small status label.
func Badge(opts ...BadgeOption) *vdom.VNode {
	cfg := badgeConfig{variant: VariantDefault}
	for _, opt := range opts {
		opt(&cfg)
	}
	args := []any{
		slot("badge"),
		vdom.Data("variant", string(cfg.variant)),
		vdom.Class(
			"inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold",
			badgeVariants[cfg.variant],
			cfg.class,
		),
	}
	args = append(args, cfg.children...)
	return vdom.Span(args...)
}
