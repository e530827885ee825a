package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// SelectItem is one option of a Select.
type SelectItem struct {
	Value    string
	Label    string
	Disabled bool
}

// SelectGroup is a labelled group of options.
type SelectGroup struct {
	Label string
	Items []SelectItem
}

// SelectOption configures a Select component.
type SelectOption func(*selectConfig)

type selectConfig struct {
	id          string
	name        string
	value       string
	placeholder string
	disabled    bool
	items       []SelectItem
	groups      []SelectGroup
	class       string
}

// SelectID sets the element id.
func SelectID(id string) SelectOption { return func(c *selectConfig) { c.id = id } }

// SelectName sets the form field name.
func SelectName(name string) SelectOption { return func(c *selectConfig) { c.name = name } }

// SelectValue sets the selected value.
func SelectValue(v string) SelectOption { return func(c *selectConfig) { c.value = v } }

// SelectPlaceholder adds an empty, disabled first option.
func SelectPlaceholder(p string) SelectOption { return func(c *selectConfig) { c.placeholder = p } }

// SelectDisabled disables the control.
func SelectDisabled() SelectOption { return func(c *selectConfig) { c.disabled = true } }

// SelectItems sets ungrouped options.
func SelectItems(items ...SelectItem) SelectOption {
	return func(c *selectConfig) { c.items = append(c.items, items...) }
}

// SelectGroups sets grouped options.
func SelectGroups(groups ...SelectGroup) SelectOption {
	return func(c *selectConfig) { c.groups = append(c.groups, groups...) }
}

// SelectClass adds CSS classes.
func SelectClass(class string) SelectOption {
	return func(c *selectConfig) { c.class = CN(c.class, class) }
}

// Select renders a styled native select.
func Select(opts ...SelectOption) *vdom.VNode {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	option := func(it SelectItem, _ int) *vdom.VNode {
		return vdom.Option(
			vdom.Value(it.Value),
			optionAttrs(it, cfg.value),
			it.Label,
		)
	}

	args := []any{
		slot("select"),
		vdom.Class("flex h-10 w-full items-center justify-between rounded-md border border-input bg-background px-3 py-2 text-sm disabled:cursor-not-allowed disabled:opacity-50", cfg.class),
	}
	if cfg.id != "" {
		args = append(args, vdom.ID(cfg.id))
	}
	if cfg.name != "" {
		args = append(args, vdom.Name(cfg.name))
	}
	if cfg.disabled {
		args = append(args, vdom.Disabled())
	}
	if cfg.placeholder != "" {
		ph := []any{vdom.Value(""), vdom.Disabled(), cfg.placeholder}
		if cfg.value == "" {
			ph = append(ph, vdom.Selected())
		}
		args = append(args, vdom.Option(ph...))
	}
	args = append(args, vdom.Range(cfg.items, option))
	for _, g := range cfg.groups {
		args = append(args, vdom.Optgroup(vdom.Attr{Key: "label", Value: g.Label}, vdom.Range(g.Items, option)))
	}
	return vdom.Select(args...)
}

func optionAttrs(it SelectItem, selected string) []vdom.Attr {
	var attrs []vdom.Attr
	if it.Value == selected && selected != "" {
		attrs = append(attrs, vdom.Selected())
	}
	if it.Disabled {
		attrs = append(attrs, vdom.Disabled())
	}
	return attrs
}
