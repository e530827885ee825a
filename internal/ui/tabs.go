package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// Tab is one trigger and panel of a Tabs component.
type Tab struct {
	Value   string
	Label   string
	Content *vdom.VNode
}

// TabsOption configures a Tabs component.
type TabsOption func(*tabsConfig)

type tabsConfig struct {
	id           string
	defaultValue string
	class        string
}

// TabsID prefixes trigger and panel ids. Default: "tabs".
func TabsID(id string) TabsOption {
	return func(c *tabsConfig) { c.id = id }
}

// TabsDefault selects the initially active tab. Default: the first tab.
func TabsDefault(value string) TabsOption {
	return func(c *tabsConfig) { c.defaultValue = value }
}

// TabsClass adds CSS classes.
func TabsClass(class string) TabsOption {
	return func(c *tabsConfig) { c.class = CN(c.class, class) }
}

// Tabs renders a tab list with one panel per tab. Inactive panels are
// hidden; the Tabs client hook switches them.
func Tabs(tabs []Tab, opts ...TabsOption) *vdom.VNode {
	cfg := tabsConfig{id: "tabs"}
	for _, opt := range opts {
		opt(&cfg)
	}
	active := cfg.defaultValue
	if active == "" && len(tabs) > 0 {
		active = tabs[0].Value
	}

	triggers := vdom.Range(tabs, func(t Tab, _ int) *vdom.VNode {
		selected := t.Value == active
		return vdom.Button(
			slot("tabs-trigger"),
			vdom.Type("button"),
			vdom.Role("tab"),
			vdom.ID(cfg.id+"-trigger-"+t.Value),
			vdom.Data("value", t.Value),
			vdom.Data("state", state(selected)),
			vdom.AriaSelected(selected),
			vdom.AriaControls(cfg.id+"-panel-"+t.Value),
			vdom.Class("inline-flex items-center justify-center whitespace-nowrap rounded-sm px-3 py-1.5 text-sm font-medium transition-all data-[state=active]:bg-background data-[state=active]:shadow-sm"),
			t.Label,
		)
	})

	panels := vdom.Range(tabs, func(t Tab, _ int) *vdom.VNode {
		selected := t.Value == active
		return vdom.Div(
			slot("tabs-content"),
			vdom.Role("tabpanel"),
			vdom.ID(cfg.id+"-panel-"+t.Value),
			vdom.Data("value", t.Value),
			vdom.Data("state", state(selected)),
			vdom.ClassIf(!selected, "hidden"),
			vdom.Class("mt-2 focus-visible:outline-none"),
			t.Content,
		)
	})

	return vdom.Div(
		slot("tabs"),
		vdom.ID(cfg.id),
		vdom.Class(cfg.class),
		vdom.Hook("Tabs", nil),
		vdom.Div(
			slot("tabs-list"),
			vdom.Role("tablist"),
			vdom.Class("inline-flex h-10 items-center justify-center rounded-md bg-muted p-1 text-muted-foreground"),
			triggers,
		),
		panels,
	)
}

func state(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
