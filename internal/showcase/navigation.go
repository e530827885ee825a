package showcase

import (
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func navigation() []Showcase {
	return []Showcase{
		{
			Slug:        "tabs",
			Title:       "Tabs",
			Description: "Organizes related content into panels shown one at a time.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Tabs([]ui.Tab{
						{Value: "account", Label: "Account", Content: vdom.P(vdom.Class("text-sm"), "Make changes to your account here.")},
						{Value: "password", Label: "Password", Content: vdom.P(vdom.Class("text-sm"), "Change your password here.")},
					}, ui.TabsID("tabs-demo"), ui.TabsClass("w-[400px]"))
				},
				Code: `ui.Tabs([]ui.Tab{
    {Value: "account", Label: "Account", Content: vdom.P("Make changes to your account here.")},
    {Value: "password", Label: "Password", Content: vdom.P("Change your password here.")},
}, ui.TabsID("settings"))`,
			}},
		},
		{
			Slug:        "breadcrumb",
			Title:       "Breadcrumb",
			Description: "Shows the location of the current page within a hierarchy.",
			PageOnly:    true,
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Breadcrumb([]ui.Crumb{
						{Label: "Home", Href: "/"},
						{Label: "Components", Href: "/category/navigation"},
						{Label: "Breadcrumb"},
					})
				},
				Code: `ui.Breadcrumb([]ui.Crumb{
    {Label: "Home", Href: "/"},
    {Label: "Components", Href: "/category/navigation"},
    {Label: "Breadcrumb"},
})`,
			}},
		},
		{
			Slug:        "sidebar",
			Title:       "Sidebar",
			Description: "A vertical navigation panel for application sections.",
			PageOnly:    true,
			Demos: []Demo{{
				Preview: sidebarDemo,
				Code: `vdom.Aside(
    vdom.Nav(
        sidebarGroup("Platform", "Playground", "Models", "Documentation"),
        sidebarGroup("Projects", "Design Engineering", "Sales & Marketing"),
    ),
)`,
			}},
			Guidelines: []string{
				"Group links under short headings.",
				"Mark the active link with aria-current.",
			},
		},
		{
			Slug:        "command",
			Title:       "Command",
			Description: "A searchable command palette for quick navigation and actions.",
			PageOnly:    true,
			Demos: []Demo{{
				Preview: commandDemo,
				Code: `vdom.Div(
    ui.Input(ui.FieldPlaceholder("Type a command or search...")),
    vdom.Ul(vdom.Role("listbox"),
        vdom.Li(vdom.Role("option"), "Calendar"),
        vdom.Li(vdom.Role("option"), "Search emoji"),
        vdom.Li(vdom.Role("option"), "Calculator"),
    ),
)`,
			}},
		},
	}
}

func sidebarDemo() *vdom.VNode {
	group := func(title string, links []string, active string) *vdom.VNode {
		return vdom.Div(
			vdom.Class("space-y-1"),
			vdom.H4(vdom.Class("px-2 text-xs font-semibold uppercase text-muted-foreground"), title),
			vdom.Ul(vdom.Range(links, func(l string, _ int) *vdom.VNode {
				link := vdom.A(vdom.Href("#"), vdom.Class("block rounded-md px-2 py-1 text-sm hover:bg-accent"), l)
				if l == active {
					link = vdom.A(vdom.Href("#"), vdom.AriaCurrent("page"), vdom.Class("block rounded-md bg-accent px-2 py-1 text-sm font-medium"), l)
				}
				return vdom.Li(link)
			})),
		)
	}
	return vdom.Aside(
		vdom.Data("slot", "sidebar"),
		vdom.Class("w-64 space-y-4 rounded-md border bg-background p-4"),
		vdom.Nav(
			vdom.AriaLabel("Sidebar"),
			vdom.Class("space-y-4"),
			group("Platform", []string{"Playground", "Models", "Documentation"}, "Playground"),
			ui.Separator(false),
			group("Projects", []string{"Design Engineering", "Sales & Marketing"}, ""),
		),
	)
}

func commandDemo() *vdom.VNode {
	items := []string{"Calendar", "Search emoji", "Calculator"}
	return vdom.Div(
		vdom.Data("slot", "command"),
		vdom.Class("w-[400px] rounded-lg border shadow-md"),
		vdom.Hook("Command", nil),
		ui.Input(ui.FieldPlaceholder("Type a command or search..."), ui.FieldClass("rounded-b-none border-0 border-b")),
		vdom.Ul(
			vdom.Role("listbox"),
			vdom.Class("max-h-[300px] overflow-y-auto p-1"),
			vdom.Range(items, func(it string, _ int) *vdom.VNode {
				return vdom.Li(vdom.Role("option"), vdom.Class("cursor-pointer rounded-sm px-2 py-1.5 text-sm hover:bg-accent"), it)
			}),
		),
	)
}
