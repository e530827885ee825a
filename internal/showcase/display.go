package showcase

import (
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func display() []Showcase {
	return []Showcase{
		{
			Slug:        "card",
			Title:       "Card",
			Description: "Groups related content and actions in a bordered container.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Card(
						vdom.Class("w-[350px]"),
						ui.CardHeader(
							ui.CardTitle("Create project"),
							ui.CardDescription("Deploy your new project in one click."),
						),
						ui.CardContent(ui.Input(ui.FieldPlaceholder("Name of your project"))),
						ui.CardFooter(
							vdom.Class("justify-between"),
							ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Cancel")),
							ui.Button(ui.ButtonChildren("Deploy")),
						),
					)
				},
				Code: `ui.Card(
    ui.CardHeader(
        ui.CardTitle("Create project"),
        ui.CardDescription("Deploy your new project in one click."),
    ),
    ui.CardContent(ui.Input(ui.FieldPlaceholder("Name of your project"))),
    ui.CardFooter(
        ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Cancel")),
        ui.Button(ui.ButtonChildren("Deploy")),
    ),
)`,
			}},
		},
		{
			Slug:        "table",
			Title:       "Table",
			Description: "Displays rows of structured data.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Table("A list of your recent invoices.",
						[]string{"Invoice", "Status", "Method", "Amount"},
						[][]string{
							{"INV001", "Paid", "Credit Card", "$250.00"},
							{"INV002", "Pending", "PayPal", "$150.00"},
							{"INV003", "Unpaid", "Bank Transfer", "$350.00"},
						},
					)
				},
				Code: `ui.Table("A list of your recent invoices.",
    []string{"Invoice", "Status", "Method", "Amount"},
    [][]string{
        {"INV001", "Paid", "Credit Card", "$250.00"},
        {"INV002", "Pending", "PayPal", "$150.00"},
    },
)`,
			}},
		},
		{
			Slug:        "avatar",
			Title:       "Avatar",
			Description: "An image representing a user, with an initials fallback.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return vdom.Fragment(
						ui.Avatar("https://github.com/shadcn.png", "shadcn"),
						ui.Avatar("", "Ada Lovelace"),
					)
				},
				Code: `ui.Avatar("https://github.com/shadcn.png", "shadcn")
ui.Avatar("", "Ada Lovelace")`,
			}},
		},
		{
			Slug:        "accordion",
			Title:       "Accordion",
			Description: "A vertically stacked set of collapsible sections.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Accordion([]ui.AccordionItem{
						{Value: "a11y", Title: "Is it accessible?", Content: vdom.P("Yes. It uses native details and summary elements.")},
						{Value: "styled", Title: "Is it styled?", Content: vdom.P("Yes. It comes with default styles that match the other components.")},
					}, true)
				},
				Code: `ui.Accordion([]ui.AccordionItem{
    {Value: "a11y", Title: "Is it accessible?", Content: vdom.P("Yes.")},
    {Value: "styled", Title: "Is it styled?", Content: vdom.P("Yes.")},
}, true)`,
			}},
		},
	}
}
