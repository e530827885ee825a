package showcase

import (
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func feedback() []Showcase {
	return []Showcase{
		{
			Slug:        "alert",
			Title:       "Alert",
			Description: "Displays a callout for important, non-blocking information.",
			Demos: []Demo{
				{
					Title: "Default",
					Preview: func() *vdom.VNode {
						return ui.Alert(ui.AlertTitle("Heads up!"), ui.AlertDescription("You can add components to your app using the CLI."))
					},
					Code: `ui.Alert(ui.AlertTitle("Heads up!"), ui.AlertDescription("You can add components to your app using the CLI."))`,
				},
				{
					Title: "Destructive",
					Preview: func() *vdom.VNode {
						return ui.Alert(ui.AlertVariant(ui.VariantDestructive), ui.AlertTitle("Error"), ui.AlertDescription("Your session has expired. Please log in again."))
					},
					Code: `ui.Alert(ui.AlertVariant(ui.VariantDestructive), ui.AlertTitle("Error"), ui.AlertDescription("Your session has expired. Please log in again."))`,
				},
			},
		},
		{
			Slug:        "badge",
			Title:       "Badge",
			Description: "A small label for status or metadata.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return vdom.Fragment(
						ui.Badge(ui.BadgeText("Default")),
						ui.Badge(ui.BadgeVariant(ui.VariantSecondary), ui.BadgeText("Secondary")),
						ui.Badge(ui.BadgeVariant(ui.VariantDestructive), ui.BadgeText("Destructive")),
						ui.Badge(ui.BadgeVariant(ui.VariantOutline), ui.BadgeText("Outline")),
					)
				},
				Code: `ui.Badge(ui.BadgeText("Default"))
ui.Badge(ui.BadgeVariant(ui.VariantSecondary), ui.BadgeText("Secondary"))
ui.Badge(ui.BadgeVariant(ui.VariantDestructive), ui.BadgeText("Destructive"))
ui.Badge(ui.BadgeVariant(ui.VariantOutline), ui.BadgeText("Outline"))`,
			}},
		},
		{
			Slug:        "progress",
			Title:       "Progress",
			Description: "Shows the completion of a task.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode { return ui.Progress(60, "w-[60%]") },
				Code:    `ui.Progress(60, "w-[60%]")`,
			}},
		},
		{
			Slug:        "skeleton",
			Title:       "Skeleton",
			Description: "A placeholder shown while content loads.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return vdom.Div(
						vdom.Class("flex items-center space-x-4"),
						ui.Skeleton(vdom.Class("h-12 w-12 rounded-full")),
						vdom.Div(
							vdom.Class("space-y-2"),
							ui.Skeleton(vdom.Class("h-4 w-[250px]")),
							ui.Skeleton(vdom.Class("h-4 w-[200px]")),
						),
					)
				},
				Code: `ui.Skeleton(vdom.Class("h-12 w-12 rounded-full"))
ui.Skeleton(vdom.Class("h-4 w-[250px]"))
ui.Skeleton(vdom.Class("h-4 w-[200px]"))`,
			}},
			Guidelines: []string{
				"Match the skeleton shape to the content it replaces.",
			},
		},
	}
}
