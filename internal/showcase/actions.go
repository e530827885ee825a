package showcase

import (
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func actions() []Showcase {
	return []Showcase{
		{
			Slug:        "button",
			Title:       "Button",
			Description: "Triggers an action or event, such as submitting a form or opening a dialog.",
			Demos: []Demo{
				{
					Title: "Variants",
					Preview: func() *vdom.VNode {
						return vdom.Fragment(
							ui.Button(ui.ButtonChildren("Default")),
							ui.Button(ui.ButtonVariant(ui.VariantSecondary), ui.ButtonChildren("Secondary")),
							ui.Button(ui.ButtonVariant(ui.VariantDestructive), ui.ButtonChildren("Destructive")),
							ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Outline")),
							ui.Button(ui.ButtonVariant(ui.VariantGhost), ui.ButtonChildren("Ghost")),
							ui.Button(ui.ButtonVariant(ui.VariantLink), ui.ButtonChildren("Link")),
						)
					},
					Code: `ui.Button(ui.ButtonChildren("Default"))
ui.Button(ui.ButtonVariant(ui.VariantSecondary), ui.ButtonChildren("Secondary"))
ui.Button(ui.ButtonVariant(ui.VariantDestructive), ui.ButtonChildren("Destructive"))
ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Outline"))
ui.Button(ui.ButtonVariant(ui.VariantGhost), ui.ButtonChildren("Ghost"))
ui.Button(ui.ButtonVariant(ui.VariantLink), ui.ButtonChildren("Link"))`,
				},
				{
					Title: "Sizes",
					Preview: func() *vdom.VNode {
						return vdom.Fragment(
							ui.Button(ui.ButtonSize(ui.SizeSm), ui.ButtonChildren("Small")),
							ui.Button(ui.ButtonChildren("Default")),
							ui.Button(ui.ButtonSize(ui.SizeLg), ui.ButtonChildren("Large")),
						)
					},
					Code: `ui.Button(ui.ButtonSize(ui.SizeSm), ui.ButtonChildren("Small"))
ui.Button(ui.ButtonChildren("Default"))
ui.Button(ui.ButtonSize(ui.SizeLg), ui.ButtonChildren("Large"))`,
				},
				{
					Title: "Loading",
					Preview: func() *vdom.VNode {
						return ui.Button(ui.ButtonLoading(), ui.ButtonChildren("Please wait"))
					},
					Code: `ui.Button(ui.ButtonLoading(), ui.ButtonChildren("Please wait"))`,
				},
			},
			Guidelines: []string{
				"Use one primary button per view for the main action.",
				"Label buttons with a verb that describes the outcome.",
				"Prefer the destructive variant only for irreversible actions.",
			},
		},
		{
			Slug:        "toggle",
			Title:       "Toggle",
			Description: "A two-state button that can be either on or off.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return vdom.Fragment(
						ui.Toggle(false, ui.ButtonAttrs(vdom.AriaLabel("Toggle bold")), ui.ButtonChildren("B")),
						ui.Toggle(true, ui.ButtonAttrs(vdom.AriaLabel("Toggle italic")), ui.ButtonChildren("I")),
					)
				},
				Code: `ui.Toggle(false, ui.ButtonAttrs(vdom.AriaLabel("Toggle bold")), ui.ButtonChildren("B"))
ui.Toggle(true, ui.ButtonAttrs(vdom.AriaLabel("Toggle italic")), ui.ButtonChildren("I"))`,
			}},
			Guidelines: []string{
				"Give icon-only toggles an accessible label.",
			},
		},
	}
}
