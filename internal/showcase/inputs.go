package showcase

import (
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func inputs() []Showcase {
	return []Showcase{
		{
			Slug:        "input",
			Title:       "Input",
			Description: "A single-line text field.",
			Demos: []Demo{
				{
					Title: "With label",
					Preview: func() *vdom.VNode {
						return vdom.Div(
							vdom.Class("grid w-full max-w-sm gap-1.5"),
							ui.Label("email", "Email"),
							ui.Input(ui.FieldID("email"), ui.FieldType("email"), ui.FieldPlaceholder("you@example.com")),
						)
					},
					Code: `ui.Label("email", "Email")
ui.Input(ui.FieldID("email"), ui.FieldType("email"), ui.FieldPlaceholder("you@example.com"))`,
				},
				{
					Title: "Invalid",
					Preview: func() *vdom.VNode {
						return ui.Input(ui.FieldValue("not-an-email"), ui.FieldInvalid())
					},
					Code: `ui.Input(ui.FieldValue("not-an-email"), ui.FieldInvalid())`,
				},
			},
			Guidelines: []string{
				"Always pair an input with a visible label.",
				"Do not use placeholder text as a label.",
			},
		},
		{
			Slug:        "textarea",
			Title:       "Textarea",
			Description: "A multi-line text field.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Textarea(ui.FieldPlaceholder("Type your message here."), ui.FieldRows(4))
				},
				Code: `ui.Textarea(ui.FieldPlaceholder("Type your message here."), ui.FieldRows(4))`,
			}},
		},
		{
			Slug:        "select",
			Title:       "Select",
			Description: "Lets users pick one value from a list of options.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Select(
						ui.SelectPlaceholder("Select a fruit"),
						ui.SelectGroups(
							ui.SelectGroup{Label: "Fruits", Items: []ui.SelectItem{
								{Value: "apple", Label: "Apple"},
								{Value: "banana", Label: "Banana"},
								{Value: "grape", Label: "Grape", Disabled: true},
							}},
						),
						ui.SelectClass("w-[180px]"),
					)
				},
				Code: `ui.Select(
    ui.SelectPlaceholder("Select a fruit"),
    ui.SelectGroups(ui.SelectGroup{Label: "Fruits", Items: []ui.SelectItem{
        {Value: "apple", Label: "Apple"},
        {Value: "banana", Label: "Banana"},
        {Value: "grape", Label: "Grape", Disabled: true},
    }}),
)`,
			}},
			Guidelines: []string{
				"Use a select for five or more options; fewer fit a radio group.",
			},
		},
		{
			Slug:        "checkbox",
			Title:       "Checkbox",
			Description: "Toggles a single option on or off within a form.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return vdom.Div(
						vdom.Class("space-y-2"),
						ui.Checkbox("terms", ui.ToggleLabel("Accept terms and conditions")),
						ui.Checkbox("news", ui.ToggleChecked(), ui.ToggleLabel("Send me the newsletter")),
						ui.Checkbox("locked", ui.ToggleDisabled(), ui.ToggleLabel("Unavailable")),
					)
				},
				Code: `ui.Checkbox("terms", ui.ToggleLabel("Accept terms and conditions"))
ui.Checkbox("news", ui.ToggleChecked(), ui.ToggleLabel("Send me the newsletter"))
ui.Checkbox("locked", ui.ToggleDisabled(), ui.ToggleLabel("Unavailable"))`,
			}},
		},
		{
			Slug:        "switch",
			Title:       "Switch",
			Description: "Toggles a setting that takes effect immediately.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Switch("airplane-mode", ui.ToggleLabel("Airplane mode"))
				},
				Code: `ui.Switch("airplane-mode", ui.ToggleLabel("Airplane mode"))`,
			}},
			Guidelines: []string{
				"Use a switch when the change applies without a save step; otherwise use a checkbox.",
			},
		},
	}
}
