package showcase

import (
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

func overlays() []Showcase {
	return []Showcase{
		{
			Slug:        "dialog",
			Title:       "Dialog",
			Description: "A modal window that interrupts the user to confirm an action or collect input.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Dialog("dialog-demo",
						ui.DialogTrigger(ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Edit profile"))),
						ui.DialogTitle("Edit profile"),
						ui.DialogDescription("Make changes to your profile here. Click save when you're done."),
						ui.DialogChildren(vdom.Div(
							vdom.Class("grid gap-2 py-4"),
							ui.Label("dialog-name", "Name"),
							ui.Input(ui.FieldID("dialog-name"), ui.FieldValue("Pedro Duarte")),
						)),
						ui.DialogFooter(ui.Button(ui.ButtonType("submit"), ui.ButtonChildren("Save changes"))),
					)
				},
				Code: `ui.Dialog("edit-profile",
    ui.DialogTrigger(ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Edit profile"))),
    ui.DialogTitle("Edit profile"),
    ui.DialogDescription("Make changes to your profile here. Click save when you're done."),
    ui.DialogChildren(ui.Label("name", "Name"), ui.Input(ui.FieldID("name"))),
    ui.DialogFooter(ui.Button(ui.ButtonType("submit"), ui.ButtonChildren("Save changes"))),
)`,
			}},
			Guidelines: []string{
				"Reserve dialogs for decisions that block the current task.",
				"Always provide a visible way to close the dialog.",
			},
		},
		{
			Slug:        "popover",
			Title:       "Popover",
			Description: "Displays rich content in a floating panel anchored to a trigger.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return ui.Popover("popover-demo",
						ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Open popover")),
						ui.SideBottom,
						vdom.H4(vdom.Class("font-medium leading-none"), "Dimensions"),
						vdom.P(vdom.Class("text-sm text-muted-foreground"), "Set the dimensions for the layer."),
					)
				},
				Code: `ui.Popover("dimensions",
    ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Open popover")),
    ui.SideBottom,
    vdom.H4("Dimensions"),
    vdom.P("Set the dimensions for the layer."),
)`,
			}},
		},
		{
			Slug:        "tooltip",
			Title:       "Tooltip",
			Description: "A short label shown when an element is hovered or focused.",
			Demos: []Demo{{
				Preview: func() *vdom.VNode {
					return vdom.Fragment(
						ui.Tooltip(ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Top")), "Add to library", ui.SideTop),
						ui.Tooltip(ui.Button(ui.ButtonVariant(ui.VariantOutline), ui.ButtonChildren("Right")), "Add to library", ui.SideRight),
					)
				},
				Code: `ui.Tooltip(ui.Button(ui.ButtonChildren("Top")), "Add to library", ui.SideTop)
ui.Tooltip(ui.Button(ui.ButtonChildren("Right")), "Add to library", ui.SideRight)`,
			}},
			Guidelines: []string{
				"Tooltips supplement a label; never hide essential information in one.",
			},
		},
	}
}
