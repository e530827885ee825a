package pages

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/vango-dev/gallery/internal/catalog"
	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// Tab values of the generic detail view.
const (
	TabOverview      = "overview"
	TabVariants      = "variants"
	TabDocumentation = "documentation"
)

// StatusVariant maps a component status to its badge variant. Unknown
// statuses, including draft and the empty string, map to outline.
func StatusVariant(status catalog.Status) ui.Variant {
	switch status {
	case catalog.StatusStable:
		return ui.VariantDefault
	case catalog.StatusReview:
		return ui.VariantSecondary
	case catalog.StatusDeprecated:
		return ui.VariantDestructive
	default:
		return ui.VariantOutline
	}
}

// DetailTabs returns the tab values the generic detail view shows for c.
func DetailTabs(c catalog.Component) []string {
	tabs := []string{TabOverview}
	if len(c.Variants) > 0 {
		tabs = append(tabs, TabVariants)
	}
	if len(c.Documentation) > 0 {
		tabs = append(tabs, TabDocumentation)
	}
	return tabs
}

// Detail renders the generic view of a component without a showcase.
func Detail(c catalog.Component) *vdom.VNode {
	status := string(c.Status)
	if status == "" {
		status = "unknown"
	}

	tabs := []ui.Tab{{Value: TabOverview, Label: "Overview", Content: overview(c)}}
	if len(c.Variants) > 0 {
		tabs = append(tabs, ui.Tab{Value: TabVariants, Label: "Variants", Content: variants(c.Variants)})
	}
	if len(c.Documentation) > 0 {
		tabs = append(tabs, ui.Tab{Value: TabDocumentation, Label: "Documentation", Content: documentation(c.Documentation)})
	}

	return vdom.Article(
		vdom.Data("detail", c.Slug),
		vdom.Class("space-y-6"),
		vdom.Header(
			vdom.Class("space-y-2"),
			vdom.Div(
				vdom.Class("flex flex-wrap items-center gap-2"),
				vdom.H1(vdom.Class("text-3xl font-bold tracking-tight"), c.Name),
				ui.Badge(ui.BadgeVariant(StatusVariant(c.Status)), ui.BadgeClass("status"), ui.BadgeText(status)),
				vdom.If(c.IsExperimental, experimentalBadge()),
			),
			vdom.If(c.Description != "", vdom.P(vdom.Class("text-lg text-muted-foreground"), c.Description)),
		),
		ui.Tabs(tabs, ui.TabsID("detail")),
	)
}

func overview(c catalog.Component) *vdom.VNode {
	row := func(label, value string) *vdom.VNode {
		return vdom.Div(
			vdom.Class("flex justify-between border-b py-2 text-sm"),
			vdom.Span(vdom.Class("text-muted-foreground"), label),
			vdom.Span(value),
		)
	}
	return ui.Card(
		ui.CardContent(
			vdom.Class("pt-6"),
			vdom.If(c.Description != "", vdom.P(vdom.Class("mb-4"), c.Description)),
			row("Slug", c.Slug),
			row("Status", string(c.Status)),
			row("Variants", fmt.Sprint(len(c.Variants))),
			row("Documentation pages", fmt.Sprint(len(c.Documentation))),
		),
	)
}

func variants(vs []catalog.Variant) *vdom.VNode {
	return vdom.Div(
		vdom.Class("grid gap-4"),
		vdom.Range(vs, func(v catalog.Variant, _ int) *vdom.VNode {
			return ui.Card(
				vdom.Data("variant", v.Name),
				ui.CardHeader(ui.CardTitle(v.Name)),
				ui.CardContent(
					vdom.Class("space-y-4"),
					ui.CodeBlock(v.CodeExample, ""),
					propsTable(v.Props),
				),
			)
		}),
	)
}

// propsTable lists props in key order with JSON-encoded values.
func propsTable(props map[string]any) *vdom.VNode {
	if len(props) == 0 {
		return vdom.P(vdom.Class("text-sm text-muted-foreground"), "No props")
	}
	keys := slices.Sorted(maps.Keys(props))
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, encodeProp(props[k])})
	}
	return ui.Table("", []string{"Prop", "Value"}, rows)
}

func encodeProp(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// documentation renders doc bodies as HTML. Content is trusted here: the
// provider chain sanitizes it unless sanitizing is disabled.
func documentation(docs []catalog.Doc) *vdom.VNode {
	return vdom.Div(
		vdom.Class("space-y-8"),
		vdom.Range(docs, func(d catalog.Doc, _ int) *vdom.VNode {
			return vdom.Section(
				vdom.Data("doc", d.Section),
				vdom.H3(vdom.Class("text-xl font-semibold"), d.Title),
				vdom.Div(vdom.Class("prose"), vdom.Raw(d.Content)),
			)
		}),
	)
}
