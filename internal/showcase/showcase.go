// Package showcase holds the compiled-in showcase table: for each
// design-system component a set of live demos with their source, plus
// usage guidelines.
//
// Showcases render in two shapes. Section is the compact block a
// category page stacks; Page is the standalone view a component page
// hands the whole content area to.
package showcase

import (
	"strconv"

	"github.com/vango-dev/gallery/internal/ui"
	"github.com/vango-dev/gallery/pkg/vdom"
)

// Demo is one live example and the code that produces it.
type Demo struct {
	Title   string
	Preview func() *vdom.VNode
	Code    string
}

// Showcase documents one component.
type Showcase struct {
	Slug        string
	Title       string
	Description string
	Demos       []Demo
	Guidelines  []string

	// PageOnly showcases are registered for component pages but not for
	// category sections.
	PageOnly bool
}

// Section returns the compact renderer used inside category pages. It
// shows the first demo only.
func (s Showcase) Section() vdom.Component {
	return vdom.Func(func() *vdom.VNode {
		var demo *vdom.VNode
		if len(s.Demos) > 0 {
			demo = renderDemo(s.Slug, 0, s.Demos[0], false)
		}
		return ui.Card(
			vdom.Data("showcase", s.Slug),
			ui.CardHeader(
				ui.CardTitle(vdom.A(vdom.Href("/component/"+s.Slug), s.Title)),
				ui.CardDescription(s.Description),
			),
			ui.CardContent(demo),
		)
	})
}

// Page returns the standalone renderer used by component pages.
func (s Showcase) Page() vdom.Component {
	return vdom.Func(func() *vdom.VNode {
		demos := vdom.Range(s.Demos, func(d Demo, i int) *vdom.VNode {
			return renderDemo(s.Slug, i, d, true)
		})
		var guidelines *vdom.VNode
		if len(s.Guidelines) > 0 {
			guidelines = vdom.Section(
				vdom.Class("space-y-2"),
				vdom.H2(vdom.Class("text-xl font-semibold"), "Usage guidelines"),
				vdom.Ul(
					vdom.Class("list-disc space-y-1 pl-6 text-sm"),
					vdom.Range(s.Guidelines, func(g string, _ int) *vdom.VNode { return vdom.Li(g) }),
				),
			)
		}
		return vdom.Article(
			vdom.Data("showcase", s.Slug),
			vdom.Class("space-y-8"),
			vdom.Header(
				vdom.H1(vdom.Class("text-3xl font-bold tracking-tight"), s.Title),
				vdom.P(vdom.Class("text-lg text-muted-foreground"), s.Description),
			),
			demos,
			guidelines,
		)
	})
}

func renderDemo(slug string, i int, d Demo, titled bool) *vdom.VNode {
	var preview *vdom.VNode
	if d.Preview != nil {
		preview = d.Preview()
	}
	return vdom.Div(
		vdom.Data("slot", "demo"),
		vdom.Key(slug+"-demo-"+strconv.Itoa(i)),
		vdom.Class("space-y-3"),
		vdom.If(titled && d.Title != "", vdom.H2(vdom.Class("text-xl font-semibold"), d.Title)),
		vdom.Div(
			vdom.Data("slot", "demo-preview"),
			vdom.Class("flex min-h-[120px] flex-wrap items-center justify-center gap-4 rounded-md border p-8"),
			preview,
		),
		ui.CodeBlock(d.Code, "go"),
	)
}

// All returns every showcase in gallery order.
func All() []Showcase {
	var all []Showcase
	for _, group := range [][]Showcase{actions(), inputs(), overlays(), navigation(), feedback(), display()} {
		all = append(all, group...)
	}
	return all
}

// Sections returns the renderers for category sections.
func Sections() map[string]vdom.Component {
	out := make(map[string]vdom.Component)
	for _, s := range All() {
		if !s.PageOnly {
			out[s.Slug] = s.Section()
		}
	}
	return out
}

// Pages returns the renderers for standalone component pages. It is a
// superset of Sections.
func Pages() map[string]vdom.Component {
	out := make(map[string]vdom.Component)
	for _, s := range All() {
		out[s.Slug] = s.Page()
	}
	return out
}
