package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// Table renders a data table with a header row. Rows shorter than the
// header are padded with empty cells.
func Table(caption string, header []string, rows [][]string) *vdom.VNode {
	return vdom.Div(
		slot("table-container"),
		vdom.Class("relative w-full overflow-auto"),
		vdom.Table(
			slot("table"),
			vdom.Class("w-full caption-bottom text-sm"),
			vdom.If(caption != "", vdom.Caption(vdom.Class("mt-4 text-sm text-muted-foreground"), caption)),
			vdom.Thead(
				vdom.Class("[&_tr]:border-b"),
				vdom.Tr(vdom.Range(header, func(h string, _ int) *vdom.VNode {
					return vdom.Th(
						slot("table-head"),
						vdom.Class("h-12 px-4 text-left align-middle font-medium text-muted-foreground"),
						h,
					)
				})),
			),
			vdom.Tbody(
				vdom.Class("[&_tr:last-child]:border-0"),
				vdom.Range(rows, func(row []string, _ int) *vdom.VNode {
					return vdom.Tr(
						slot("table-row"),
						vdom.Class("border-b transition-colors hover:bg-muted/50"),
						vdom.Repeat(max(len(header), len(row)), func(i int) *vdom.VNode {
							var cell string
							if i < len(row) {
								cell = row[i]
							}
							return vdom.Td(slot("table-cell"), vdom.Class("p-4 align-middle"), cell)
						}),
					)
				}),
			),
		),
	)
}
