package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// CodeBlock renders source verbatim inside <pre><code> with a copy
// button. The text is escaped by the renderer, never interpreted.
func CodeBlock(code, language string) *vdom.VNode {
	return vdom.Div(
		slot("code-block"),
		vdom.Class("relative rounded-md border bg-muted"),
		vdom.Button(
			slot("code-copy"),
			vdom.Type("button"),
			vdom.AriaLabel("Copy code"),
			vdom.Class("absolute right-2 top-2 rounded-md px-2 py-1 text-xs text-muted-foreground hover:bg-accent"),
			vdom.Hook("Copy", nil),
			"Copy",
		),
		vdom.Pre(
			vdom.Class("overflow-x-auto p-4 text-sm"),
			vdom.Code(
				languageAttr(language),
				code,
			),
		),
	)
}

func languageAttr(language string) vdom.Attr {
	if language == "" {
		return vdom.Attr{}
	}
	return vdom.Class("language-" + language)
}
