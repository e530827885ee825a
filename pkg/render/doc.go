// Package render provides server-side rendering of vdom trees to HTML.
//
// The renderer handles text and attribute escaping, void elements, boolean
// attributes, embedded components and raw HTML islands. Output is
// deterministic: attributes are written in sorted key order, so rendering
// the same tree twice yields identical bytes.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Button",
//	    Body:  body,
//	})
//
// # Streaming
//
// StreamingRenderer flushes the document head and any placeholder markup
// immediately, then lets the caller stream late content into named slots:
//
//	sr := render.NewStreamingRenderer(w, cfg)
//	sr.Begin(page)
//	sr.Write(skeleton)
//	sr.Fill("content", resolved)
//	sr.End(page)
//
// # Security
//
// Text content is escaped. KindRaw nodes are written verbatim and must only
// carry trusted or sanitized HTML.
package render
