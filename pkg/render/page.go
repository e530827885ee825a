package render

import (
	"io"

	"github.com/vango-dev/gallery/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains extra stylesheet URLs, after the built-in one.
	StyleSheets []string

	// Scripts contains extra script tags, rendered before </body>.
	Scripts []ScriptTag

	// BodyClass is the class attribute of the body element.
	BodyClass string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Property string // property attribute (for OpenGraph)
	Content  string // content attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	ew := &errWriter{w: w}
	r.openDocument(ew, page)
	r.renderNode(ew, page.Body, 0)
	r.closeDocument(ew, page)
	return ew.err
}

// openDocument writes everything up to and including the opening body tag.
func (r *Renderer) openDocument(w *errWriter, page PageData) {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	w.WriteString("<!DOCTYPE html>\n")
	w.WriteString(`<html lang="` + escapeAttr(lang) + `">` + "\n")
	w.WriteString("<head>\n")
	w.WriteString(`  <meta charset="utf-8">` + "\n")
	w.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	if page.Title != "" {
		w.WriteString("  <title>" + escapeHTML(page.Title) + "</title>\n")
	}
	for _, meta := range page.Meta {
		r.renderMetaTag(w, meta)
	}
	w.WriteString(`  <link rel="stylesheet" href="` + escapeAttr(r.config.AssetPath+"/gallery.css") + `">` + "\n")
	for _, href := range page.StyleSheets {
		w.WriteString(`  <link rel="stylesheet" href="` + escapeAttr(href) + `">` + "\n")
	}
	w.WriteString("</head>\n")

	if page.BodyClass != "" {
		w.WriteString(`<body class="` + escapeAttr(page.BodyClass) + `">` + "\n")
	} else {
		w.WriteString("<body>\n")
	}
}

// closeDocument writes the client script, page scripts and closing tags.
func (r *Renderer) closeDocument(w *errWriter, page PageData) {
	w.WriteString("\n")
	w.WriteString(`  <script src="` + escapeAttr(r.config.AssetPath+"/gallery.js") + `" defer></script>` + "\n")
	for _, script := range page.Scripts {
		r.renderScriptTag(w, script)
	}
	w.WriteString("</body>\n</html>\n")
}

// renderMetaTag renders a meta element.
func (r *Renderer) renderMetaTag(w *errWriter, meta MetaTag) {
	w.WriteString("  <meta")
	if meta.Name != "" {
		w.WriteString(` name="` + escapeAttr(meta.Name) + `"`)
	}
	if meta.Property != "" {
		w.WriteString(` property="` + escapeAttr(meta.Property) + `"`)
	}
	if meta.Content != "" {
		w.WriteString(` content="` + escapeAttr(meta.Content) + `"`)
	}
	w.WriteString(">\n")
}

// renderScriptTag renders a script element.
func (r *Renderer) renderScriptTag(w *errWriter, script ScriptTag) {
	w.WriteString("  <script")
	if script.Src != "" {
		w.WriteString(` src="` + escapeAttr(script.Src) + `"`)
	}
	if script.Module {
		w.WriteString(` type="module"`)
	}
	if script.Defer {
		w.WriteString(" defer")
	}
	w.WriteString(">")
	w.WriteString(script.Inline)
	w.WriteString("</script>\n")
}
