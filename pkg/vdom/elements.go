package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element with an arbitrary tag. It backs every named
// factory and is the escape hatch for SVG and custom elements.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0, len(args)),
	}
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

// apply folds a single factory argument into the node.
func (v *VNode) apply(arg any) {
	switch a := arg.(type) {
	case nil:
	case Attr:
		v.setAttr(a)
	case []Attr:
		for _, attr := range a {
			v.setAttr(attr)
		}
	case *VNode:
		v.appendChild(a)
	case []*VNode:
		for _, child := range a {
			v.appendChild(child)
		}
	case Component:
		if a != nil {
			v.Children = append(v.Children, &VNode{Kind: KindComponent, Comp: a})
		}
	case string:
		v.Children = append(v.Children, Text(a))
	case []any:
		for _, nested := range a {
			v.apply(nested)
		}
	}
}

func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
		return
	}
	if a.Key == "class" {
		if s, ok := a.Value.(string); ok && s == "" {
			return
		}
		if prev, ok := v.Props["class"].(string); ok && prev != "" {
			if next, ok := a.Value.(string); ok {
				v.Props["class"] = CN(prev, next)
				return
			}
		}
	}
	v.Props[a.Key] = a.Value
}

func (v *VNode) appendChild(child *VNode) {
	if child == nil {
		return
	}
	// Fragments without a key are flattened so queries and rendering see
	// a single child list.
	if child.Kind == KindFragment && child.Key == "" && v.Kind == KindElement {
		for _, c := range child.Children {
			v.appendChild(c)
		}
		return
	}
	v.Children = append(v.Children, child)
}

// Document structure elements

func Html(args ...any) *VNode  { return El("html", args...) }
func Head(args ...any) *VNode  { return El("head", args...) }
func Body(args ...any) *VNode  { return El("body", args...) }
func Title(args ...any) *VNode { return El("title", args...) }
func Meta(args ...any) *VNode  { return El("meta", args...) }
func Link(args ...any) *VNode  { return El("link", args...) }

// Content sectioning elements

func Header(args ...any) *VNode  { return El("header", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }
func Main(args ...any) *VNode    { return El("main", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Article(args ...any) *VNode { return El("article", args...) }
func Aside(args ...any) *VNode   { return El("aside", args...) }
func H1(args ...any) *VNode      { return El("h1", args...) }
func H2(args ...any) *VNode      { return El("h2", args...) }
func H3(args ...any) *VNode      { return El("h3", args...) }
func H4(args ...any) *VNode      { return El("h4", args...) }

// Text content elements

func Div(args ...any) *VNode  { return El("div", args...) }
func P(args ...any) *VNode    { return El("p", args...) }
func Span(args ...any) *VNode { return El("span", args...) }
func Pre(args ...any) *VNode  { return El("pre", args...) }
func Ul(args ...any) *VNode   { return El("ul", args...) }
func Ol(args ...any) *VNode   { return El("ol", args...) }
func Li(args ...any) *VNode   { return El("li", args...) }
func Hr(args ...any) *VNode   { return El("hr", args...) }

// Inline text semantics

func A(args ...any) *VNode      { return El("a", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Em(args ...any) *VNode     { return El("em", args...) }
func Small(args ...any) *VNode  { return El("small", args...) }
func Code(args ...any) *VNode   { return El("code", args...) }
func Kbd(args ...any) *VNode    { return El("kbd", args...) }
func Br(args ...any) *VNode     { return El("br", args...) }

// Form elements

func Form(args ...any) *VNode     { return El("form", args...) }
func Input(args ...any) *VNode    { return El("input", args...) }
func Textarea(args ...any) *VNode { return El("textarea", args...) }
func Select(args ...any) *VNode   { return El("select", args...) }
func Option(args ...any) *VNode   { return El("option", args...) }
func Optgroup(args ...any) *VNode { return El("optgroup", args...) }
func Button(args ...any) *VNode   { return El("button", args...) }
func Label(args ...any) *VNode    { return El("label", args...) }

// Table elements

func Table(args ...any) *VNode   { return El("table", args...) }
func Thead(args ...any) *VNode   { return El("thead", args...) }
func Tbody(args ...any) *VNode   { return El("tbody", args...) }
func Tr(args ...any) *VNode      { return El("tr", args...) }
func Th(args ...any) *VNode      { return El("th", args...) }
func Td(args ...any) *VNode      { return El("td", args...) }
func Caption(args ...any) *VNode { return El("caption", args...) }

// Media and interactive elements

func Img(args ...any) *VNode      { return El("img", args...) }
func Svg(args ...any) *VNode      { return El("svg", args...) }
func Details(args ...any) *VNode  { return El("details", args...) }
func Summary(args ...any) *VNode  { return El("summary", args...) }
func Dialog(args ...any) *VNode   { return El("dialog", args...) }
func Script(args ...any) *VNode   { return El("script", args...) }
func Template(args ...any) *VNode { return El("template", args...) }
