// Package vdom provides the virtual node tree Gallery pages are built from.
//
// A VNode represents an element, a text node, a fragment, an embedded
// component, or a raw HTML island. Trees are assembled with variadic
// element factories and rendered to HTML by package render:
//
//	Div(Class("card"), ID("button"),
//	    H2(Text("Button")),
//	    P(Text("Triggers an action.")),
//	)
//
// Arguments to an element factory may be Attr, []Attr, *VNode, []*VNode,
// Component, string (shorthand for a text node) or nil (ignored, which makes
// conditional children cheap to express).
//
// # Components
//
// Component is the single-method capability the showcase registry stores:
// anything that can render itself into a VNode. Func adapts a plain
// function.
//
// # Hooks
//
// Hook attaches a named client-side behaviour (for example ScrollIntoView)
// to an element as data attributes; the embedded client script picks them
// up after the page loads.
package vdom
