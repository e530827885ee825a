package vdom

import "strings"

// Walk visits node and its descendants depth-first. Component nodes are
// rendered and their output visited in their place. Returning false from
// visit stops descent below that node.
func Walk(node *VNode, visit func(*VNode) bool) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent {
		if node.Comp != nil {
			Walk(node.Comp.Render(), visit)
		}
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, visit)
	}
}

// FindAll returns every node in the tree matching pred, in document order.
func FindAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var found []*VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// FindByID returns the first element whose id equals id.
func FindByID(root *VNode, id string) *VNode {
	var match *VNode
	Walk(root, func(n *VNode) bool {
		if match != nil {
			return false
		}
		if n.Kind == KindElement && n.ID() == id {
			match = n
			return false
		}
		return true
	})
	return match
}

// IDs returns the ids of all elements in document order.
func IDs(root *VNode) []string {
	var ids []string
	Walk(root, func(n *VNode) bool {
		if id := n.ID(); n.Kind == KindElement && id != "" {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// TextContent concatenates all text below node. Raw HTML is included
// verbatim.
func TextContent(node *VNode) string {
	var b strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText || n.Kind == KindRaw {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// HasClass reports whether the element's class list contains class.
func HasClass(node *VNode, class string) bool {
	v, _ := node.Attr("class")
	s, _ := v.(string)
	for _, c := range strings.Fields(s) {
		if c == class {
			return true
		}
	}
	return false
}
