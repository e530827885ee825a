package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// Variant is a visual style shared by several components.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
)

// Size is a component size.
type Size string

const (
	SizeSm   Size = "sm"
	SizeMd   Size = "default"
	SizeLg   Size = "lg"
	SizeIcon Size = "icon"
)

// CN joins class names, dropping empty entries.
func CN(classes ...string) string {
	return vdom.CN(classes...)
}

// slot marks a node with its component part name.
func slot(name string) vdom.Attr {
	return vdom.Data("slot", name)
}

// part renders a plain element with base classes, an extra class and
// children. It backs the many structural sub-components.
func part(tag, name, base, class string, children []any) *vdom.VNode {
	args := make([]any, 0, len(children)+2)
	args = append(args, slot(name), vdom.Class(base, class))
	args = append(args, children...)
	return vdom.El(tag, args...)
}
