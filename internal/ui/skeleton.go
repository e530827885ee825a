package ui

import "github.com/vango-dev/gallery/pkg/vdom"

// Skeleton renders a pulsing placeholder block. Extra vdom.Class
// arguments size it.
func Skeleton(args ...any) *vdom.VNode {
	return part("div", "skeleton", "animate-pulse rounded-md bg-muted", "",
		append([]any{vdom.AriaHidden(true)}, args...))
}

// SkeletonCard renders a card-shaped loading placeholder.
func SkeletonCard() *vdom.VNode {
	return Card(
		vdom.Class("skeleton-card"),
		vdom.AriaBusy(true),
		CardHeader(
			Skeleton(vdom.Class("h-5 w-1/3")),
			Skeleton(vdom.Class("h-4 w-2/3")),
		),
		CardContent(
			Skeleton(vdom.Class("h-24 w-full")),
		),
	)
}
